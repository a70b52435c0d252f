package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zmzehd/markdown2html/internal/config"
)

type ctxKey string

const cfgKey ctxKey = "cfg"

// errUsage selects the usage line over the generic error format.
var errUsage = errors.New("wrong number of arguments")

// MissingInputError reports an input path that does not resolve to an
// existing regular file.
type MissingInputError struct{ Path string }

func (e *MissingInputError) Error() string { return "Missing " + e.Path }

// Execute runs the CLI and returns the process exit code. All failure
// reporting happens here, in the exact formats the command contract
// fixes: a usage line, "Missing <path>", or "Error: <message>".
func Execute() int {
	err := NewRootCmd().Execute()
	if err == nil {
		return 0
	}
	var missing *MissingInputError
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "Usage: md2html README.md README.html")
	case errors.As(err, &missing):
		fmt.Fprintln(os.Stderr, missing.Error())
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}

// NewRootCmd constructs the Cobra root command and wires configuration.
// The bare root converts input to output; everything else is a
// subcommand.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "md2html <input.md> <output.html>",
		Short:         "Convert restricted Markdown to HTML",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // the contract fixes the usage line; see Execute
		SilenceErrors: true, // Execute prints errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper and stash it in context.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), cfgKey, v))
			return nil
		},
		RunE: runConvert,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newCacheCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func getConfig(cmd *cobra.Command) *viper.Viper {
	v := cmd.Context().Value(cfgKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: config not initialized")
		os.Exit(1)
	}
	return v.(*viper.Viper)
}
