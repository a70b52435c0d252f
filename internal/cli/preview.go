package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newPreviewCmd registers `preview`: render a markdown file to ANSI on
// the terminal instead of producing HTML.
func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <input.md>",
		Short: "Render a markdown file in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getConfig(cmd)

			src, err := os.ReadFile(args[0])
			if err != nil {
				return &MissingInputError{Path: args[0]}
			}

			width := v.GetInt("preview.width")
			if width <= 0 {
				width = previewWidth(cmd.OutOrStdout())
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(v.GetString("preview.style")),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			out, err := r.Render(string(src))
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	return cmd
}

// previewWidth returns the terminal width of w, or 80 when w is not a
// terminal.
func previewWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 80
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 80
	}
	return cols
}
