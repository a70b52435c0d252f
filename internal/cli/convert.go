package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zmzehd/markdown2html/pkg/mdhtml"
)

// runConvert is the bare-root behavior: exactly two positional
// arguments, input path and output path. Extra arguments are ignored.
func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	inPath, outPath := args[0], args[1]

	st, err := os.Stat(inPath)
	if err != nil || !st.Mode().IsRegular() {
		return &MissingInputError{Path: inPath}
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	// The output file is truncated each run, never appended.
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := mdhtml.Convert(in, out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
