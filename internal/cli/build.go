package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zmzehd/markdown2html/internal/cache"
	"github.com/zmzehd/markdown2html/internal/config"
)

// newBuildCmd registers `build`: convert every .md under a source tree
// into a mirror tree of .html files, reusing cached renders for
// unchanged sources.
func newBuildCmd() *cobra.Command {
	var srcDir, outDir string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert a directory tree of markdown pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getConfig(cmd)
			if srcDir == "" {
				srcDir = v.GetString("site.dir")
			}
			if outDir == "" {
				outDir = srcDir
			}

			var store *cache.Store
			if v.GetBool("cache.enabled") {
				s, err := cache.Open(cmd.Context(), config.CachePath(v))
				if err != nil {
					return err
				}
				defer s.Close()
				store = s
			}

			var rendered, cached int
			err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".md") {
					return nil
				}
				src, err := os.ReadFile(p)
				if err != nil {
					return err
				}
				html, hit, err := cache.Render(cmd.Context(), store, src)
				if err != nil {
					return err
				}
				if hit {
					cached++
				} else {
					rendered++
				}
				rel, err := filepath.Rel(srcDir, p)
				if err != nil {
					return err
				}
				dst := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html")
				if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
					return err
				}
				return os.WriteFile(dst, []byte(html), 0o644)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "build: %d rendered, %d cached\n", rendered, cached)
			return nil
		},
	}
	cmd.Flags().StringVarP(&srcDir, "src", "s", "", "source directory (defaults to site.dir)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to the source directory)")
	return cmd
}
