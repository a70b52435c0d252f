package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/zmzehd/markdown2html/internal/cache"
	"github.com/zmzehd/markdown2html/internal/config"
	"github.com/zmzehd/markdown2html/internal/server"
)

// newServeCmd registers `serve`: an HTTP server rendering markdown
// pages from the site directory on demand.
func newServeCmd() *cobra.Command {
	var listen string
	var dir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered pages over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getConfig(cmd)
			if listen != "" {
				v.Set("http_addr", listen)
			}
			if dir != "" {
				v.Set("site.dir", dir)
			}
			addr := v.GetString("http_addr")
			if addr == "" {
				addr = ":8080"
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

			srv := server.New(v, store)
			httpSrv := &http.Server{Addr: addr, Handler: srv.Router()}
			log.Printf("serve: listening on %s (site dir %s)", addr, v.GetString("site.dir"))

			errCh := make(chan error, 1)
			go func() { errCh <- httpSrv.ListenAndServe() }()
			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (override config http_addr)")
	cmd.Flags().StringVar(&dir, "dir", "", "site directory (override config site.dir)")
	return cmd
}
