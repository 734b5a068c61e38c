package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/carlwiedemann/foresite/internal/build"
	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
	"github.com/carlwiedemann/foresite/internal/watch"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves " + paths.DirOutput + "/ locally and rebuilds on changes",
		Long: `Performs a full build, then serves ` + paths.DirOutput + `/ over HTTP. Changes to posts,
templates or ` + paths.FileSite + ` trigger another full build.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.paths()
			printer := output.NewPrinter(cmd.OutOrStdout())

			rebuild := func() error {
				b := build.New(p)
				b.Notify = printer.Print
				_, err := b.Run()
				return err
			}

			if err := rebuild(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := &watch.Watcher{
				Dirs:  []string{p.Markdown(), p.Templates()},
				Files: []string{p.SiteFile()},
				OnChange: func() {
					output.Info("rebuilding site due to changes")
					if err := rebuild(); err != nil {
						output.Error("rebuild failed", "error", err)
						return
					}
					output.Info("site rebuilt")
				},
			}

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", port),
				Handler:           noCache(http.FileServer(http.Dir(p.Output()))),
				ReadHeaderTimeout: 10 * time.Second,
			}

			output.Info("serving site", "dir", p.Relative(p.Output()), "url", fmt.Sprintf("http://localhost:%d", port))
			return serve(ctx, srv, w)
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 1313, "Port to serve the site on")

	return serveCmd
}

// serve runs srv and w until ctx is done or either of them fails, then
// shuts both down. A watcher that cannot start stops the server right away.
func serve(ctx context.Context, srv *http.Server, w *watch.Watcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchErr := make(chan error, 1)
	go func() { watchErr <- w.Run(ctx) }()

	srvErr := make(chan error, 1)
	go func() { srvErr <- srv.ListenAndServe() }()

	var err error
	select {
	case <-ctx.Done():
	case err = <-watchErr:
	case err = <-srvErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		} else {
			err = fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)

	return err
}

// noCache disables browser caching so rebuilt pages show up on reload.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
