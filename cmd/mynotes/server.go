package main

import (
	"context"
	errs "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServer(app *application) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())

	e.Use(middleware.Secure())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}\n",
	}))

	// notes
	e.GET("/api/notes", listNotesHandler(app.notes, app.prefs))
	e.POST("/api/notes", createNote(app.notes))
	e.GET("/api/notes/:id", getNote(app.noteStore))
	e.PUT("/api/notes/:id", updateNote(app.notes, app.noteStore))
	e.DELETE("/api/notes/:id", deleteNote(app.notes))

	// settings
	e.GET("/api/preferences", getPreferences(app.prefs))
	e.PUT("/api/preferences", updatePreferences(app.prefs))
	e.GET("/api/accent-colors", listAccentColors())

	return e
}

func newServeCmd(app func() *application) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the notes JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			addr := a.cfg.ListenAddr
			if listen != "" {
				addr = listen
			}

			e := newServer(a)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logrus.Infof("Starting mynotes server on %s", addr)
				if err := e.Start(addr); err != nil && !errs.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return errors.Wrap(err, "Server failed")
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return errors.Wrap(e.Shutdown(shutdownCtx), "shutting down server")
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (overrides config)")
	return cmd
}
