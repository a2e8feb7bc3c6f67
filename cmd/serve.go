package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/faculty-cli/internal/export"
	"github.com/sells-group/faculty-cli/internal/server"
)

var (
	servePort int
	serveData string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the persisted dataset over a read-only HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		records, err := export.ReadJSON(serveData)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return eris.Errorf("serve: no records in %s, run the pipeline first", serveData)
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: server.New(records).Handler(),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server",
			zap.Int("port", port),
			zap.Int("records", len(records)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().StringVar(&serveData, "data", "faculty_data.json", "dataset to serve")
	rootCmd.AddCommand(serveCmd)
}
