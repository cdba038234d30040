package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"shop/internal/app"
	"shop/internal/infra/db"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, gormDB, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(gormDB); err != nil {
				logger.Error("failed to close db", slog.Any("error", err))
			}
		}()

		a := app.New(cfg, logger, gormDB)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err = a.Server.Run(ctx)
		//実行中の掃除を待つ
		a.Sweeper.Shutdown()
		return err
	},
}
