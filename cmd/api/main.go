package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shop/internal/config"
	"shop/internal/infra/db"
	applog "shop/internal/infra/log"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "shop backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	rootCmd.AddCommand(serveCmd, createAdminCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// 設定・ロガー・DB（AutoMigrate済み）
func bootstrap() (config.Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, nil, err
	}

	logger, err := applog.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return cfg, nil, nil, err
	}
	slog.SetDefault(logger)

	gormDB, err := db.Connect(cfg, logger)
	if err != nil {
		return cfg, nil, nil, err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		_ = db.Close(gormDB)
		return cfg, nil, nil, errors.Wrap(err, "auto migrate")
	}
	return cfg, logger, gormDB, nil
}
