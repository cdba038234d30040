package db

import (
	"log/slog"

	"shop/internal/config"
	"shop/internal/domain/model"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectはDBに接続して *gorm.DB を返す。
// DB_DRIVERでpostgres / sqliteを切り替える
func Connect(cfg config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, errors.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormSlogLogger(logger, cfg.LogLevel == "debug"),
		//一意制約違反などをgorm.ErrDuplicatedKeyに変換する
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", cfg.DBDriver)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, errors.Wrap(err, "sqlite handle")
		}
		//sqliteは書き込みが1本なので接続も1本にする（メモリDBもこれで共有される）
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	return gormDB, nil
}

// テーブル作成
func AutoMigrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Image{},
		&model.Order{},
		&model.Item{},
		&model.AuditLog{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}

// 閉じる（sqlのハンドルを取れないときは何もしない）
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
