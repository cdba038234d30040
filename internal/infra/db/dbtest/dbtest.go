// テスト用のsqliteメモリDB
package dbtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"shop/internal/config"
	"shop/internal/infra/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// テストごとに別のメモリDBを作ってマイグレーションまで済ませる
func New(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.Config{
		DBDriver:   "sqlite",
		SQLitePath: "file:" + name + "?mode=memory&cache=shared",
	}

	gormDB, err := db.Connect(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gormDB))

	t.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB
}
