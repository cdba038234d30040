package db_test

import (
	"testing"

	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/infra/db"
	"shop/internal/infra/db/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := db.Connect(config.Config{DBDriver: "mysql"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported db driver")
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	gormDB := dbtest.New(t)

	m := gormDB.Migrator()
	for _, v := range []any{&model.User{}, &model.Product{}, &model.Image{}, &model.Order{}, &model.Item{}, &model.AuditLog{}} {
		assert.True(t, m.HasTable(v))
	}
}
