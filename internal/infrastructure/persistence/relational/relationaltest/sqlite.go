// Package relationaltest 提供仓储、服务、HTTP测试共用的数据库
package relationaltest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// MemoryDSN 内存SQLite,打开外键约束
const MemoryDSN = "file::memory:?_foreign_keys=on"

// NewSQLite 创建一个独立的内存数据库并建好表
// 连接池固定为1个连接:内存库随连接存在,多连接会各自看到一个空库
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			DSNOverride:  MemoryDSN,
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			AutoMigrate:  true,
		},
	}

	db, err := relational.NewDB(cfg, logger.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = relational.CloseDB(db)
	})
	return db
}

// DisableForeignKeys 关闭外键检查,用于构造孤儿数据
func DisableForeignKeys(t testing.TB, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("PRAGMA foreign_keys = OFF").Error)
}
