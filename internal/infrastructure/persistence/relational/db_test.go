package relational_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/review"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// TestNewDB_SQLiteFile 按配置文件方式(只设dbname)打开SQLite,外键约束必须生效
func TestNewDB_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			DBName:       filepath.Join(t.TempDir(), "bookshop.db"),
			MaxOpenConns: 2,
			MaxIdleConns: 2,
			AutoMigrate:  true,
		},
	}

	db, err := relational.NewDB(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = relational.CloseDB(db) })

	books := relational.NewBookRepository(db)
	orders := relational.NewOrderRepository(db)
	reviews := relational.NewReviewRepository(db)

	t.Run("关联不存在的订单和图书被拒绝", func(t *testing.T) {
		err := orders.AddBook(ctx, 424242, 999999)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, apperrors.GetAppError(err).Code)
	})

	t.Run("评论不存在的图书被拒绝", func(t *testing.T) {
		err := reviews.Create(ctx, review.NewReview(999999, "小王", 5, "好看"))
		require.Error(t, err)
	})

	t.Run("删除被评论引用的图书被拒绝", func(t *testing.T) {
		b := createBook(t, books, "被引用的书", 10)
		require.NoError(t, reviews.Create(ctx, review.NewReview(b.ID, "小王", 5, "好看")))

		require.Error(t, books.Delete(ctx, b.ID))

		_, ok, err := books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
