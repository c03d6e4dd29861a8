//go:build integration
// +build integration

package relational_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/review"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// 运行方式: go test -tags=integration ./internal/infrastructure/persistence/relational/
// 需要本机有Docker

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("bookshop"),
		postgres.WithUsername("bookshop"),
		postgres.WithPassword("bookshop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "启动PostgreSQL容器失败")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("关闭容器失败: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := relational.NewDB(&config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:       config.DriverPostgres,
			DSNOverride:  dsn,
			MaxOpenConns: 5,
			MaxIdleConns: 2,
			AutoMigrate:  true,
		},
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = relational.CloseDB(db) })
	return db
}

func TestPostgres_EndToEnd(t *testing.T) {
	ctx := context.Background()
	db := setupPostgres(t)
	books := relational.NewBookRepository(db)
	orders := relational.NewOrderRepository(db)
	reviews := relational.NewReviewRepository(db)

	b1 := book.NewBook("Dune", "Frank Herbert", "SF", 15.0)
	b2 := book.NewBook("Emma", "Jane Austen", "Classic", 9.99)
	require.NoError(t, books.Create(ctx, b1))
	require.NoError(t, books.Create(ctx, b2))

	t.Run("价格原样读回", func(t *testing.T) {
		got, ok, err := books.FindByID(ctx, b1.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 15.0, got.Price)
	})

	t.Run("订单关联两本书", func(t *testing.T) {
		o := order.NewOrder("alice", time.Now().UTC().Truncate(time.Microsecond), "NEW")
		require.NoError(t, orders.Create(ctx, o))
		require.NoError(t, orders.AddBook(ctx, o.ID, b1.ID))
		require.NoError(t, orders.AddBook(ctx, o.ID, b2.ID))

		got, ok, err := orders.FindByID(ctx, o.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.ElementsMatch(t, []book.Book{*b1, *b2}, got.Books)

		err = orders.AddBook(ctx, o.ID, b1.ID)
		assert.Equal(t, apperrors.ErrCodeDuplicateEntry, apperrors.GetAppError(err).Code)

		require.NoError(t, orders.RemoveBook(ctx, o.ID, b2.ID))
		got, _, err = orders.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, []book.Book{*b1}, got.Books)
	})

	t.Run("空订单出现在列表中", func(t *testing.T) {
		o := order.NewOrder("bob", time.Now(), "NEW")
		require.NoError(t, orders.Create(ctx, o))

		all, err := orders.List(ctx)
		require.NoError(t, err)
		var found bool
		for _, item := range all {
			if item.ID == o.ID {
				found = true
				assert.Empty(t, item.Books)
			}
		}
		assert.True(t, found)
	})

	t.Run("评论带图书快照,被引用的图书不能删除", func(t *testing.T) {
		rv := review.NewReview(b2.ID, "carol", 5, "great")
		require.NoError(t, reviews.Create(ctx, rv))

		got, ok, err := reviews.FindByID(ctx, rv.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, *b2, got.Book)

		assert.Error(t, books.Delete(ctx, b2.ID))
	})
}
