package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookapp "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/application/dto"
	orderapp "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational/relationaltest"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func setupServices(t *testing.T) (bookapp.Service, orderapp.Service) {
	db := relationaltest.NewSQLite(t)
	return bookapp.NewService(relational.NewBookRepository(db)),
		orderapp.NewService(relational.NewOrderRepository(db))
}

func TestOrderService(t *testing.T) {
	ctx := context.Background()
	books, orders := setupServices(t)

	b1 := &dto.BookDTO{Title: "Dune", Author: "Frank Herbert", Genre: "SF", Price: 15.0}
	b2 := &dto.BookDTO{Title: "Emma", Author: "Jane Austen", Genre: "Classic", Price: 9.99}
	require.NoError(t, books.Create(ctx, b1))
	require.NoError(t, books.Create(ctx, b2))

	in := &dto.OrderDTO{
		Customer: "alice",
		Date:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:   "NEW",
		Books:    []dto.BookDTO{*b1},
	}

	t.Run("创建忽略传入的图书", func(t *testing.T) {
		require.NoError(t, orders.Create(ctx, in))
		assert.NotZero(t, in.ID)
		assert.NotNil(t, in.Books)
		assert.Empty(t, in.Books)

		got, ok, err := orders.Get(ctx, in.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "alice", got.Customer)
		assert.Empty(t, got.Books)
	})

	t.Run("未指定日期时使用当前时间", func(t *testing.T) {
		noDate := &dto.OrderDTO{Customer: "bob", Status: "NEW"}
		require.NoError(t, orders.Create(ctx, noDate))
		assert.False(t, noDate.Date.IsZero())
	})

	t.Run("关联图书后读回完整图书", func(t *testing.T) {
		require.NoError(t, orders.AddBook(ctx, in.ID, b1.ID))
		require.NoError(t, orders.AddBook(ctx, in.ID, b2.ID))

		got, _, err := orders.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []dto.BookDTO{*b1, *b2}, got.Books)
	})

	t.Run("重复关联返回冲突错误", func(t *testing.T) {
		err := orders.AddBook(ctx, in.ID, b1.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeDuplicateEntry, apperrors.GetAppError(err).Code)
	})

	t.Run("按图书查订单", func(t *testing.T) {
		list, err := orders.ListByBook(ctx, b2.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, in.ID, list[0].ID)
		assert.Len(t, list[0].Books, 2)
	})

	t.Run("更新订单字段不影响图书", func(t *testing.T) {
		upd := dto.OrderDTO{ID: in.ID, Customer: "alice", Date: in.Date, Status: "PAID"}
		require.NoError(t, orders.Update(ctx, upd))

		got, _, err := orders.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, "PAID", got.Status)
		assert.Len(t, got.Books, 2)
	})

	t.Run("移除关联", func(t *testing.T) {
		require.NoError(t, orders.RemoveBook(ctx, in.ID, b2.ID))
		require.NoError(t, orders.RemoveBook(ctx, in.ID, b2.ID))

		got, _, err := orders.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, []dto.BookDTO{*b1}, got.Books)
	})

	t.Run("列表包含没有图书的订单", func(t *testing.T) {
		list, err := orders.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)
		for _, o := range list {
			assert.NotNil(t, o.Books)
		}
	})

	t.Run("不存在的订单", func(t *testing.T) {
		_, ok, err := orders.Get(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
