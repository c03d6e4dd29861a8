package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookapp "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/application/dto"
	reviewapp "github.com/xiebiao/bookshop/internal/application/review"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational/relationaltest"
)

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	db := relationaltest.NewSQLite(t)
	books := bookapp.NewService(relational.NewBookRepository(db))
	reviews := reviewapp.NewService(relational.NewReviewRepository(db))

	b := &dto.BookDTO{Title: "Dune", Author: "Frank Herbert", Genre: "SF", Price: 15.0}
	other := &dto.BookDTO{Title: "Emma", Author: "Jane Austen", Genre: "Classic", Price: 9.99}
	require.NoError(t, books.Create(ctx, b))
	require.NoError(t, books.Create(ctx, other))

	in := &dto.ReviewDTO{BookID: b.ID, Reviewer: "carol", Rating: 5, Text: "great"}

	t.Run("创建后写回ID", func(t *testing.T) {
		require.NoError(t, reviews.Create(ctx, in))
		assert.NotZero(t, in.ID)
	})

	t.Run("只给嵌套图书时使用它的ID", func(t *testing.T) {
		nested := &dto.ReviewDTO{Book: &dto.BookDTO{ID: other.ID}, Reviewer: "dave", Rating: 3, Text: "ok"}
		require.NoError(t, reviews.Create(ctx, nested))
		assert.Equal(t, other.ID, nested.BookID)
	})

	t.Run("读取时带所属图书", func(t *testing.T) {
		got, ok, err := reviews.Get(ctx, in.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, b.ID, got.BookID)
		require.NotNil(t, got.Book)
		assert.Equal(t, *b, *got.Book)
	})

	t.Run("按图书查评论", func(t *testing.T) {
		list, err := reviews.ListByBook(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "carol", list[0].Reviewer)

		all, err := reviews.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("更新可以换图书", func(t *testing.T) {
		upd := dto.ReviewDTO{ID: in.ID, BookID: other.ID, Reviewer: "carol", Rating: 4, Text: "good"}
		require.NoError(t, reviews.Update(ctx, upd))

		got, _, err := reviews.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Rating)
		assert.Equal(t, *other, *got.Book)
	})

	t.Run("删除", func(t *testing.T) {
		require.NoError(t, reviews.Delete(ctx, in.ID))
		_, ok, err := reviews.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
