package relational_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/review"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational/relationaltest"
)

func TestReviewRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := relationaltest.NewSQLite(t)
	books := relational.NewBookRepository(db)
	reviews := relational.NewReviewRepository(db)

	b := createBook(t, books, "活着", 15.0)

	var created review.Review

	t.Run("创建后读回带图书快照", func(t *testing.T) {
		rv := review.NewReview(b.ID, "小李", 4, "很感人")
		require.NoError(t, reviews.Create(ctx, rv))
		require.NotZero(t, rv.ID)

		got, ok, err := reviews.FindByID(ctx, rv.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "小李", got.Reviewer)
		assert.Equal(t, 4, got.Rating)
		assert.Equal(t, "很感人", got.Text)
		assert.Equal(t, b.ID, got.BookID)
		assert.Equal(t, b, got.Book)
		created = got
	})

	t.Run("只给图书快照时使用快照ID", func(t *testing.T) {
		rv := &review.Review{Book: b, Reviewer: "小周", Rating: 3, Text: "一般"}
		require.NoError(t, reviews.Create(ctx, rv))
		assert.Equal(t, b.ID, rv.BookID)
	})

	t.Run("更新可以改挂到另一本书", func(t *testing.T) {
		other := createBook(t, books, "兄弟", 22)
		updated := created
		updated.BookID = other.ID
		updated.Book = other
		updated.Rating = 5
		updated.Text = "改了"
		require.NoError(t, reviews.Update(ctx, &updated))

		got, ok, err := reviews.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, other.ID, got.BookID)
		assert.Equal(t, "兄弟", got.Book.Title)
		assert.Equal(t, 5, got.Rating)
		assert.Equal(t, "改了", got.Text)
	})

	t.Run("列表与按图书查询", func(t *testing.T) {
		all, err := reviews.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		byBook, err := reviews.ListByBookID(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, byBook, 1)
		assert.Equal(t, "小周", byBook[0].Reviewer)
	})

	t.Run("删除后不可见,重复删除不报错", func(t *testing.T) {
		require.NoError(t, reviews.Delete(ctx, created.ID))
		require.NoError(t, reviews.Delete(ctx, created.ID))

		_, ok, err := reviews.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("图书不存在时创建失败", func(t *testing.T) {
		err := reviews.Create(ctx, review.NewReview(9999, "x", 1, "y"))
		assert.Error(t, err)
	})
}

func TestReviewRepository_OrphanInvisible(t *testing.T) {
	ctx := context.Background()
	db := relationaltest.NewSQLite(t)
	books := relational.NewBookRepository(db)
	reviews := relational.NewReviewRepository(db)

	b := createBook(t, books, "将被删除", 1)
	rv := review.NewReview(b.ID, "孤儿", 2, "所属图书没了")
	require.NoError(t, reviews.Create(ctx, rv))

	// 绕过外键删掉图书,制造孤儿评论
	relationaltest.DisableForeignKeys(t, db)
	require.NoError(t, books.Delete(ctx, b.ID))

	_, ok, err := reviews.FindByID(ctx, rv.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := reviews.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
