package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational/relationaltest"
)

// memoryCache 内存版DetailCache，记录调用次数
type memoryCache struct {
	items   map[int64]book.Book
	gets    int
	sets    int
	deletes int
	failGet bool
	failSet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[int64]book.Book)}
}

func (c *memoryCache) Get(_ context.Context, id int64) (book.Book, bool, error) {
	c.gets++
	if c.failGet {
		return book.Book{}, false, errors.New("redis down")
	}
	b, ok := c.items[id]
	return b, ok, nil
}

func (c *memoryCache) Set(_ context.Context, b book.Book) error {
	c.sets++
	if c.failSet {
		return errors.New("redis down")
	}
	c.items[b.ID] = b
	return nil
}

func (c *memoryCache) Delete(_ context.Context, id int64) error {
	c.deletes++
	delete(c.items, id)
	return nil
}

func setupCachedRepo(t *testing.T) (book.Repository, *memoryCache) {
	cache := newMemoryCache()
	next := relational.NewBookRepository(relationaltest.NewSQLite(t))
	return NewCachedBookRepository(next, cache), cache
}

func TestCachedBookRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, cache := setupCachedRepo(t)

	b := book.NewBook("红楼梦", "曹雪芹", "古典", 59.9)
	require.NoError(t, repo.Create(ctx, b))

	t.Run("第一次未命中,回填缓存", func(t *testing.T) {
		got, ok, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, *b, got)
		assert.Equal(t, 1, cache.sets)
		assert.Contains(t, cache.items, b.ID)
	})

	t.Run("第二次命中缓存", func(t *testing.T) {
		// 直接改缓存内容,命中时应返回缓存里的值
		stale := *b
		stale.Title = "缓存中的标题"
		cache.items[b.ID] = stale

		got, ok, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "缓存中的标题", got.Title)
		assert.Equal(t, 1, cache.sets)
	})

	t.Run("不存在的图书不缓存", func(t *testing.T) {
		_, ok, err := repo.FindByID(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NotContains(t, cache.items, int64(9999))
	})
}

func TestCachedBookRepository_Invalidation(t *testing.T) {
	ctx := context.Background()
	repo, cache := setupCachedRepo(t)

	b := book.NewBook("围城", "钱钟书", "小说", 30)
	require.NoError(t, repo.Create(ctx, b))
	_, _, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	require.Contains(t, cache.items, b.ID)

	t.Run("更新后删除缓存并读到新值", func(t *testing.T) {
		b.Title = "围城(新版)"
		require.NoError(t, repo.Update(ctx, b))
		assert.NotContains(t, cache.items, b.ID)

		got, _, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "围城(新版)", got.Title)
	})

	t.Run("删除后缓存与数据库都不可见", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, b.ID))
		assert.NotContains(t, cache.items, b.ID)

		_, ok, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("列表不走缓存", func(t *testing.T) {
		gets := cache.gets
		_, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, gets, cache.gets)
	})
}

func TestCachedBookRepository_CacheFailure(t *testing.T) {
	ctx := context.Background()
	repo, cache := setupCachedRepo(t)

	b := book.NewBook("平凡的世界", "路遥", "小说", 88)
	require.NoError(t, repo.Create(ctx, b))

	cache.failGet = true
	cache.failSet = true

	got, ok, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err, "缓存故障不影响查询")
	require.True(t, ok)
	assert.Equal(t, *b, got)
}
