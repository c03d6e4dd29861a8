package redis

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

const cacheNameBook = "book"

// DetailCache 图书详情缓存接口，BookCache实现它，测试里可以换成内存实现
type DetailCache interface {
	Get(ctx context.Context, id int64) (book.Book, bool, error)
	Set(ctx context.Context, b book.Book) error
	Delete(ctx context.Context, id int64) error
}

// cachedBookRepository Cache-Aside装饰器
// 教学要点：
// 1. FindByID先查缓存，未命中查数据库再回填
// 2. Update/Delete先写数据库，成功后删缓存
// 3. 缓存故障只记日志，不影响请求结果（数据库才是数据源）
// 4. 不存在的图书不缓存
// 5. 熔断中(circuitbreaker.ErrOpen)只记Debug日志,避免Redis故障期间刷屏
type cachedBookRepository struct {
	next  book.Repository
	cache DetailCache
}

// NewCachedBookRepository 给图书仓储加上缓存
func NewCachedBookRepository(next book.Repository, cache DetailCache) book.Repository {
	return &cachedBookRepository{next: next, cache: cache}
}

func (r *cachedBookRepository) List(ctx context.Context) ([]book.Book, error) {
	return r.next.List(ctx)
}

func (r *cachedBookRepository) FindByID(ctx context.Context, id int64) (book.Book, bool, error) {
	b, ok, err := r.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.ObserveCache(cacheNameBook, metrics.CacheError)
		cacheFailure(ctx, err, id, "读取图书缓存失败")
	case ok:
		metrics.ObserveCache(cacheNameBook, metrics.CacheHit)
		return b, true, nil
	default:
		metrics.ObserveCache(cacheNameBook, metrics.CacheMiss)
	}

	b, ok, err = r.next.FindByID(ctx, id)
	if err != nil || !ok {
		return b, ok, err
	}

	if err := r.cache.Set(ctx, b); err != nil {
		cacheFailure(ctx, err, id, "写入图书缓存失败")
	}
	return b, true, nil
}

func (r *cachedBookRepository) Create(ctx context.Context, b *book.Book) error {
	return r.next.Create(ctx, b)
}

func (r *cachedBookRepository) Update(ctx context.Context, b *book.Book) error {
	if err := r.next.Update(ctx, b); err != nil {
		return err
	}
	r.evict(ctx, b.ID)
	return nil
}

func (r *cachedBookRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *cachedBookRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, id); err != nil {
		cacheFailure(ctx, err, id, "删除图书缓存失败")
	}
}

func cacheFailure(ctx context.Context, err error, id int64, msg string) {
	entry := logger.FromContext(ctx).WithError(err).WithField("book_id", id)
	if errors.Is(err, circuitbreaker.ErrOpen) {
		entry.Debug(msg)
		return
	}
	entry.Warn(msg)
}
