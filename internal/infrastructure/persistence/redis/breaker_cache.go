package redis

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
)

// breakerCache 给DetailCache加熔断
// Redis连续出错后一段时间内直接返回circuitbreaker.ErrOpen,请求只走数据库,
// 不再每次等Redis超时。未命中不算失败
type breakerCache struct {
	next DetailCache
	cb   *circuitbreaker.Breaker
}

// NewBreakerCache 用熔断器包装缓存
func NewBreakerCache(next DetailCache, cb *circuitbreaker.Breaker) DetailCache {
	return &breakerCache{next: next, cb: cb}
}

func (c *breakerCache) Get(ctx context.Context, id int64) (b book.Book, ok bool, err error) {
	err = c.cb.Execute(func() error {
		var getErr error
		b, ok, getErr = c.next.Get(ctx, id)
		return getErr
	})
	return b, ok, err
}

func (c *breakerCache) Set(ctx context.Context, b book.Book) error {
	return c.cb.Execute(func() error {
		return c.next.Set(ctx, b)
	})
}

func (c *breakerCache) Delete(ctx context.Context, id int64) error {
	return c.cb.Execute(func() error {
		return c.next.Delete(ctx, id)
	})
}
