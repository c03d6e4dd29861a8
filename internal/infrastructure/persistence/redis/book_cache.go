package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// BookCache 图书详情缓存
//
// 教学要点：
// 1. Key设计：bookshop:book:{id}，值是图书JSON
// 2. 只缓存单本图书详情，列表变化太频繁不缓存
// 3. 写数据库后删除缓存，不更新缓存（避免并发写导致脏数据）
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache 创建图书缓存
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{client: client, ttl: ttl}
}

// cachedBook 缓存里的图书JSON结构
type cachedBook struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Genre  string  `json:"genre"`
	Price  float64 `json:"price"`
}

// Get 读取缓存，未命中返回ok=false
func (c *BookCache) Get(ctx context.Context, id int64) (book.Book, bool, error) {
	val, err := c.client.Get(ctx, bookKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return book.Book{}, false, nil
		}
		return book.Book{}, false, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "读取图书缓存失败")
	}

	var cb cachedBook
	if err := json.Unmarshal(val, &cb); err != nil {
		return book.Book{}, false, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "图书缓存反序列化失败")
	}

	return book.Book{ID: cb.ID, Title: cb.Title, Author: cb.Author, Genre: cb.Genre, Price: cb.Price}, true, nil
}

// Set 写入缓存
func (c *BookCache) Set(ctx context.Context, b book.Book) error {
	val, err := json.Marshal(cachedBook{ID: b.ID, Title: b.Title, Author: b.Author, Genre: b.Genre, Price: b.Price})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "图书缓存序列化失败")
	}

	if err := c.client.Set(ctx, bookKey(b.ID), val, c.ttl).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "写入图书缓存失败")
	}
	return nil
}

// Delete 删除缓存，key不存在不算错误
func (c *BookCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, bookKey(id)).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "删除图书缓存失败")
	}
	return nil
}

func bookKey(id int64) string {
	return fmt.Sprintf("bookshop:book:%d", id)
}
