package main

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// provideLogger 从配置创建日志
func provideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(cfg.Log.LoggerConfig())
}

// provideDB 创建数据库连接,cleanup关闭连接池
func provideDB(cfg *config.Config, log *logger.Logger) (*gorm.DB, func(), error) {
	db, err := relational.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := relational.CloseDB(db); err != nil {
			log.WithError(err).Warn("关闭数据库连接失败")
		}
	}
	return db, cleanup, nil
}

// provideRedis 创建Redis客户端
// 未启用时client为nil,cleanup为空函数
func provideRedis(cfg *config.Config, log *logger.Logger) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if client == nil {
			return
		}
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("关闭Redis连接失败")
		}
	}
	return client, cleanup, nil
}

// provideBookRepository 图书仓储
// 有Redis时在关系型仓储外面套一层详情缓存,缓存访问经过熔断器
func provideBookRepository(cfg *config.Config, db *gorm.DB, client *goredis.Client, log *logger.Logger) book.Repository {
	repo := relational.NewBookRepository(db)
	if client == nil {
		return repo
	}

	cb := circuitbreaker.New(circuitbreaker.Options{
		Name:             "redis-book-cache",
		FailureThreshold: cfg.Redis.BreakerFailures,
		OpenTimeout:      cfg.Redis.BreakerTimeout,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.WithFields(map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("缓存熔断器状态变化")
		},
	})
	cache := redis.NewBreakerCache(redis.NewBookCache(client, cfg.Redis.BookTTL), cb)

	log.WithField("ttl", cfg.Redis.BookTTL.String()).Info("启用图书详情缓存")
	return redis.NewCachedBookRepository(repo, cache)
}
