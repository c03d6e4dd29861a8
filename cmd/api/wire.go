//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 修改Provider后重新生成:
//
//	wire gen ./cmd/api
//
// 依赖链:
// *App → *gin.Engine → Handler → Service → Repository → *gorm.DB / *redis.Client → *config.Config

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appreview "github.com/xiebiao/bookshop/internal/application/review"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/relational"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/router"
)

// infrastructureSet 日志、数据库、Redis
var infrastructureSet = wire.NewSet(
	provideLogger,
	provideDB,
	provideRedis,
)

// repositorySet 仓储
// 图书仓储按redis.enabled决定是否套缓存
var repositorySet = wire.NewSet(
	provideBookRepository,
	relational.NewOrderRepository,
	relational.NewReviewRepository,
)

// applicationSet 应用服务
var applicationSet = wire.NewSet(
	appbook.NewService,
	apporder.NewService,
	appreview.NewService,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewOrderHandler,
	handler.NewReviewHandler,
	router.New,
)

// InitializeApp 组装整个应用
// cleanup按创建的相反顺序关闭Redis和数据库
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
