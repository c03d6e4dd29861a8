// Package router 组装Gin引擎
//
// 中间件顺序: Recovery → Tracing → RequestLogger → Metrics → Handler
// RequestLogger在Tracing之后,日志里才能带上trace_id
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookshop/docs" // swagger文档注册
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/response"
)

// New 创建Gin引擎并注册全部路由
func New(
	cfg *config.Config,
	log *logger.Logger,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	reviewHandler *handler.ReviewHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	metrics.InitMetrics()

	r := gin.New()
	// Recovery必须在最内层:panic转成500后外层中间件照常收尾
	r.Use(middleware.Tracing())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.POST("", bookHandler.Create)
			books.GET("/:id", bookHandler.Get)
			books.PUT("/:id", bookHandler.Update)
			books.DELETE("/:id", bookHandler.Delete)
			books.GET("/:id/reviews", bookHandler.ListReviews)
			books.GET("/:id/orders", bookHandler.ListOrders)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.POST("", orderHandler.Create)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id", orderHandler.Update)
			orders.DELETE("/:id", orderHandler.Delete)
			orders.POST("/:id/books/:bookId", orderHandler.AddBook)
			orders.DELETE("/:id/books/:bookId", orderHandler.RemoveBook)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.POST("", reviewHandler.Create)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.PUT("/:id", reviewHandler.Update)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}
	}

	return r
}
