// Package metrics 基于Prometheus的指标收集
//
// 指标分三组：
//   - HTTP：请求总数、耗时分布、在途请求数（由middleware.Metrics写入）
//   - 仓储：每次数据库操作的次数和耗时，按resource/operation/result区分
//   - 缓存：图书详情缓存的命中与未命中
//
// 用法：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
//
//	start := time.Now()
//	err := db.Create(&model).Error
//	metrics.ObserveRepository("book", "create", start, err)
//
// 指标类型的选择：
//   - 计数用Counter：请求数、错误数
//   - 瞬时值用Gauge：在途请求数
//   - 分布用Histogram：耗时
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 操作结果标签值
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/api/v1/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 仓储指标

	// RepositoryOperationsTotal 数据库操作总数
	// 标签：resource（book/order/review）、operation（list/get/create/...）、result（success/failure）
	RepositoryOperationsTotal *prometheus.CounterVec

	// RepositoryOperationDuration 数据库操作耗时
	RepositoryOperationDuration *prometheus.HistogramVec

	// 缓存指标

	// CacheRequestsTotal 缓存查询总数
	// 标签：cache（book）、result（hit/miss/error）
	CacheRequestsTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry
// 可以重复调用，只有第一次生效
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		RepositoryOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "repository_operations_total",
				Help: "数据库操作总数",
			},
			[]string{"resource", "operation", "result"},
		)

		RepositoryOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "repository_operation_duration_seconds",
				Help: "数据库操作耗时（秒）",
				// 单条SQL通常在毫秒级
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"resource", "operation"},
		)

		CacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_requests_total",
				Help: "缓存查询总数",
			},
			[]string{"cache", "result"},
		)
	})
}

// Handler /metrics端点
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRepository 记录一次数据库操作
// 未调用InitMetrics时什么都不做（单元测试里仓储可以不依赖指标）
func ObserveRepository(resource, operation string, start time.Time, err error) {
	if RepositoryOperationsTotal == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	RepositoryOperationsTotal.WithLabelValues(resource, operation, result).Inc()
	RepositoryOperationDuration.WithLabelValues(resource, operation).Observe(time.Since(start).Seconds())
}

// ObserveCache 记录一次缓存查询
func ObserveCache(cache, result string) {
	if CacheRequestsTotal == nil {
		return
	}
	CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
