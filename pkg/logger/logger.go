// Package logger 基于logrus的结构化日志
//
// 用法：
//
//	log, _ := logger.New(cfg.Log)
//	log.WithField("book_id", id).Info("图书已创建")
//
// 请求级别的日志通过context传递，中间件写入、业务代码读取：
//
//	entry := logger.FromContext(ctx)
//	entry.WithError(err).Warn("缓存写入失败")
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config 日志配置
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // text | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// Logger 应用日志
type Logger struct {
	*logrus.Logger
}

// New 根据配置创建日志
func New(cfg Config) (*Logger, error) {
	l := logrus.New()

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别: %s", cfg.Level)
	}
	l.SetLevel(lvl)

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"})
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}
	l.SetOutput(out)
	l.SetReportCaller(cfg.EnableCaller)

	return &Logger{Logger: l}, nil
}

// NewDefault 默认日志（info级别、文本格式、stdout）
func NewDefault() *Logger {
	l, _ := New(Config{Level: "info", Format: "text", Output: "stdout"})
	return l
}

// NewNop 丢弃所有输出，测试用
func NewNop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return f, nil
	}
}

type ctxKey struct{}

var fallback = logrus.NewEntry(logrus.StandardLogger())

// WithEntry 把日志entry放进context
func WithEntry(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext 取出context中的日志entry，没有则返回标准logger
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok && entry != nil {
			return entry
		}
	}
	return fallback
}
