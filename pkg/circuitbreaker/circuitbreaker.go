// Package circuitbreaker 熔断器
//
// 三种状态:
//
//	CLOSED    正常放行,统计连续失败次数,达到阈值转OPEN
//	OPEN      直接返回ErrOpen,不调用下游;OpenTimeout后转HALF_OPEN
//	HALF_OPEN 放行最多HalfOpenRequests个探测请求,成功转CLOSED,失败转回OPEN
//
// 用法:
//
//	cb := circuitbreaker.New(circuitbreaker.Options{Name: "redis", FailureThreshold: 5, OpenTimeout: 30 * time.Second})
//	err := cb.Execute(func() error {
//	    return client.Get(ctx, key).Err()
//	})
//	if errors.Is(err, circuitbreaker.ErrOpen) {
//	    // 熔断中,走降级逻辑
//	}
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpen 熔断中,请求没有被执行
var ErrOpen = errors.New("circuit breaker is open")

// Options 熔断器配置
type Options struct {
	Name string

	// FailureThreshold 连续失败多少次后熔断,<=0时取5
	FailureThreshold int

	// OpenTimeout 熔断持续时间,<=0时取30s
	OpenTimeout time.Duration

	// HalfOpenRequests 半开状态允许的探测请求数,<=0时取1
	HalfOpenRequests int

	// OnStateChange 状态变化回调,释放锁之后调用,回调里可以再调用State
	OnStateChange func(name string, from, to State)

	// Now 时钟,测试时注入
	Now func() time.Time
}

// Breaker 熔断器,并发安全
type Breaker struct {
	opts Options

	mu          sync.Mutex
	state       State
	failures    int // CLOSED下的连续失败次数
	inFlight    int // HALF_OPEN下已放行的探测数
	generation  uint64
	openedUntil time.Time
	pending     []transition // 持锁期间产生的状态变化,解锁后再回调
}

type transition struct {
	from, to State
}

// New 创建熔断器
func New(opts Options) *Breaker {
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = 30 * time.Second
	}
	if opts.HalfOpenRequests <= 0 {
		opts.HalfOpenRequests = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Breaker{opts: opts, state: StateClosed}
}

// Execute 熔断器允许时执行fn,返回fn的错误;不允许时返回ErrOpen
// fn panic按失败记录,panic继续向上抛
func (b *Breaker) Execute(fn func() error) (err error) {
	generation, err := b.before()
	if err != nil {
		return err
	}

	success := false
	defer func() {
		b.after(generation, success)
	}()

	err = fn()
	success = err == nil
	return err
}

// State 当前状态
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.unlock()
	return b.current()
}

// unlock 释放锁,再触发持锁期间积攒的状态变化回调
func (b *Breaker) unlock() {
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()

	if b.opts.OnStateChange == nil {
		return
	}
	for _, tr := range pending {
		b.opts.OnStateChange(b.opts.Name, tr.from, tr.to)
	}
}

func (b *Breaker) before() (uint64, error) {
	b.mu.Lock()
	defer b.unlock()

	switch b.current() {
	case StateOpen:
		return b.generation, ErrOpen
	case StateHalfOpen:
		if b.inFlight >= b.opts.HalfOpenRequests {
			return b.generation, ErrOpen
		}
		b.inFlight++
	}
	return b.generation, nil
}

// after 记录结果
// 执行期间状态已经切换过(generation变了)的结果直接丢弃
func (b *Breaker) after(generation uint64, success bool) {
	b.mu.Lock()
	defer b.unlock()

	state := b.current()
	if generation != b.generation {
		return
	}

	switch state {
	case StateClosed:
		if success {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.opts.FailureThreshold {
			b.setState(StateOpen)
		}
	case StateHalfOpen:
		if success {
			b.setState(StateClosed)
		} else {
			b.setState(StateOpen)
		}
	}
}

// current OPEN超时后转HALF_OPEN,调用方持有锁
func (b *Breaker) current() State {
	if b.state == StateOpen && !b.opts.Now().Before(b.openedUntil) {
		b.setState(StateHalfOpen)
	}
	return b.state
}

func (b *Breaker) setState(to State) {
	from := b.state
	if from == to {
		return
	}

	b.state = to
	b.generation++
	b.failures = 0
	b.inFlight = 0
	if to == StateOpen {
		b.openedUntil = b.opts.Now().Add(b.opts.OpenTimeout)
	}
	b.pending = append(b.pending, transition{from: from, to: to})
}
