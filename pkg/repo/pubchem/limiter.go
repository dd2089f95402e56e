package pubchem

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay 单个调用方每秒 5 次请求
const DefaultDelay = 200 * time.Millisecond

// Limiter 限制对 PubChem 的请求速率
// 请求发出前调用 Acquire，请求结束后无论成败都调用 Release
type Limiter interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context)
}

// FixedDelay 每次请求后阻塞固定时长，只能约束单个顺序调用方的速率
type FixedDelay struct {
	delay time.Duration
}

func NewFixedDelay(delay time.Duration) *FixedDelay {
	if delay < 0 {
		delay = 0
	}
	return &FixedDelay{delay: delay}
}

func (f *FixedDelay) Acquire(_ context.Context) error {
	return nil
}

func (f *FixedDelay) Release(ctx context.Context) {
	if f.delay == 0 {
		return
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// TokenBucket 多个并发调用方共享的令牌桶
type TokenBucket struct {
	limiter *rate.Limiter
}

func NewTokenBucket(perSecond float64, burst int) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	return &TokenBucket{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (t *TokenBucket) Acquire(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

func (t *TokenBucket) Release(_ context.Context) {}

// Nop 不限速
type Nop struct{}

func (Nop) Acquire(_ context.Context) error { return nil }

func (Nop) Release(_ context.Context) {}
