package feed

import (
	"context"
	"time"
)

// Policy 定義固定間隔、固定次數的重試預算，不做指數退避。
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy 回傳預設重試預算：3 次、間隔 2 秒。
func DefaultPolicy() Policy {
	return Policy{Attempts: 3, Delay: 2 * time.Second}
}

// WithRetry 以固定間隔重試 op，用盡預算後回傳最後一次的錯誤。
// ctx 取消時中斷等待，回傳 ctx 的錯誤。
func WithRetry[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(p.Delay):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return zero, lastErr
}
