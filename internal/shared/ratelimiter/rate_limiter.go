// Package ratelimiter はキーごとの固定ウィンドウ方式で操作回数を制限します。
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// window は1キー分のカウンタです。
type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter は、ログイン試行などの操作の頻度をキーごとに制限します。
// 待機はせず、上限を超えた呼び出しは即座に拒否されます。
type RateLimiter struct {
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limitが0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow はkeyの試行を1回数え、上限以内であればtrueを返します。
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
	}

	w.count++
	if w.count > rl.limit {
		slog.Warn("rate limit hit", "key", key, "limit", rl.limit, "retry_after", rl.interval-now.Sub(w.lastReset))
		return false
	}
	return true
}

// Reset はkeyのカウンタを破棄します。
func (rl *RateLimiter) Reset(key string) {
	rl.mu.Lock()
	delete(rl.windows, key)
	rl.mu.Unlock()
}
