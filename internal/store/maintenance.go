package store

import (
	"context"
	"fmt"
	"time"

	"github.com/zhouzirui/museum-guide/backend/internal/logger"
)

// Pinger 由需要网络连接的引擎实现。
type Pinger interface {
	Ping(ctx context.Context) error
}

// Purger 由不能自行过期的持久化引擎实现。
type Purger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CheckReachable pings engines that talk to a server; local engines always pass.
func CheckReachable(ctx context.Context, st Store) error {
	p, ok := st.(Pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("session store unreachable: %w", err)
	}
	return nil
}

// RunPurger 立即清理一次，之后每个 interval 删除超过 ttl 未更新的会话，直到 ctx 结束。
func RunPurger(ctx context.Context, p Purger, ttl, interval time.Duration, now func() time.Time) {
	log := logger.Named("store")
	if now == nil {
		now = time.Now
	}

	sweep := func() {
		n, err := p.PurgeBefore(ctx, now().Add(-ttl))
		if err != nil {
			if ctx.Err() == nil {
				log.Warnw("purge expired sessions failed", "error", err)
			}
			return
		}
		if n > 0 {
			log.Infow("purged expired sessions", "count", n, "ttl", ttl)
		}
	}

	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
