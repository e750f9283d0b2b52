package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunReaper calls Reap every interval until ctx is done.
func (s *RoomStore) RunReaper(ctx context.Context, interval, ttl time.Duration, log *zap.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if ids := s.Reap(now, ttl); len(ids) > 0 {
				log.Info("reaped idle rooms", zap.Strings("rooms", ids), zap.Int("remaining", s.Len()))
			}
		}
	}
}
