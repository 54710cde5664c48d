package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExpiredDeleter removes sessions past their expiry.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// StartExpiryCleaner removes expired sessions every interval until ctx is done.
func StartExpiryCleaner(
	ctx context.Context,
	store ExpiredDeleter,
	interval time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := store.DeleteExpired(ctx)
				if err != nil {
					log.Error("failed to clean expired sessions", zap.Error(err))
					continue
				}
				if removed > 0 {
					log.Info("cleaned expired sessions", zap.Int("removed", removed))
				}
			}
		}
	}()
}
