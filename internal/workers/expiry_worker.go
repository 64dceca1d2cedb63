package workers

import (
	"context"
	"time"

	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
	"github.com/Deepanshu41008/Yapassio-platform/internal/repositories"
)

// ExpiryWorker flips pending connection requests to expired once their
// seven-day window passes, so stale requests stop blocking new ones.
type ExpiryWorker struct {
	requestRepo repositories.MatchingRequestRepository
	interval    time.Duration
	log         logger.Logger
}

func NewExpiryWorker(requestRepo repositories.MatchingRequestRepository, interval time.Duration, log logger.Logger) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpiryWorker{
		requestRepo: requestRepo,
		interval:    interval,
		log:         log,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *ExpiryWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("expiry worker stopped", nil)
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *ExpiryWorker) sweep() {
	expired, err := w.requestRepo.ExpireOverdue(time.Now().UTC())
	if err != nil {
		w.log.WithError(err).Error("failed to expire overdue connection requests", nil)
		return
	}
	if expired > 0 {
		w.log.Info("expired overdue connection requests", map[string]interface{}{"count": expired})
	}
}
