package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"eventra/internal/service/resources"
)

// Scheduler periodically runs the resource replenish pass. It is a caller
// of the booking engine, not part of it; the pass itself is idempotent, so
// overlapping runs are harmless.
type Scheduler struct {
	sched  gocron.Scheduler
	svc    *resources.Service
	logger *slog.Logger
}

func New(svc *resources.Service, interval time.Duration, logger *slog.Logger) (*Scheduler, error) {
	const op = "scheduler.New"

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	s := &Scheduler{
		sched:  sched,
		svc:    svc,
		logger: logger,
	}

	if _, err := sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.replenish),
	); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) replenish() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	restored, err := s.svc.Replenish(ctx)
	if err != nil {
		s.logger.Error("replenish pass failed", "error", err)
		return
	}

	if restored > 0 {
		s.logger.Info("replenish pass restored resources", "units", restored)
	}
}
