package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/duboisderek/lottodraw/internal/config"
	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/notifier"
	"github.com/duboisderek/lottodraw/pkg/clock"
)

const (
	advanceInterval = time.Second * 60
	executeInterval = time.Second * 30
	notifyInterval  = time.Second * 60
)

type DrawService interface {
	GetCurrentDraw(ctx context.Context) (*domain.Draw, error)
	EnsureCurrentDraw(ctx context.Context) (*domain.Draw, error)
	MarkDrawNotified(ctx context.Context, drawID int) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, event string, payload any) error
}

// Service is the background control loop that advances draws over
// time. It keeps no draw state of its own: every tick re-reads the
// store, so a restarted instance picks up exactly where the previous
// one stopped.
type Service struct {
	draws    DrawService
	notifier Notifier
	clock    clock.Clock

	notifyLead time.Duration

	advanceInterval time.Duration
	executeInterval time.Duration
	notifyInterval  time.Duration
}

func New(draws DrawService, ntf Notifier, clk clock.Clock, cfg *config.Config) *Service {
	return &Service{
		draws:           draws,
		notifier:        ntf,
		clock:           clk,
		notifyLead:      cfg.NotifyLead,
		advanceInterval: advanceInterval,
		executeInterval: executeInterval,
		notifyInterval:  notifyInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("scheduler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	advance := time.NewTicker(s.advanceInterval)
	defer advance.Stop()
	execute := time.NewTicker(s.executeInterval)
	defer execute.Stop()
	notify := time.NewTicker(s.notifyInterval)
	defer notify.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping scheduler")
			return
		case <-advance.C:
			s.AdvanceTick(ctx)
		case <-execute.C:
			s.ExecuteTick(ctx)
		case <-notify.C:
			s.NotifyTick(ctx)
		}
	}
}

// AdvanceTick creates the next draw whenever no draw is open for
// admission. Errors are logged and retried on the next interval.
func (s *Service) AdvanceTick(ctx context.Context) {
	current, err := s.draws.GetCurrentDraw(ctx)
	if err != nil {
		zap.L().Error("advance tick failed", zap.Error(err))
		return
	}
	if current != nil {
		return
	}
	if _, err := s.draws.EnsureCurrentDraw(ctx); err != nil {
		zap.L().Error("can't create next draw", zap.Error(err))
	}
}

// ExecuteTick flags draws that reached their scheduled moment.
// Settlement itself is operator-triggered: winning numbers arrive from
// outside this loop's authority.
func (s *Service) ExecuteTick(ctx context.Context) {
	current, err := s.draws.GetCurrentDraw(ctx)
	if err != nil {
		zap.L().Error("execute tick failed", zap.Error(err))
		return
	}
	if current == nil {
		return
	}
	if !s.clock.Now().Before(current.ScheduledAt) {
		zap.L().Info("draw ready for settlement, waiting for winning numbers",
			zap.Int("drawNumber", current.DrawNumber),
			zap.Time("scheduledAt", current.ScheduledAt))
	}
}

// NotifyTick sends the "draw starting" event once per draw, inside the
// lead window before the scheduled time. The persisted notified_at
// stamp arbitrates, so restarts and extra instances cannot double-send.
func (s *Service) NotifyTick(ctx context.Context) {
	current, err := s.draws.GetCurrentDraw(ctx)
	if err != nil {
		zap.L().Error("notify tick failed", zap.Error(err))
		return
	}
	if current == nil || current.NotifiedAt != nil {
		return
	}

	now := s.clock.Now()
	if now.Before(current.ScheduledAt.Add(-s.notifyLead)) || !now.Before(current.ScheduledAt) {
		return
	}

	won, err := s.draws.MarkDrawNotified(ctx, current.ID)
	if err != nil {
		zap.L().Error("can't mark draw notified", zap.Error(err))
		return
	}
	if !won {
		return
	}

	err = s.notifier.Notify(ctx, notifier.EventDrawStarting, map[string]any{
		"draw_id":      current.ID,
		"draw_number":  current.DrawNumber,
		"scheduled_at": current.ScheduledAt,
	})
	if err != nil {
		zap.L().Warn("draw starting notification failed", zap.Error(err))
	}
}
