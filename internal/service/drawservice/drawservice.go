package drawservice

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/duboisderek/lottodraw/internal/config"
	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/pkg/clock"
)

type Repo interface {
	GetCurrent(ctx context.Context) (*domain.Draw, error)
	GetByID(ctx context.Context, drawID int) (*domain.Draw, error)
	Create(ctx context.Context, scheduledAt time.Time, jackpotAmount float64) (*domain.Draw, error)
	Cancel(ctx context.Context, drawID int) error
	MarkNotified(ctx context.Context, drawID int, at time.Time) (bool, error)
}

type TicketRepo interface {
	CountByDrawID(ctx context.Context, drawID int) (int, error)
	TierBreakdown(ctx context.Context, drawID int) (map[int]int, error)
}

type Service struct {
	drawRepo       Repo
	ticketRepo     TicketRepo
	schedule       cron.Schedule
	clock          clock.Clock
	defaultJackpot float64
}

func New(drawRepo Repo, ticketRepo TicketRepo, cfg *config.Config, clk clock.Clock) *Service {
	schedule, err := cron.ParseStandard(cfg.DrawSchedule)
	if err != nil {
		zap.L().Warn("invalid draw schedule, falling back to daily cadence",
			zap.String("schedule", cfg.DrawSchedule), zap.Error(err))
		schedule = nil
	}
	return &Service{
		drawRepo:       drawRepo,
		ticketRepo:     ticketRepo,
		schedule:       schedule,
		clock:          clk,
		defaultJackpot: cfg.DefaultJackpot,
	}
}

// NextDrawTime returns the scheduled moment of the draw following
// `after` per the configured cron cadence, or tomorrow at 20:00 when no
// valid cadence is configured.
func (s *Service) NextDrawTime(after time.Time) time.Time {
	if s.schedule != nil {
		return s.schedule.Next(after)
	}
	tomorrow := after.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 20, 0, 0, 0, after.Location())
}

func (s *Service) GetCurrentDraw(ctx context.Context) (*domain.Draw, error) {
	draw, err := s.drawRepo.GetCurrent(ctx)
	if err != nil {
		zap.L().Error("failed to get current draw", zap.Error(err))
		return nil, err
	}
	return draw, nil
}

func (s *Service) GetDraw(ctx context.Context, drawID int) (*domain.Draw, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		zap.L().Error("failed to get draw", zap.Error(err))
		return nil, err
	}
	if draw == nil {
		return nil, domain.ErrDrawNotFound
	}
	return draw, nil
}

// CreateDraw opens a new draw. A zero scheduledAt means "next per
// cadence", a non-positive jackpot means the configured default.
func (s *Service) CreateDraw(ctx context.Context, scheduledAt time.Time, jackpotAmount float64) (*domain.Draw, error) {
	if scheduledAt.IsZero() {
		scheduledAt = s.NextDrawTime(s.clock.Now())
	}
	if jackpotAmount <= 0 {
		jackpotAmount = s.defaultJackpot
	}
	draw, err := s.drawRepo.Create(ctx, scheduledAt, jackpotAmount)
	if err != nil {
		return nil, err
	}
	zap.L().Info("draw created",
		zap.Int("drawNumber", draw.DrawNumber),
		zap.Time("scheduledAt", draw.ScheduledAt),
		zap.Float64("jackpot", draw.JackpotAmount))
	return draw, nil
}

// EnsureCurrentDraw returns the open draw, creating the next one when
// none exists. A concurrent creator losing the unique-index race simply
// refetches the winner's draw.
func (s *Service) EnsureCurrentDraw(ctx context.Context) (*domain.Draw, error) {
	draw, err := s.drawRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if draw != nil {
		return draw, nil
	}

	draw, err = s.CreateDraw(ctx, time.Time{}, 0)
	if errors.Is(err, domain.ErrDuplicateDrawNumber) {
		return s.drawRepo.GetCurrent(ctx)
	}
	if err != nil {
		return nil, err
	}
	return draw, nil
}

func (s *Service) CancelDraw(ctx context.Context, drawID int) error {
	if err := s.drawRepo.Cancel(ctx, drawID); err != nil {
		return err
	}
	zap.L().Info("draw cancelled", zap.Int("drawID", drawID))
	return nil
}

func (s *Service) GetDrawStats(ctx context.Context, drawID int) (*domain.DrawStats, error) {
	draw, err := s.GetDraw(ctx, drawID)
	if err != nil {
		return nil, err
	}
	total, err := s.ticketRepo.CountByDrawID(ctx, drawID)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.ticketRepo.TierBreakdown(ctx, drawID)
	if err != nil {
		return nil, err
	}
	return &domain.DrawStats{
		DrawID:        draw.ID,
		DrawNumber:    draw.DrawNumber,
		Status:        draw.Status,
		JackpotAmount: draw.JackpotAmount,
		TotalTickets:  total,
		TierBreakdown: breakdown,
	}, nil
}

// MarkDrawNotified reports whether this caller owns the one "draw
// starting" notification for the draw.
func (s *Service) MarkDrawNotified(ctx context.Context, drawID int) (bool, error) {
	return s.drawRepo.MarkNotified(ctx, drawID, s.clock.Now())
}
