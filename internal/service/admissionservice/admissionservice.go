package admissionservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/duboisderek/lottodraw/internal/config"
	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/pg"
	"github.com/duboisderek/lottodraw/pkg/clock"
	"github.com/duboisderek/lottodraw/pkg/validate"
)

type DrawRepo interface {
	GetByID(ctx context.Context, drawID int) (*domain.Draw, error)
}

type TicketRepo interface {
	FindByUserAndDraw(ctx context.Context, userID, drawID int) (*domain.Ticket, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int, amount float64, reason string) error
}

// Service admits ticket purchases into the currently open draw.
type Service struct {
	drawRepo   DrawRepo
	ticketRepo TicketRepo
	ledger     Ledger
	txManager  pg.TXManager
	clock      clock.Clock

	lockWindow       time.Duration
	numberMin        int
	numberMax        int
	numbersPerTicket int
}

func New(drawRepo DrawRepo, ticketRepo TicketRepo, ledger Ledger, txManager pg.TXManager, cfg *config.Config, clk clock.Clock) *Service {
	return &Service{
		drawRepo:         drawRepo,
		ticketRepo:       ticketRepo,
		ledger:           ledger,
		txManager:        txManager,
		clock:            clk,
		lockWindow:       cfg.LockWindow,
		numberMin:        cfg.NumberMin,
		numberMax:        cfg.NumberMax,
		numbersPerTicket: cfg.NumbersPerTicket,
	}
}

// PurchaseTicket validates the purchase and, in one transaction,
// re-checks the one-ticket-per-draw rule, debits the stake and creates
// the ticket. The precondition order is fixed: draw state, number set,
// duplicate, funds.
func (s *Service) PurchaseTicket(ctx context.Context, userID, drawID int, numbers []int, cost float64) (*domain.Ticket, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		zap.L().Error("failed to load draw for admission", zap.Error(err))
		return nil, err
	}
	if draw == nil {
		return nil, domain.ErrDrawNotFound
	}
	if draw.Locked(s.clock.Now(), s.lockWindow) {
		return nil, domain.ErrDrawLocked
	}

	if !validate.NumberSet(numbers, s.numberMin, s.numberMax, s.numbersPerTicket) {
		return nil, domain.ErrInvalidNumberSet
	}

	var ticket *domain.Ticket
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.ticketRepo.FindByUserAndDraw(ctx, userID, drawID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateTicket
		}

		reason := fmt.Sprintf("ticket_purchase draw #%d", draw.DrawNumber)
		if err := s.ledger.Debit(ctx, userID, cost, reason); err != nil {
			return err
		}

		ticket, err = s.ticketRepo.Create(ctx, &domain.Ticket{
			UserID:  userID,
			DrawID:  drawID,
			Numbers: numbers,
			Cost:    cost,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("ticket admitted",
		zap.Int("userID", userID),
		zap.Int("drawNumber", draw.DrawNumber),
		zap.Ints("numbers", numbers))
	return ticket, nil
}

func (s *Service) GetUserTickets(ctx context.Context, userID int) ([]domain.Ticket, error) {
	tickets, err := s.ticketRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch user tickets", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}
