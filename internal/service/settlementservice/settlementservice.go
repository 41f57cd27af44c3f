package settlementservice

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/duboisderek/lottodraw/internal/config"
	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/pg"
	"github.com/duboisderek/lottodraw/pkg/validate"
)

type DrawRepo interface {
	GetByIDForUpdate(ctx context.Context, drawID int) (*domain.Draw, error)
	SetWinningNumbers(ctx context.Context, drawID int, numbers []int) error
	Complete(ctx context.Context, drawID int) error
	IncrementJackpot(ctx context.Context, drawID int, amount float64) error
}

type TicketRepo interface {
	FindByDrawID(ctx context.Context, drawID int) ([]domain.Ticket, error)
	UpdateSettlement(ctx context.Context, ticketID, matchCount int, winningAmount float64) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount float64, reason string) error
}

// NextDrawProvider hands rollover a destination: the draw following the
// one being settled, created on the spot when none is open yet.
type NextDrawProvider interface {
	EnsureCurrentDraw(ctx context.Context) (*domain.Draw, error)
}

type Notifier interface {
	Notify(ctx context.Context, event string, payload any) error
}

type payout struct {
	ticketID   int
	userID     int
	matchCount int
	amount     float64
}

// Service settles completed draws: it computes matches, pays the match
// tiers out of the jackpot and rolls the unclaimed jackpot share into
// the next draw. The whole run is one transaction, so a mid-run ledger
// failure pays nobody.
type Service struct {
	drawRepo   DrawRepo
	ticketRepo TicketRepo
	ledger     Ledger
	nextDraw   NextDrawProvider
	notifier   Notifier
	txManager  pg.TXManager

	tierShares       map[int]float64
	numberMin        int
	numberMax        int
	numbersPerTicket int

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func New(drawRepo DrawRepo, ticketRepo TicketRepo, ledger Ledger, nextDraw NextDrawProvider, notifier Notifier, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		drawRepo:         drawRepo,
		ticketRepo:       ticketRepo,
		ledger:           ledger,
		nextDraw:         nextDraw,
		notifier:         notifier,
		txManager:        txManager,
		tierShares:       cfg.TierShares(),
		numberMin:        cfg.NumberMin,
		numberMax:        cfg.NumberMax,
		numbersPerTicket: cfg.NumbersPerTicket,
		locks:            make(map[int]*sync.Mutex),
	}
}

// drawLock serializes settlement per draw inside this process. The row
// lock taken by GetByIDForUpdate covers other processes.
func (s *Service) drawLock(drawID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[drawID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[drawID] = lock
	}
	return lock
}

// SettleDraw runs the payout algorithm for one draw. Concurrent calls
// for the same draw serialize; every call after the first returns
// ErrAlreadyCompleted.
func (s *Service) SettleDraw(ctx context.Context, drawID int, winningNumbers []int) (*domain.SettlementResult, error) {
	if !validate.NumberSet(winningNumbers, s.numberMin, s.numberMax, s.numbersPerTicket) {
		return nil, domain.ErrInvalidNumberSet
	}

	lock := s.drawLock(drawID)
	lock.Lock()
	defer lock.Unlock()

	var (
		result  *domain.SettlementResult
		winners []payout
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		draw, err := s.drawRepo.GetByIDForUpdate(ctx, drawID)
		if err != nil {
			return err
		}
		if draw == nil {
			return domain.ErrDrawNotFound
		}
		switch draw.Status {
		case domain.DrawStatusCompleted:
			return domain.ErrAlreadyCompleted
		case domain.DrawStatusCancelled:
			return domain.ErrDrawCancelled
		}

		if err := s.drawRepo.SetWinningNumbers(ctx, drawID, winningNumbers); err != nil {
			return err
		}

		tickets, err := s.ticketRepo.FindByDrawID(ctx, drawID)
		if err != nil {
			return err
		}

		result, winners, err = s.payOut(ctx, draw, tickets, winningNumbers)
		if err != nil {
			return err
		}

		if err := s.drawRepo.Complete(ctx, drawID); err != nil {
			return err
		}

		if result.RolloverAmount > 0 {
			next, err := s.nextDraw.EnsureCurrentDraw(ctx)
			if err != nil {
				return fmt.Errorf("can't prepare rollover target: %w", err)
			}
			if err := s.drawRepo.IncrementJackpot(ctx, next.ID, result.RolloverAmount); err != nil {
				return err
			}
			zap.L().Info("jackpot rolled over",
				zap.Int("fromDraw", draw.DrawNumber),
				zap.Int("toDraw", next.DrawNumber),
				zap.Float64("amount", result.RolloverAmount))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("draw settled",
		zap.Int("drawID", result.DrawID),
		zap.Int("drawNumber", result.DrawNumber),
		zap.Float64("totalPaid", result.TotalPaid),
		zap.Float64("rollover", result.RolloverAmount))

	s.notifyWinners(ctx, result.DrawNumber, winners)
	return result, nil
}

// payOut buckets tickets into match tiers and credits every winning
// ticket its equal split of the tier pool. A credit failure aborts with
// a SettlementError naming every ticket left unpaid by the rollback.
func (s *Service) payOut(ctx context.Context, draw *domain.Draw, tickets []domain.Ticket, winningNumbers []int) (*domain.SettlementResult, []payout, error) {
	winning := make(map[int]struct{}, len(winningNumbers))
	for _, n := range winningNumbers {
		winning[n] = struct{}{}
	}

	tiers := make(map[int][]domain.Ticket)
	for _, ticket := range tickets {
		matches := 0
		for _, n := range ticket.Numbers {
			if _, ok := winning[n]; ok {
				matches++
			}
		}
		if _, pays := s.tierShares[matches]; pays {
			tiers[matches] = append(tiers[matches], ticket)
			continue
		}
		// below the paying tiers: record the match count, no payout
		if err := s.ticketRepo.UpdateSettlement(ctx, ticket.ID, matches, 0); err != nil {
			return nil, nil, err
		}
	}

	var allWinnerIDs []int
	for _, tier := range tiers {
		for _, ticket := range tier {
			allWinnerIDs = append(allWinnerIDs, ticket.ID)
		}
	}

	result := &domain.SettlementResult{
		DrawID:     draw.ID,
		DrawNumber: draw.DrawNumber,
		TierCounts: make(map[int]int),
	}
	var winners []payout

	for _, tier := range s.payingTiers() {
		share := s.tierShares[tier]
		bucket := tiers[tier]
		result.TierCounts[tier] = len(bucket)
		if len(bucket) == 0 {
			continue
		}

		pool := round2(draw.JackpotAmount * share)
		perTicket := floor2(pool / float64(len(bucket)))
		for _, ticket := range bucket {
			if err := s.ticketRepo.UpdateSettlement(ctx, ticket.ID, tier, perTicket); err != nil {
				return nil, nil, &domain.SettlementError{DrawID: draw.ID, UnpaidTicketIDs: allWinnerIDs, Err: err}
			}
			reason := fmt.Sprintf("winnings draw #%d", draw.DrawNumber)
			if err := s.ledger.Credit(ctx, ticket.UserID, perTicket, reason); err != nil {
				return nil, nil, &domain.SettlementError{DrawID: draw.ID, UnpaidTicketIDs: allWinnerIDs, Err: err}
			}
			result.TotalPaid = round2(result.TotalPaid + perTicket)
			winners = append(winners, payout{
				ticketID:   ticket.ID,
				userID:     ticket.UserID,
				matchCount: tier,
				amount:     perTicket,
			})
		}
	}

	// only the untouched jackpot tier rolls forward; empty 4- and
	// 5-match tiers stay with the house
	if len(tiers[s.numbersPerTicket]) == 0 {
		result.RolloverAmount = round2(draw.JackpotAmount * s.tierShares[s.numbersPerTicket])
	}

	return result, winners, nil
}

// notifyWinners fires winner notifications once, after the settlement
// transaction committed. Delivery failures are logged and never undo a
// settlement.
func (s *Service) notifyWinners(ctx context.Context, drawNumber int, winners []payout) {
	var g errgroup.Group
	for _, w := range winners {
		w := w
		g.Go(func() error {
			return s.notifier.Notify(ctx, "winner", map[string]any{
				"ticket_id":   w.ticketID,
				"user_id":     w.userID,
				"draw_number": drawNumber,
				"match_count": w.matchCount,
				"amount":      w.amount,
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("winner notification failed", zap.Error(err))
	}
}

// payingTiers lists the configured match tiers, best first.
func (s *Service) payingTiers() []int {
	tiers := make([]int, 0, len(s.tierShares))
	for tier := range s.tierShares {
		tiers = append(tiers, tier)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiers)))
	return tiers
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func floor2(v float64) float64 {
	return math.Floor(v*100) / 100
}
