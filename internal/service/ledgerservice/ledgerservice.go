package ledgerservice

import (
	"context"

	"github.com/duboisderek/lottodraw/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount float64, reason string) error
	Debit(ctx context.Context, userID int, amount float64, reason string) error
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.LedgerTransaction, error)
}

type Service struct {
	ledgerRepo Repo
}

func New(ledgerRepo Repo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.CreateBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) Credit(ctx context.Context, userID int, amount float64, reason string) error {
	if err := s.ledgerRepo.Credit(ctx, userID, amount, reason); err != nil {
		zap.L().Error("failed to credit user", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Debit(ctx context.Context, userID int, amount float64, reason string) error {
	if err := s.ledgerRepo.Debit(ctx, userID, amount, reason); err != nil {
		return err
	}
	return nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.LedgerTransaction, error) {
	transactions, err := s.ledgerRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
