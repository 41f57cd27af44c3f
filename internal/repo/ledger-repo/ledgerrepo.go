package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/pg"
)

// Repository owns user balances and their append-only transaction
// history. Every mutation goes through Credit or Debit so the history
// always explains the balance.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, current_balance)
        VALUES ($1, 0)
        RETURNING id, user_id, current_balance
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	if err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance); err != nil {
		zap.L().Error("can't create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit adds amount to the user balance and appends the matching
// history entry, atomically.
func (r *Repository) Credit(ctx context.Context, userID int, amount float64, reason string) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.lockBalance(ctx, userID); err != nil {
			return err
		}
		return r.apply(ctx, userID, amount, reason)
	})
}

// Debit subtracts amount from the user balance, failing with
// ErrInsufficientFunds when the locked balance cannot cover it.
func (r *Repository) Debit(ctx context.Context, userID int, amount float64, reason string) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := r.lockBalance(ctx, userID)
		if err != nil {
			return err
		}
		if current < amount {
			return domain.ErrInsufficientFunds
		}
		return r.apply(ctx, userID, -amount, reason)
	})
}

func (r *Repository) lockBalance(ctx context.Context, userID int) (float64, error) {
	query := `
        SELECT current_balance
        FROM balances
        WHERE user_id = $1
        FOR UPDATE
    `
	var current float64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&current); err != nil {
		zap.L().Error("can't lock user balance", zap.Error(err))
		return 0, err
	}
	return current, nil
}

func (r *Repository) apply(ctx context.Context, userID int, delta float64, reason string) error {
	update := `
        UPDATE balances
        SET current_balance = current_balance + $1
        WHERE user_id = $2
    `
	if _, err := r.db.Exec(ctx, update, delta, userID); err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return err
	}

	insert := `
        INSERT INTO ledger_transactions (user_id, amount, reason)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, insert, userID, delta, reason); err != nil {
		zap.L().Error("can't append ledger transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.LedgerTransaction, error) {
	query := `
        SELECT id, user_id, amount, reason, processed_at
        FROM ledger_transactions
        WHERE user_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get ledger transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.LedgerTransaction
	for rows.Next() {
		var tr domain.LedgerTransaction
		if err := rows.Scan(&tr.ID, &tr.UserID, &tr.Amount, &tr.Reason, &tr.ProcessedAt); err != nil {
			zap.L().Error("can't scan ledger transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tr)
	}
	return transactions, rows.Err()
}
