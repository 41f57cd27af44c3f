package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name:   "Valid userID returns balance",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "current_balance"}).
					AddRow(1, 1, 500.5)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, current_balance FROM balances WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Balance{
				ID:             1,
				UserID:         1,
				CurrentBalance: 500.5,
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, current_balance FROM balances WHERE user_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, current_balance FROM balances WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name: "Successfully creates balance",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "current_balance"}).
					AddRow(1, 1, 0.0)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO balances (user_id, current_balance) VALUES ($1, 0) RETURNING id, user_id, current_balance`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Balance{
				ID:             1,
				UserID:         1,
				CurrentBalance: 0.0,
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO balances (user_id, current_balance) VALUES ($1, 0) RETURNING id, user_id, current_balance`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateBalance(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully credits balance and appends history",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`SELECT current_balance FROM balances WHERE user_id = $1 FOR UPDATE`)).
						WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"current_balance"}).AddRow(100.0))
					mock.ExpectExec(regexp.QuoteMeta(`UPDATE balances SET current_balance = current_balance + $1 WHERE user_id = $2`)).
						WithArgs(833.33, 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_transactions (user_id, amount, reason) VALUES ($1, $2, $3)`)).
						WithArgs(1, 833.33, "winnings draw #1001").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Lock failure aborts",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`SELECT current_balance FROM balances WHERE user_id = $1 FOR UPDATE`)).
						WithArgs(1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Credit(context.Background(), 1, 833.33, "winnings draw #1001")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Debit(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name        string
		amount      float64
		mockSetup   func()
		expectedErr error
	}{
		{
			name:   "Successfully debits stake",
			amount: 100.0,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`SELECT current_balance FROM balances WHERE user_id = $1 FOR UPDATE`)).
						WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"current_balance"}).AddRow(500.0))
					mock.ExpectExec(regexp.QuoteMeta(`UPDATE balances SET current_balance = current_balance + $1 WHERE user_id = $2`)).
						WithArgs(-100.0, 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_transactions (user_id, amount, reason) VALUES ($1, $2, $3)`)).
						WithArgs(1, -100.0, "ticket_purchase draw #1001").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
			expectedErr: nil,
		},
		{
			name:   "Insufficient funds leaves the balance untouched",
			amount: 100.0,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`SELECT current_balance FROM balances WHERE user_id = $1 FOR UPDATE`)).
						WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"current_balance"}).AddRow(40.0))
					return fn(ctx)
				})
			},
			expectedErr: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Debit(context.Background(), 1, tt.amount, "ticket_purchase draw #1001")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetTransactionsByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.LedgerTransaction
	}{
		{
			name: "Returns history, newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "reason", "processed_at"}).
					AddRow(2, 1, 833.33, "winnings draw #1001", now).
					AddRow(1, 1, -100.0, "ticket_purchase draw #1001", now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, amount, reason, processed_at FROM ledger_transactions WHERE user_id = $1 ORDER BY processed_at DESC`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expected: []domain.LedgerTransaction{
				{ID: 2, UserID: 1, Amount: 833.33, Reason: "winnings draw #1001", ProcessedAt: now},
				{ID: 1, UserID: 1, Amount: -100.0, Reason: "ticket_purchase draw #1001", ProcessedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, amount, reason, processed_at FROM ledger_transactions WHERE user_id = $1 ORDER BY processed_at DESC`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			transactions, err := repo.GetTransactionsByUserID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, transactions)
			}
		})
	}
}
