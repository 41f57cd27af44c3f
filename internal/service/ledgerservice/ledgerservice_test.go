package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/duboisderek/lottodraw/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	ledgerRepo := NewMockRepo(ctrl)
	service := New(ledgerRepo)
	defer ctrl.Finish()
	return service, ledgerRepo
}

func TestGetBalance(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		expected      *domain.Balance
	}{
		{
			name: "Existing balance",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetBalance(gomock.Any(), 7).Return(&domain.Balance{
					UserID:         7,
					CurrentBalance: 350.50,
				}, nil)
			},
			expected: &domain.Balance{UserID: 7, CurrentBalance: 350.50},
		},
		{
			name: "Database error",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetBalance(gomock.Any(), 7).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.GetBalance(context.Background(), 7)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
		})
	}
}

func TestCreateBalance(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Fresh balance",
			prepareMock: func() {
				ledgerRepo.EXPECT().CreateBalance(gomock.Any(), 7).Return(&domain.Balance{UserID: 7}, nil)
			},
		},
		{
			name: "Database error",
			prepareMock: func() {
				ledgerRepo.EXPECT().CreateBalance(gomock.Any(), 7).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.CreateBalance(context.Background(), 7)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, balance.UserID)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful credit",
			prepareMock: func() {
				ledgerRepo.EXPECT().Credit(gomock.Any(), 7, 833.33, "winnings draw #1001").Return(nil)
			},
		},
		{
			name: "Database error",
			prepareMock: func() {
				ledgerRepo.EXPECT().Credit(gomock.Any(), 7, 833.33, "winnings draw #1001").Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Credit(context.Background(), 7, 833.33, "winnings draw #1001")

			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful debit",
			prepareMock: func() {
				ledgerRepo.EXPECT().Debit(gomock.Any(), 7, 100.0, "ticket_purchase draw #1001").Return(nil)
			},
		},
		{
			name: "Insufficient funds",
			prepareMock: func() {
				ledgerRepo.EXPECT().Debit(gomock.Any(), 7, 100.0, "ticket_purchase draw #1001").Return(domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Debit(context.Background(), 7, 100.0, "ticket_purchase draw #1001")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		expectedLen   int
	}{
		{
			name: "Full history",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetTransactionsByUserID(gomock.Any(), 7).Return([]domain.LedgerTransaction{
					{ID: 1, UserID: 7, Amount: -100, Reason: "ticket_purchase draw #1001"},
					{ID: 2, UserID: 7, Amount: 833.33, Reason: "winnings draw #1001"},
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "Database error",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetTransactionsByUserID(gomock.Any(), 7).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			transactions, err := service.GetTransactions(context.Background(), 7)

			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, transactions, tt.expectedLen)
			}
		})
	}
}
