package repo

import (
	"testing"

	"github.com/duboisderek/lottodraw/internal/pg"
	drawrepo "github.com/duboisderek/lottodraw/internal/repo/draw-repo"
	ledgerrepo "github.com/duboisderek/lottodraw/internal/repo/ledger-repo"
	ticketrepo "github.com/duboisderek/lottodraw/internal/repo/ticket-repo"
	userrepo "github.com/duboisderek/lottodraw/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.DrawRepo)
	assert.NotNil(t, repo.TicketRepo)
	assert.NotNil(t, repo.LedgerRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &drawrepo.Repository{}, repo.DrawRepo)
	assert.IsType(t, &ticketrepo.Repository{}, repo.TicketRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
