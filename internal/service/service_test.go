package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/duboisderek/lottodraw/internal/config"
	"github.com/duboisderek/lottodraw/internal/notifier"
	"github.com/duboisderek/lottodraw/internal/pg"
	"github.com/duboisderek/lottodraw/internal/repo"
	"github.com/duboisderek/lottodraw/pkg/clock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, mockTxManager)

	cfg := &config.Config{
		DrawSchedule:     "0 20 * * 5",
		NumberMin:        1,
		NumberMax:        37,
		NumbersPerTicket: 6,
		DefaultJackpot:   100000,
		Tier6Share:       0.4,
		Tier5Share:       0.075,
		Tier4Share:       0.025,
	}

	services := New(repos, mockTxManager, cfg, clock.New(), notifier.LogNotifier{})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.DrawService)
	assert.NotNil(t, services.SettlementService)
	assert.NotNil(t, services.AdmissionService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.SchedulerDraws)
}
