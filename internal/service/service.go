package service

import (
	"github.com/duboisderek/lottodraw/internal/config"
	"github.com/duboisderek/lottodraw/internal/handlers/auth"
	"github.com/duboisderek/lottodraw/internal/handlers/draws"
	"github.com/duboisderek/lottodraw/internal/handlers/tickets"
	"github.com/duboisderek/lottodraw/internal/notifier"
	"github.com/duboisderek/lottodraw/internal/pg"
	"github.com/duboisderek/lottodraw/internal/repo"
	"github.com/duboisderek/lottodraw/internal/scheduler"

	"github.com/duboisderek/lottodraw/internal/service/admissionservice"
	"github.com/duboisderek/lottodraw/internal/service/authservice"
	"github.com/duboisderek/lottodraw/internal/service/drawservice"
	"github.com/duboisderek/lottodraw/internal/service/ledgerservice"
	"github.com/duboisderek/lottodraw/internal/service/settlementservice"

	pkgauth "github.com/duboisderek/lottodraw/pkg/auth"
	"github.com/duboisderek/lottodraw/pkg/clock"
)

type Services struct {
	AuthService       auth.Service
	DrawService       draws.DrawService
	SettlementService draws.SettlementService
	AdmissionService  tickets.AdmissionService
	LedgerService     tickets.LedgerService

	// SchedulerDraws is the same draw service, shaped for the
	// background scheduler loop.
	SchedulerDraws scheduler.DrawService
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config, clk clock.Clock, ntf notifier.Notifier) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	drawService := drawservice.New(repo.DrawRepo, repo.TicketRepo, cfg, clk)
	admissionService := admissionservice.New(repo.DrawRepo, repo.TicketRepo, ledgerService, txManager, cfg, clk)
	settlementService := settlementservice.New(repo.DrawRepo, repo.TicketRepo, ledgerService, drawService, ntf, txManager, cfg)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		DrawService:       drawService,
		SettlementService: settlementService,
		AdmissionService:  admissionService,
		LedgerService:     ledgerService,
		SchedulerDraws:    drawService,
	}
}
