package repo

import (
	"github.com/duboisderek/lottodraw/internal/pg"
	drawrepo "github.com/duboisderek/lottodraw/internal/repo/draw-repo"
	ledgerrepo "github.com/duboisderek/lottodraw/internal/repo/ledger-repo"
	ticketrepo "github.com/duboisderek/lottodraw/internal/repo/ticket-repo"
	userrepo "github.com/duboisderek/lottodraw/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo   *userrepo.Repository
	DrawRepo   *drawrepo.Repository
	TicketRepo *ticketrepo.Repository
	LedgerRepo *ledgerrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:   userrepo.New(conn),
		DrawRepo:   drawrepo.New(conn, txManager),
		TicketRepo: ticketrepo.New(conn),
		LedgerRepo: ledgerrepo.New(conn, txManager),
	}
}
