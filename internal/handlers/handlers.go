package handlers

import (
	"net/http"

	_ "github.com/duboisderek/lottodraw/docs"
	authhandlers "github.com/duboisderek/lottodraw/internal/handlers/auth"
	drawshandlers "github.com/duboisderek/lottodraw/internal/handlers/draws"
	ticketshandlers "github.com/duboisderek/lottodraw/internal/handlers/tickets"
	"github.com/duboisderek/lottodraw/internal/service"
	"github.com/duboisderek/lottodraw/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DrawHandler interface {
	GetCurrent(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	SubmitResults(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type TicketHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetTickets(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	DrawHandler   DrawHandler
	TicketHandler TicketHandler
}

func New(s *service.Services, ticketPrice float64) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		DrawHandler:   drawshandlers.New(s.DrawService, s.SettlementService),
		TicketHandler: ticketshandlers.New(s.AdmissionService, s.LedgerService, ticketPrice),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/draws/current", h.DrawHandler.GetCurrent)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Route("/tickets", func(r chi.Router) {
					r.Post("/", h.TicketHandler.Purchase)
					r.Get("/", h.TicketHandler.GetTickets)
				})
				r.Get("/balance", h.TicketHandler.GetBalance)
				r.Get("/transactions", h.TicketHandler.GetTransactions)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Route("/draws", func(r chi.Router) {
				r.Post("/", h.DrawHandler.Create)
				r.Post("/{drawID}/results", h.DrawHandler.SubmitResults)
				r.Post("/{drawID}/cancel", h.DrawHandler.Cancel)
				r.Get("/{drawID}/stats", h.DrawHandler.GetStats)
			})
		})
	})

	return r
}
