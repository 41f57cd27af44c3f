package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/dto"
	"github.com/duboisderek/lottodraw/pkg/auth"
	"github.com/duboisderek/lottodraw/pkg/utils"
)

type AdmissionService interface {
	PurchaseTicket(ctx context.Context, userID, drawID int, numbers []int, cost float64) (*domain.Ticket, error)
	GetUserTickets(ctx context.Context, userID int) ([]domain.Ticket, error)
}

type LedgerService interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.LedgerTransaction, error)
}

type TicketHandler struct {
	admissionService AdmissionService
	ledgerService    LedgerService
	ticketPrice      float64
}

func New(admissionService AdmissionService, ledgerService LedgerService, ticketPrice float64) *TicketHandler {
	return &TicketHandler{
		admissionService: admissionService,
		ledgerService:    ledgerService,
		ticketPrice:      ticketPrice,
	}
}

func ticketToDTO(t *domain.Ticket) dto.TicketResponseDTO {
	return dto.TicketResponseDTO{
		ID:            t.ID,
		DrawID:        t.DrawID,
		Numbers:       t.Numbers,
		Cost:          t.Cost,
		MatchCount:    t.MatchCount,
		WinningAmount: t.WinningAmount,
		CreatedAt:     t.CreatedAt,
	}
}

// Purchase godoc
//
//	@Summary		Buy a ticket
//	@Description	Buy one ticket with six chosen numbers for the given draw. The stake is debited from the user balance.
//	@Tags			Tickets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseTicketRequestDTO	true	"Ticket request"
//	@Success		200		{object}	dto.TicketResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Draw not found"
//	@Failure		409		{object}	utils.Response	"Draw locked or duplicate ticket"
//	@Failure		422		{object}	utils.Response	"Invalid number set"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tickets [post]
func (h *TicketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseTicketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ticket, err := h.admissionService.PurchaseTicket(r.Context(), userID, req.DrawID, req.Numbers, h.ticketPrice)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDrawNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrDrawLocked), errors.Is(err, domain.ErrDuplicateTicket):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrInvalidNumberSet):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ticketToDTO(ticket))
}

// GetTickets godoc
//
//	@Summary		Get ticket history
//	@Description	All tickets of the authenticated user, newest first
//	@Tags			Tickets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TicketResponseDTO
//	@Success		204	{object}	utils.Response	"No tickets"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tickets [get]
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	userTickets, err := h.admissionService.GetUserTickets(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tickets")
		return
	}
	if len(userTickets) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No tickets")
		return
	}

	response := make([]dto.TicketResponseDTO, len(userTickets))
	for i, t := range userTickets {
		response[i] = ticketToDTO(&t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current balance of the authenticated user
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *TicketHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil || balance == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance.CurrentBalance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	Ledger transaction history of the authenticated user, newest first
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *TicketHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tr := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Amount:      tr.Amount,
			Reason:      tr.Reason,
			ProcessedAt: tr.ProcessedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
