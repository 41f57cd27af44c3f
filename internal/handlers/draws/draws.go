package draws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/dto"
	"github.com/duboisderek/lottodraw/pkg/utils"
)

type DrawService interface {
	GetCurrentDraw(ctx context.Context) (*domain.Draw, error)
	CreateDraw(ctx context.Context, scheduledAt time.Time, jackpotAmount float64) (*domain.Draw, error)
	CancelDraw(ctx context.Context, drawID int) error
	GetDrawStats(ctx context.Context, drawID int) (*domain.DrawStats, error)
}

type SettlementService interface {
	SettleDraw(ctx context.Context, drawID int, winningNumbers []int) (*domain.SettlementResult, error)
}

type DrawHandler struct {
	drawService       DrawService
	settlementService SettlementService
}

func New(drawService DrawService, settlementService SettlementService) *DrawHandler {
	return &DrawHandler{
		drawService:       drawService,
		settlementService: settlementService,
	}
}

func drawToDTO(draw *domain.Draw) dto.DrawResponseDTO {
	return dto.DrawResponseDTO{
		ID:             draw.ID,
		DrawNumber:     draw.DrawNumber,
		ScheduledAt:    draw.ScheduledAt,
		JackpotAmount:  draw.JackpotAmount,
		Status:         draw.Status,
		WinningNumbers: draw.WinningNumbers,
	}
}

func drawIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "drawID"))
}

// GetCurrent godoc
//
//	@Summary		Get the current draw
//	@Description	Retrieve the draw currently open for ticket sales
//	@Tags			Draws
//	@Produce		json
//	@Success		200	{object}	dto.DrawResponseDTO
//	@Failure		404	{object}	utils.Response	"No open draw"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/draws/current [get]
func (h *DrawHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	draw, err := h.drawService.GetCurrentDraw(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if draw == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No open draw")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, drawToDTO(draw))
}

// Create godoc
//
//	@Summary		Create a draw
//	@Description	Open a new draw at the given time. Omitted fields fall back to the configured cadence and default jackpot.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDrawRequestDTO	true	"Draw parameters"
//	@Success		200		{object}	dto.DrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"A draw is already open"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws [post]
func (h *DrawHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draw, err := h.drawService.CreateDraw(r.Context(), req.ScheduledAt, req.JackpotAmount)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDrawNumber) {
			utils.RespondWithError(w, http.StatusConflict, "A draw is already open")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, drawToDTO(draw))
}

// SubmitResults godoc
//
//	@Summary		Submit winning numbers
//	@Description	Settle the draw with the supplied winning numbers: compute matches, pay the tiers and roll over the unclaimed jackpot share.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			drawID	path		int							true	"Draw ID"
//	@Param			request	body		dto.SubmitResultsRequestDTO	true	"Winning numbers"
//	@Success		200		{object}	dto.SettlementResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Draw not found"
//	@Failure		409		{object}	utils.Response	"Draw already completed or cancelled"
//	@Failure		422		{object}	utils.Response	"Invalid number set"
//	@Failure		500		{object}	utils.Response	"Settlement failed"
//	@Router			/api/admin/draws/{drawID}/results [post]
func (h *DrawHandler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	drawID, err := drawIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw ID")
		return
	}
	var req dto.SubmitResultsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.settlementService.SettleDraw(r.Context(), drawID, req.WinningNumbers)
	if err != nil {
		var settlementErr *domain.SettlementError
		switch {
		case errors.Is(err, domain.ErrDrawNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrAlreadyCompleted), errors.Is(err, domain.ErrDrawCancelled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrInvalidNumberSet):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &settlementErr):
			utils.RespondWithError(w, http.StatusInternalServerError, settlementErr.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResultDTO{
		DrawID:         result.DrawID,
		DrawNumber:     result.DrawNumber,
		TierCounts:     result.TierCounts,
		TotalPaid:      result.TotalPaid,
		RolloverAmount: result.RolloverAmount,
	})
}

// Cancel godoc
//
//	@Summary		Cancel a draw
//	@Description	Cancel a scheduled draw. Completed draws cannot be cancelled.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			drawID	path		int	true	"Draw ID"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid draw ID"
//	@Failure		404		{object}	utils.Response	"Draw not found"
//	@Failure		409		{object}	utils.Response	"Draw already completed or cancelled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/{drawID}/cancel [post]
func (h *DrawHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	drawID, err := drawIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw ID")
		return
	}
	if err := h.drawService.CancelDraw(r.Context(), drawID); err != nil {
		switch {
		case errors.Is(err, domain.ErrDrawNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrAlreadyCompleted), errors.Is(err, domain.ErrDrawCancelled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Draw cancelled"})
}

// GetStats godoc
//
//	@Summary		Draw statistics
//	@Description	Total tickets, jackpot and the per-tier breakdown of a draw
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			drawID	path		int	true	"Draw ID"
//	@Success		200		{object}	dto.DrawStatsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid draw ID"
//	@Failure		404		{object}	utils.Response	"Draw not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/{drawID}/stats [get]
func (h *DrawHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	drawID, err := drawIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw ID")
		return
	}
	stats, err := h.drawService.GetDrawStats(r.Context(), drawID)
	if err != nil {
		if errors.Is(err, domain.ErrDrawNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawStatsResponseDTO{
		DrawID:        stats.DrawID,
		DrawNumber:    stats.DrawNumber,
		Status:        stats.Status,
		JackpotAmount: stats.JackpotAmount,
		TotalTickets:  stats.TotalTickets,
		TierBreakdown: stats.TierBreakdown,
	})
}
