package draws

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/duboisderek/lottodraw/internal/domain"
)

var drawTime = time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*DrawHandler, *MockDrawService, *MockSettlementService) {
	ctrl := gomock.NewController(t)
	drawService := NewMockDrawService(ctrl)
	settlementService := NewMockSettlementService(ctrl)
	handler := New(drawService, settlementService)
	defer ctrl.Finish()
	return handler, drawService, settlementService
}

func withDrawID(r *http.Request, drawID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("drawID", drawID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetCurrent(t *testing.T) {
	handler, drawService, _ := NewMock(t)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Open draw",
			mockSetup: func() {
				drawService.EXPECT().GetCurrentDraw(gomock.Any()).Return(&domain.Draw{
					ID:            1,
					DrawNumber:    1001,
					ScheduledAt:   drawTime,
					JackpotAmount: 100000,
					Status:        domain.DrawStatusScheduled,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "No open draw",
			mockSetup: func() {
				drawService.EXPECT().GetCurrentDraw(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Internal error",
			mockSetup: func() {
				drawService.EXPECT().GetCurrentDraw(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/draws/current", nil)
			rr := httptest.NewRecorder()
			handler.GetCurrent(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestCreate(t *testing.T) {
	handler, drawService, _ := NewMock(t)

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Draw created",
			body: `{"scheduled_at":"2025-01-10T20:00:00Z","jackpot_amount":150000}`,
			mockSetup: func() {
				drawService.EXPECT().CreateDraw(gomock.Any(), drawTime, 150000.0).Return(&domain.Draw{
					ID:            1,
					DrawNumber:    1001,
					ScheduledAt:   drawTime,
					JackpotAmount: 150000,
					Status:        domain.DrawStatusScheduled,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid body",
			body:           `{"scheduled_at":`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Draw already open",
			body: `{"scheduled_at":"2025-01-10T20:00:00Z"}`,
			mockSetup: func() {
				drawService.EXPECT().CreateDraw(gomock.Any(), drawTime, 0.0).Return(nil, domain.ErrDuplicateDrawNumber)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"scheduled_at":"2025-01-10T20:00:00Z"}`,
			mockSetup: func() {
				drawService.EXPECT().CreateDraw(gomock.Any(), drawTime, 0.0).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/draws", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestSubmitResults(t *testing.T) {
	handler, _, settlementService := NewMock(t)
	body := `{"winning_numbers":[1,5,12,20,30,37]}`

	tests := []struct {
		name           string
		drawID         string
		body           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:   "Draw settled",
			drawID: "1",
			body:   body,
			mockSetup: func() {
				settlementService.EXPECT().SettleDraw(gomock.Any(), 1, []int{1, 5, 12, 20, 30, 37}).Return(&domain.SettlementResult{
					DrawID:         1,
					DrawNumber:     1001,
					TierCounts:     map[int]int{6: 0, 5: 0, 4: 3},
					TotalPaid:      2499.99,
					RolloverAmount: 40000,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid draw ID",
			drawID:         "abc",
			body:           body,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid body",
			drawID:         "1",
			body:           `{"winning_numbers":`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Draw not found",
			drawID: "99",
			body:   body,
			mockSetup: func() {
				settlementService.EXPECT().SettleDraw(gomock.Any(), 99, gomock.Any()).Return(nil, domain.ErrDrawNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Already completed",
			drawID: "1",
			body:   body,
			mockSetup: func() {
				settlementService.EXPECT().SettleDraw(gomock.Any(), 1, gomock.Any()).Return(nil, domain.ErrAlreadyCompleted)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Cancelled draw",
			drawID: "1",
			body:   body,
			mockSetup: func() {
				settlementService.EXPECT().SettleDraw(gomock.Any(), 1, gomock.Any()).Return(nil, domain.ErrDrawCancelled)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Invalid number set",
			drawID: "1",
			body:   `{"winning_numbers":[1,1,12,20,30,37]}`,
			mockSetup: func() {
				settlementService.EXPECT().SettleDraw(gomock.Any(), 1, gomock.Any()).Return(nil, domain.ErrInvalidNumberSet)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "Partial settlement",
			drawID: "1",
			body:   body,
			mockSetup: func() {
				settlementService.EXPECT().SettleDraw(gomock.Any(), 1, gomock.Any()).Return(nil, &domain.SettlementError{
					DrawID:          1,
					UnpaidTicketIDs: []int{10, 11},
					Err:             errors.New("database error"),
				})
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "Internal error",
			drawID: "1",
			body:   body,
			mockSetup: func() {
				settlementService.EXPECT().SettleDraw(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/draws/"+tt.drawID+"/results", bytes.NewBufferString(tt.body))
			req = withDrawID(req, tt.drawID)
			rr := httptest.NewRecorder()
			handler.SubmitResults(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestCancel(t *testing.T) {
	handler, drawService, _ := NewMock(t)

	tests := []struct {
		name           string
		drawID         string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:   "Draw cancelled",
			drawID: "1",
			mockSetup: func() {
				drawService.EXPECT().CancelDraw(gomock.Any(), 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid draw ID",
			drawID:         "abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Draw not found",
			drawID: "99",
			mockSetup: func() {
				drawService.EXPECT().CancelDraw(gomock.Any(), 99).Return(domain.ErrDrawNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Already completed",
			drawID: "1",
			mockSetup: func() {
				drawService.EXPECT().CancelDraw(gomock.Any(), 1).Return(domain.ErrAlreadyCompleted)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Internal error",
			drawID: "1",
			mockSetup: func() {
				drawService.EXPECT().CancelDraw(gomock.Any(), 1).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/draws/"+tt.drawID+"/cancel", nil)
			req = withDrawID(req, tt.drawID)
			rr := httptest.NewRecorder()
			handler.Cancel(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestGetStats(t *testing.T) {
	handler, drawService, _ := NewMock(t)

	tests := []struct {
		name           string
		drawID         string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:   "Stats returned",
			drawID: "1",
			mockSetup: func() {
				drawService.EXPECT().GetDrawStats(gomock.Any(), 1).Return(&domain.DrawStats{
					DrawID:        1,
					DrawNumber:    1001,
					Status:        domain.DrawStatusScheduled,
					JackpotAmount: 100000,
					TotalTickets:  163,
					TierBreakdown: map[int]int{0: 120, 3: 40, 4: 3},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid draw ID",
			drawID:         "abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Draw not found",
			drawID: "99",
			mockSetup: func() {
				drawService.EXPECT().GetDrawStats(gomock.Any(), 99).Return(nil, domain.ErrDrawNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Internal error",
			drawID: "1",
			mockSetup: func() {
				drawService.EXPECT().GetDrawStats(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/draws/"+tt.drawID+"/stats", nil)
			req = withDrawID(req, tt.drawID)
			rr := httptest.NewRecorder()
			handler.GetStats(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
