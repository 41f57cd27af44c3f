package dto

import "time"

type PurchaseTicketRequestDTO struct {
	DrawID  int   `json:"draw_id" example:"1"`
	Numbers []int `json:"numbers" example:"3,7,12,19,25,33"`
}

type TicketResponseDTO struct {
	ID            int       `json:"id" example:"42"`
	DrawID        int       `json:"draw_id" example:"1"`
	Numbers       []int     `json:"numbers" example:"3,7,12,19,25,33"`
	Cost          float64   `json:"cost" example:"100"`
	MatchCount    *int      `json:"match_count,omitempty" example:"4"`
	WinningAmount *float64  `json:"winning_amount,omitempty" example:"833.33"`
	CreatedAt     time.Time `json:"created_at" example:"2025-01-09T16:09:57+02:00"`
}

type BalanceResponseDTO struct {
	Current float64 `json:"current" example:"500.5"`
}

type TransactionResponseDTO struct {
	Amount      float64   `json:"amount" example:"-100"`
	Reason      string    `json:"reason" example:"ticket_purchase draw #1001"`
	ProcessedAt time.Time `json:"processed_at" example:"2025-01-09T16:09:57+02:00"`
}
