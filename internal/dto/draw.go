package dto

import "time"

type DrawResponseDTO struct {
	ID             int       `json:"id" example:"1"`
	DrawNumber     int       `json:"draw_number" example:"1001"`
	ScheduledAt    time.Time `json:"scheduled_at" example:"2025-01-10T20:00:00+02:00"`
	JackpotAmount  float64   `json:"jackpot_amount" example:"100000"`
	Status         string    `json:"status" example:"scheduled"`
	WinningNumbers []int     `json:"winning_numbers,omitempty" example:"3,7,12,19,25,33"`
}

type CreateDrawRequestDTO struct {
	ScheduledAt   time.Time `json:"scheduled_at" example:"2025-01-10T20:00:00+02:00"`
	JackpotAmount float64   `json:"jackpot_amount" example:"100000"`
}

type SubmitResultsRequestDTO struct {
	WinningNumbers []int `json:"winning_numbers" example:"3,7,12,19,25,33"`
}

type SettlementResultDTO struct {
	DrawID         int         `json:"draw_id" example:"1"`
	DrawNumber     int         `json:"draw_number" example:"1001"`
	TierCounts     map[int]int `json:"tier_counts"`
	TotalPaid      float64     `json:"total_paid" example:"45000"`
	RolloverAmount float64     `json:"rollover_amount" example:"40000"`
}

type DrawStatsResponseDTO struct {
	DrawID        int         `json:"draw_id" example:"1"`
	DrawNumber    int         `json:"draw_number" example:"1001"`
	Status        string      `json:"status" example:"completed"`
	JackpotAmount float64     `json:"jackpot_amount" example:"100000"`
	TotalTickets  int         `json:"total_tickets" example:"250"`
	TierBreakdown map[int]int `json:"tier_breakdown"`
}
