package domain

import "time"

const (
	DrawStatusScheduled = "scheduled"
	DrawStatusCompleted = "completed"
	DrawStatusCancelled = "cancelled"
)

type Draw struct {
	ID             int        `db:"id"`
	DrawNumber     int        `db:"draw_number"`
	ScheduledAt    time.Time  `db:"scheduled_at"`
	JackpotAmount  float64    `db:"jackpot_amount"`
	WinningNumbers []int      `db:"winning_numbers"`
	Status         string     `db:"status"`
	NotifiedAt     *time.Time `db:"notified_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// Locked reports whether ticket sales for the draw are closed at the
// given moment. Sales close lockWindow before the scheduled time and
// never reopen.
func (d *Draw) Locked(now time.Time, lockWindow time.Duration) bool {
	if d.Status != DrawStatusScheduled {
		return true
	}
	return !now.Before(d.ScheduledAt.Add(-lockWindow))
}

type Ticket struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	DrawID        int       `db:"draw_id"`
	Numbers       []int     `db:"numbers"`
	Cost          float64   `db:"cost"`
	MatchCount    *int      `db:"match_count"`
	WinningAmount *float64  `db:"winning_amount"`
	CreatedAt     time.Time `db:"created_at"`
}

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID             int     `db:"id"`
	UserID         int     `db:"user_id"`
	CurrentBalance float64 `db:"current_balance"`
}

// LedgerTransaction is one append-only entry of the money history.
// Amount is positive for credits and negative for debits.
type LedgerTransaction struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Amount      float64   `db:"amount"`
	Reason      string    `db:"reason"`
	ProcessedAt time.Time `db:"processed_at"`
}

/// SettlementResult summarizes one settled draw: how many tickets won in
// each match tier, the total credited to winners and the jackpot share
// carried into the next draw.
type SettlementResult struct {
	DrawID         int         `json:"draw_id"`
	DrawNumber     int         `json:"draw_number"`
	TierCounts     map[int]int `json:"tier_counts"`
	TotalPaid      float64     `json:"total_paid"`
	RolloverAmount float64     `json:"rollover_amount"`
}

type DrawStats struct {
	DrawID        int         `json:"draw_id"`
	DrawNumber    int         `json:"draw_number"`
	Status        string      `json:"status"`
	JackpotAmount float64     `json:"jackpot_amount"`
	TotalTickets  int         `json:"total_tickets"`
	TierBreakdown map[int]int `json:"tier_breakdown"`
}
