package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDrawNotFound        = errors.New("draw not found")
	ErrDrawLocked          = errors.New("draw is locked for ticket sales")
	ErrDrawCancelled       = errors.New("draw is cancelled")
	ErrAlreadyCompleted    = errors.New("draw is already completed")
	ErrInvalidNumberSet    = errors.New("invalid number set")
	ErrDuplicateTicket     = errors.New("user already has a ticket for this draw")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrDuplicateDrawNumber = errors.New("draw number already taken")
)

// SettlementError reports a settlement run that failed before every
// winner was credited. The transaction is rolled back, so the listed
// tickets hold no payout and the operator can retry the whole draw.
type SettlementError struct {
	DrawID          int
	UnpaidTicketIDs []int
	Err             error
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement of draw %d failed, unpaid tickets %v: %v", e.DrawID, e.UnpaidTicketIDs, e.Err)
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}
