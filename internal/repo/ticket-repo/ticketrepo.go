package ticketrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const ticketColumns = `id, user_id, draw_id, numbers, cost, match_count, winning_amount, created_at`

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.DrawID,
		&ticket.Numbers,
		&ticket.Cost,
		&ticket.MatchCount,
		&ticket.WinningAmount,
		&ticket.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Create inserts the ticket. The unique (user_id, draw_id) index
// backstops the duplicate check under concurrent purchases.
func (r *Repository) Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	query := `
        INSERT INTO tickets (user_id, draw_id, numbers, cost)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + ticketColumns + `
    `
	created, err := scanTicket(r.db.QueryRow(ctx, query, ticket.UserID, ticket.DrawID, ticket.Numbers, ticket.Cost))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateTicket
		}
		zap.L().Error("can't create ticket", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByUserAndDraw(ctx context.Context, userID, drawID int) (*domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets
        WHERE user_id = $1 AND draw_id = $2
    `
	ticket, err := scanTicket(r.db.QueryRow(ctx, query, userID, drawID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find ticket", zap.Error(err))
		return nil, err
	}
	return ticket, nil
}

func (r *Repository) FindByDrawID(ctx context.Context, drawID int) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets
        WHERE draw_id = $1
        ORDER BY id ASC
    `
	return r.findMany(ctx, query, drawID)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, userID)
}

func (r *Repository) findMany(ctx context.Context, query string, arg any) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			zap.L().Error("can't scan ticket row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, rows.Err()
}

// UpdateSettlement records the match count and payout of one ticket.
// Settlement calls it exactly once per ticket.
func (r *Repository) UpdateSettlement(ctx context.Context, ticketID, matchCount int, winningAmount float64) error {
	query := `
        UPDATE tickets
        SET match_count = $1, winning_amount = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, matchCount, winningAmount, ticketID)
	if err != nil {
		zap.L().Error("can't update ticket settlement", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountByDrawID(ctx context.Context, drawID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM tickets
        WHERE draw_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, drawID).Scan(&count); err != nil {
		zap.L().Error("can't count tickets", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// TierBreakdown returns settled tickets grouped by match count.
func (r *Repository) TierBreakdown(ctx context.Context, drawID int) (map[int]int, error) {
	query := `
        SELECT match_count, COUNT(*)
        FROM tickets
        WHERE draw_id = $1 AND match_count IS NOT NULL
        GROUP BY match_count
    `
	rows, err := r.db.Query(ctx, query, drawID)
	if err != nil {
		zap.L().Error("can't get tier breakdown", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	breakdown := make(map[int]int)
	for rows.Next() {
		var matchCount, count int
		if err := rows.Scan(&matchCount, &count); err != nil {
			zap.L().Error("can't scan tier row", zap.Error(err))
			return nil, err
		}
		breakdown[matchCount] = count
	}
	return breakdown, rows.Err()
}
