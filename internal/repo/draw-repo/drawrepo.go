package drawrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const drawColumns = `id, draw_number, scheduled_at, jackpot_amount, winning_numbers, status, notified_at, created_at`

func scanDraw(row pgx.Row) (*domain.Draw, error) {
	var draw domain.Draw
	err := row.Scan(
		&draw.ID,
		&draw.DrawNumber,
		&draw.ScheduledAt,
		&draw.JackpotAmount,
		&draw.WinningNumbers,
		&draw.Status,
		&draw.NotifiedAt,
		&draw.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// GetCurrent returns the single draw open for admission, or nil when
// none exists.
func (r *Repository) GetCurrent(ctx context.Context) (*domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM draws
        WHERE status = 'scheduled'
    `
	draw, err := scanDraw(r.db.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get current draw", zap.Error(err))
		return nil, err
	}
	return draw, nil
}

func (r *Repository) GetByID(ctx context.Context, drawID int) (*domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM draws
        WHERE id = $1
    `
	draw, err := scanDraw(r.db.QueryRow(ctx, query, drawID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get draw", zap.Error(err))
		return nil, err
	}
	return draw, nil
}

// GetByIDForUpdate locks the draw row for the rest of the enclosing
// transaction. Settlement uses it to serialize concurrent settle calls
// across processes.
func (r *Repository) GetByIDForUpdate(ctx context.Context, drawID int) (*domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM draws
        WHERE id = $1
        FOR UPDATE
    `
	draw, err := scanDraw(r.db.QueryRow(ctx, query, drawID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock draw", zap.Error(err))
		return nil, err
	}
	return draw, nil
}

// Create inserts the next draw, assigning draw_number = max(existing)+1
// with 1000 as the first number. The partial unique index on scheduled
// draws and the unique draw_number both surface concurrent creation as
// ErrDuplicateDrawNumber; callers refetch the current draw in that case.
func (r *Repository) Create(ctx context.Context, scheduledAt time.Time, jackpotAmount float64) (*domain.Draw, error) {
	query := `
        INSERT INTO draws (draw_number, scheduled_at, jackpot_amount, status)
        SELECT COALESCE(MAX(draw_number), 999) + 1, $1, $2, 'scheduled' FROM draws
        RETURNING ` + drawColumns + `
    `
	draw, err := scanDraw(r.db.QueryRow(ctx, query, scheduledAt, jackpotAmount))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateDrawNumber
		}
		zap.L().Error("can't create draw", zap.Error(err))
		return nil, err
	}
	return draw, nil
}

// SetWinningNumbers persists the drawn numbers. It refuses to touch a
// draw that already left the scheduled state.
func (r *Repository) SetWinningNumbers(ctx context.Context, drawID int, numbers []int) error {
	query := `
        UPDATE draws
        SET winning_numbers = $1
        WHERE id = $2 AND status = 'scheduled'
    `
	tag, err := r.db.Exec(ctx, query, numbers, drawID)
	if err != nil {
		zap.L().Error("can't set winning numbers", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.stateError(ctx, drawID)
	}
	return nil
}

func (r *Repository) IncrementJackpot(ctx context.Context, drawID int, amount float64) error {
	query := `
        UPDATE draws
        SET jackpot_amount = jackpot_amount + $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, amount, drawID)
	if err != nil {
		zap.L().Error("can't increment jackpot", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDrawNotFound
	}
	return nil
}

// Complete transitions the draw to completed. The conditional update
// makes a second completion attempt fail with ErrAlreadyCompleted
// instead of silently rewriting the row.
func (r *Repository) Complete(ctx context.Context, drawID int) error {
	query := `
        UPDATE draws
        SET status = 'completed'
        WHERE id = $1 AND status = 'scheduled'
    `
	tag, err := r.db.Exec(ctx, query, drawID)
	if err != nil {
		zap.L().Error("can't complete draw", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.stateError(ctx, drawID)
	}
	return nil
}

func (r *Repository) Cancel(ctx context.Context, drawID int) error {
	query := `
        UPDATE draws
        SET status = 'cancelled'
        WHERE id = $1 AND status = 'scheduled'
    `
	tag, err := r.db.Exec(ctx, query, drawID)
	if err != nil {
		zap.L().Error("can't cancel draw", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.stateError(ctx, drawID)
	}
	return nil
}

// MarkNotified stamps notified_at once per draw. It reports whether
// this caller won the stamp, so the "draw starting" message goes out
// exactly once even across restarts and multiple instances.
func (r *Repository) MarkNotified(ctx context.Context, drawID int, at time.Time) (bool, error) {
	query := `
        UPDATE draws
        SET notified_at = $1
        WHERE id = $2 AND notified_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, at, drawID)
	if err != nil {
		zap.L().Error("can't mark draw notified", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// stateError explains why a conditional update matched no row.
func (r *Repository) stateError(ctx context.Context, drawID int) error {
	draw, err := r.GetByID(ctx, drawID)
	if err != nil {
		return err
	}
	switch {
	case draw == nil:
		return domain.ErrDrawNotFound
	case draw.Status == domain.DrawStatusCancelled:
		return domain.ErrDrawCancelled
	default:
		return domain.ErrAlreadyCompleted
	}
}
