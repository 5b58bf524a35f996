package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

const statusColumns = `id, user_id, type, title, message, icon, color, expires_at, is_active, created_at`

// StatusReadRepository handles status lookups.
type StatusReadRepository struct {
	db *sqlx.DB
}

func NewStatusReadRepository(db *sqlx.DB) *StatusReadRepository {
	return &StatusReadRepository{db: db}
}

// GetActiveByUserID returns the user's single active status, or nil when
// none is active.
func (r *StatusReadRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.StatusDB, error) {
	const query = `
		SELECT ` + statusColumns + `
		FROM statuses
		WHERE user_id = $1 AND is_active = TRUE
	`

	var status models.StatusDB
	err := r.db.GetContext(ctx, &status, query, userID)

	logger.Log.Infow("status read active",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ListByUserID returns the user's status history, most recent first.
func (r *StatusReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.StatusDB, error) {
	const query = `
		SELECT ` + statusColumns + `
		FROM statuses
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`

	var statuses []models.StatusDB
	err := r.db.SelectContext(ctx, &statuses, query, userID)

	logger.Log.Infow("status list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(statuses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// StatusWriteRepository handles status write operations. Writes join the
// request transaction when one is present in the context.
type StatusWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewStatusWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *StatusWriteRepository {
	return &StatusWriteRepository{db: db, txGetter: txGetter}
}

func (r *StatusWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// LockUser takes a row lock on the user so that concurrent status changes
// for the same user serialize. Returns sql.ErrNoRows for an unknown user.
// Only effective inside a transaction.
func (r *StatusWriteRepository) LockUser(ctx context.Context, userID uuid.UUID) error {
	const query = `
		SELECT id FROM users
		WHERE id = $1
		FOR UPDATE
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, userID)

	logger.Log.Infow("user lock",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// DeactivateByUserID marks every active status of the user inactive.
// History rows are kept, never deleted.
func (r *StatusWriteRepository) DeactivateByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE statuses
		SET is_active = FALSE
		WHERE user_id = $1 AND is_active = TRUE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("status deactivate",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Save inserts a new active status row and returns it.
func (r *StatusWriteRepository) Save(ctx context.Context, userID uuid.UUID, statusType, title string, message *string, icon, color string, expiresAt *time.Time) (*models.StatusDB, error) {
	query := `
		INSERT INTO statuses (user_id, type, title, message, icon, color, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING ` + statusColumns + `
	`
	args := []any{userID, statusType, title, message, icon, color, expiresAt}

	var status models.StatusDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &status, query, args...)

	logger.Log.Infow("status insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, statusType, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &status, nil
}
