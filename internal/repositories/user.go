package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

const userColumns = `id, name, username, password_hash, profile_picture, invitation_code, partner_id, created_at`

// UserReadRepository handles user point lookups.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

// GetByInvitationCode returns the user owning the given invitation code, or
// nil if no user has it.
func (r *UserReadRepository) GetByInvitationCode(ctx context.Context, code string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE invitation_code = $1
	`
	return r.getOne(ctx, query, code)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow("user read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations. Writes join the
// request transaction when one is present in the context.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user row and returns it.
func (r *UserWriteRepository) Save(ctx context.Context, name string, username, passwordHash *string, invitationCode string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (name, username, password_hash, invitation_code)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns + `
	`
	args := []any{name, username, passwordHash, invitationCode}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, username, invitationCode},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetPartner points the user's partner_id at partnerID and returns the
// updated row. Returns nil if the user does not exist.
func (r *UserWriteRepository) SetPartner(ctx context.Context, id, partnerID uuid.UUID) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET partner_id = $2
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, id, partnerID)

	logger.Log.Infow("user set partner",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, partnerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetProfilePicture replaces the user's profile picture and returns the
// updated row. A nil picture clears it. Returns nil if the user does not
// exist.
func (r *UserWriteRepository) SetProfilePicture(ctx context.Context, id uuid.UUID, picture *string) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET profile_picture = $2
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, id, picture)

	logger.Log.Infow("user set profile picture",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
