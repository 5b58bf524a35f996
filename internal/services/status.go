package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

var (
	ErrInvalidStatusType = errors.New("invalid status type")
	ErrNoActiveStatus    = errors.New("no active status")
)

// StatusReader defines status read operations.
type StatusReader interface {
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.StatusDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.StatusDB, error)
}

// StatusWriter defines the write operations of the status change path.
type StatusWriter interface {
	LockUser(ctx context.Context, userID uuid.UUID) error
	DeactivateByUserID(ctx context.Context, userID uuid.UUID) error
	Save(ctx context.Context, userID uuid.UUID, statusType, title string, message *string, icon, color string, expiresAt *time.Time) (*models.StatusDB, error)
}

// StatusNotifier receives a one-way notification after a status change.
// Delivery is fire-and-forget; implementations must not block.
type StatusNotifier interface {
	StatusChanged(ctx context.Context, userID uuid.UUID, status *models.StatusDB)
}

// StatusService owns the status lifecycle: at most one active status per
// user, history append-only.
type StatusService struct {
	readRepo  StatusReader
	writeRepo StatusWriter
	notifier  StatusNotifier
}

// NewStatusService creates a new StatusService. The notifier may be nil.
func NewStatusService(readRepo StatusReader, writeRepo StatusWriter, notifier StatusNotifier) *StatusService {
	return &StatusService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		notifier:  notifier,
	}
}

// SetNotifier attaches the live notifier after construction. The status
// service and the notifier reference each other's collaborators, so the
// notifier is wired in once both exist.
func (svc *StatusService) SetNotifier(notifier StatusNotifier) {
	svc.notifier = notifier
}

// SetStatus deactivates the user's current status and inserts a new active
// one. For preset types the presentation fields come from the fixed
// metadata table and caller-supplied values for them are ignored; a custom
// status carries the caller's fields. Runs inside the request transaction:
// the user row lock serializes concurrent changes for the same user.
func (svc *StatusService) SetStatus(ctx context.Context, userID uuid.UUID, statusType, title, message, icon, color string, expiresAt *time.Time) (*models.StatusDB, error) {
	if !models.ValidStatusType(statusType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatusType, statusType)
	}

	var msg *string
	if statusType == models.StatusCustom {
		if title == "" || icon == "" || color == "" {
			return nil, fmt.Errorf("%w: custom status requires title, icon and color", ErrValidation)
		}
		if message != "" {
			msg = &message
		}
	} else {
		meta, _ := models.StatusMetaForType(statusType)
		title = meta.Title
		icon = meta.Icon
		color = meta.Color
		if message != "" {
			msg = &message
		} else {
			m := meta.Message
			msg = &m
		}
	}

	if err := svc.writeRepo.LockUser(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to lock user", "user_id", userID, "err", err)
		return nil, err
	}

	if err := svc.writeRepo.DeactivateByUserID(ctx, userID); err != nil {
		logger.Log.Errorw("failed to deactivate statuses", "user_id", userID, "err", err)
		return nil, err
	}

	status, err := svc.writeRepo.Save(ctx, userID, statusType, title, msg, icon, color, expiresAt)
	if err != nil {
		logger.Log.Errorw("failed to save status", "user_id", userID, "err", err)
		return nil, err
	}

	if svc.notifier != nil {
		svc.notifier.StatusChanged(ctx, userID, status)
	}

	return status, nil
}

// GetActive returns the user's active status.
func (svc *StatusService) GetActive(ctx context.Context, userID uuid.UUID) (*models.StatusDB, error) {
	status, err := svc.readRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get active status", "user_id", userID, "err", err)
		return nil, err
	}
	if status == nil {
		return nil, ErrNoActiveStatus
	}
	return status, nil
}

// List returns the user's status history, most recent first.
func (svc *StatusService) List(ctx context.Context, userID uuid.UUID) ([]models.StatusDB, error) {
	return svc.readRepo.ListByUserID(ctx, userID)
}
