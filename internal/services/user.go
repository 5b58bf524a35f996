package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPartnerNotFound = errors.New("partner not found")
)

// UserGetter defines the user lookup needed by the user service.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// ProfilePictureWriter updates a user's profile picture.
type ProfilePictureWriter interface {
	SetProfilePicture(ctx context.Context, id uuid.UUID, picture *string) (*models.UserDB, error)
}

// ActiveStatusReader reads a user's single active status.
type ActiveStatusReader interface {
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.StatusDB, error)
}

// UserService handles user profile reads and updates.
type UserService struct {
	reader   UserGetter
	writer   ProfilePictureWriter
	statuses ActiveStatusReader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserGetter, writer ProfilePictureWriter, statuses ActiveStatusReader) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		statuses: statuses,
	}
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfilePicture replaces the user's profile picture. An empty
// picture clears it, falling back to the client-side initial avatar.
func (svc *UserService) UpdateProfilePicture(ctx context.Context, id uuid.UUID, picture string) (*models.UserDB, error) {
	var p *string
	if picture != "" {
		p = &picture
	}

	user, err := svc.writer.SetProfilePicture(ctx, id, p)
	if err != nil {
		logger.Log.Errorw("failed to update profile picture", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetPartner returns the user's partner together with the partner's active
// status, which may be nil.
func (svc *UserService) GetPartner(ctx context.Context, id uuid.UUID) (*models.UserDB, *models.StatusDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, nil, err
	}
	if user == nil || user.PartnerID == nil {
		return nil, nil, ErrPartnerNotFound
	}

	partner, err := svc.reader.GetByID(ctx, *user.PartnerID)
	if err != nil {
		logger.Log.Errorw("failed to get partner", "partner_id", *user.PartnerID, "err", err)
		return nil, nil, err
	}
	if partner == nil {
		// Dangling back-reference after the partner re-paired elsewhere.
		return nil, nil, ErrPartnerNotFound
	}

	status, err := svc.statuses.GetActiveByUserID(ctx, partner.ID)
	if err != nil {
		logger.Log.Errorw("failed to get partner status", "partner_id", partner.ID, "err", err)
		return nil, nil, err
	}

	return partner, status, nil
}
