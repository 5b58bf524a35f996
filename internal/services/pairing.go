package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

var (
	ErrInvalidInvitationCode = errors.New("invalid invitation code")
	ErrSelfConnect           = errors.New("cannot connect to yourself")
)

// PairingUserReader defines the user lookups needed for pairing.
type PairingUserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByInvitationCode(ctx context.Context, code string) (*models.UserDB, error)
}

// PartnerWriter sets a user's partner reference.
type PartnerWriter interface {
	SetPartner(ctx context.Context, id, partnerID uuid.UUID) (*models.UserDB, error)
}

// PairingService links two users bidirectionally via an invitation code.
type PairingService struct {
	reader PairingUserReader
	writer PartnerWriter
}

// NewPairingService creates a new PairingService instance.
func NewPairingService(reader PairingUserReader, writer PartnerWriter) *PairingService {
	return &PairingService{
		reader: reader,
		writer: writer,
	}
}

// Connect pairs the user with the owner of invitationCode and returns the
// updated initiating user. Both partner_id columns are updated inside the
// request transaction so the pairing stays symmetric.
//
// Re-pairing a user who already has a partner overwrites the reference and
// leaves the previous partner's partner_id dangling. That matches the
// shipped behavior; cleaning it up is a pending product decision.
func (svc *PairingService) Connect(ctx context.Context, userID uuid.UUID, invitationCode string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	partner, err := svc.reader.GetByInvitationCode(ctx, invitationCode)
	if err != nil {
		logger.Log.Errorw("failed to get user by invitation code", "err", err)
		return nil, err
	}
	if partner == nil {
		return nil, ErrInvalidInvitationCode
	}

	if user.ID == partner.ID {
		return nil, ErrSelfConnect
	}

	updated, err := svc.writer.SetPartner(ctx, user.ID, partner.ID)
	if err != nil {
		logger.Log.Errorw("failed to set partner", "user_id", user.ID, "err", err)
		return nil, err
	}
	if _, err := svc.writer.SetPartner(ctx, partner.ID, user.ID); err != nil {
		logger.Log.Errorw("failed to set partner back-reference", "user_id", partner.ID, "err", err)
		return nil, err
	}

	return updated, nil
}
