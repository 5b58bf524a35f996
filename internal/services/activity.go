package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

// ActivityUserReader resolves the requesting user and their partner.
type ActivityUserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// ActivityStatusReader lists status history for a user.
type ActivityStatusReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.StatusDB, error)
}

// ActivityService merges a user's and their partner's status history into
// one feed, materialized per call.
type ActivityService struct {
	users    ActivityUserReader
	statuses ActivityStatusReader
}

// NewActivityService creates a new ActivityService instance.
func NewActivityService(users ActivityUserReader, statuses ActivityStatusReader) *ActivityService {
	return &ActivityService{
		users:    users,
		statuses: statuses,
	}
}

// GetActivity returns the combined feed, most recent first, each entry
// tagged with whether it belongs to the requesting user.
func (svc *ActivityService) GetActivity(ctx context.Context, userID uuid.UUID) ([]models.ActivityEntry, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	own, err := svc.statuses.ListByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list statuses", "user_id", user.ID, "err", err)
		return nil, err
	}

	entries := make([]models.ActivityEntry, 0, len(own))
	for _, s := range own {
		entries = append(entries, models.ActivityEntry{StatusDB: s, IsOwnStatus: true})
	}

	if user.PartnerID != nil {
		partnerRows, err := svc.statuses.ListByUserID(ctx, *user.PartnerID)
		if err != nil {
			logger.Log.Errorw("failed to list partner statuses", "partner_id", *user.PartnerID, "err", err)
			return nil, err
		}
		for _, s := range partnerRows {
			entries = append(entries, models.ActivityEntry{StatusDB: s, IsOwnStatus: false})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
