package ws

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

// PartnerResolver looks up a user to resolve their partner id.
type PartnerResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// statusUpdateMessage is the single server-to-client message shape.
type statusUpdateMessage struct {
	Type   string           `json:"type"`
	Status *models.StatusDB `json:"status"`
	UserID string           `json:"userId"`
}

// Notifier pushes status changes to the actor's partner over the live
// channel. Delivery is fire-and-forget: if the partner has no live session
// the update is simply not sent, and the partner discovers the change on
// its next fetch.
type Notifier struct {
	hub   *Hub
	users PartnerResolver
}

// NewNotifier creates a new Notifier.
func NewNotifier(hub *Hub, users PartnerResolver) *Notifier {
	return &Notifier{
		hub:   hub,
		users: users,
	}
}

// StatusChanged resolves the actor's partner and, if the partner has a live
// session, pushes the new status. It never reports failure to the caller.
func (n *Notifier) StatusChanged(ctx context.Context, userID uuid.UUID, status *models.StatusDB) {
	user, err := n.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve partner for push", "user_id", userID, "err", err)
		return
	}
	if user == nil || user.PartnerID == nil {
		return
	}

	payload, err := json.Marshal(statusUpdateMessage{
		Type:   "statusUpdate",
		Status: status,
		UserID: userID.String(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal status update", "err", err)
		return
	}

	if !n.hub.SendIfPresent(*user.PartnerID, payload) {
		logger.Log.Debugw("partner not live, skipping push", "partner_id", *user.PartnerID)
	}
}
