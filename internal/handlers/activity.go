package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
	"github.com/d-savelyev/pairstatus/internal/services"
)

// ActivityGetter defines the interface that the service must implement.
type ActivityGetter interface {
	GetActivity(ctx context.Context, userID uuid.UUID) ([]models.ActivityEntry, error)
}

// NewActivityHandler returns an HTTP handler for the merged activity feed.
// @Summary Get activity feed
// @Description Returns the user's and their partner's statuses merged into one feed, most recent first, each entry tagged with isOwnStatus.
// @Tags statuses
// @Produce json
// @Param id path string true "User id"
// @Success 200 {array} models.ActivityEntry "Merged activity feed"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/{id}/activity [get]
func NewActivityHandler(svc ActivityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			return
		}

		entries, err := svc.GetActivity(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		if entries == nil {
			entries = []models.ActivityEntry{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entries)
	}
}
