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

// ActiveStatusGetter defines the interface that the service must implement.
type ActiveStatusGetter interface {
	GetActive(ctx context.Context, userID uuid.UUID) (*models.StatusDB, error)
}

// NewCurrentStatusHandler returns an HTTP handler for fetching a user's
// active status.
// @Summary Get current status
// @Description Returns the user's single active status.
// @Tags statuses
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.StatusDB "Active status"
// @Failure 404 {object} handlers.ErrorResponse "No active status"
// @Router /api/users/{id}/status [get]
func NewCurrentStatusHandler(svc ActiveStatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "No active status found"})
			return
		}

		status, err := svc.GetActive(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoActiveStatus):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "No active status found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(status)
	}
}
