package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

// StatusLister defines the interface that the service must implement.
type StatusLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.StatusDB, error)
}

// NewStatusHistoryHandler returns an HTTP handler for fetching a user's
// status history.
// @Summary Get status history
// @Description Returns the user's statuses, most recent first. An unknown user yields an empty list.
// @Tags statuses
// @Produce json
// @Param id path string true "User id"
// @Success 200 {array} models.StatusDB "Status history"
// @Router /api/users/{id}/statuses [get]
func NewStatusHistoryHandler(svc StatusLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			// An unmatchable id has no history.
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]models.StatusDB{})
			return
		}

		statuses, err := svc.List(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			return
		}

		if statuses == nil {
			statuses = []models.StatusDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(statuses)
	}
}
