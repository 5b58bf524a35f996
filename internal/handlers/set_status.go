package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
	"github.com/d-savelyev/pairstatus/internal/services"
)

// StatusSetter defines the interface that the status service must implement.
type StatusSetter interface {
	SetStatus(ctx context.Context, userID uuid.UUID, statusType, title, message, icon, color string, expiresAt *time.Time) (*models.StatusDB, error)
}

// SetStatusRequest represents the JSON body for a status change
// swagger:model SetStatusRequest
type SetStatusRequest struct {
	// Owning user id
	// required: true
	UserID uuid.UUID `json:"userId"`

	// Status type: free, busy, meeting, sleeping or custom
	// required: true
	// default: busy
	Type string `json:"type"`

	// Title, used only for custom statuses
	Title string `json:"title"`

	// Optional free-text message
	Message string `json:"message"`

	// Icon name, used only for custom statuses
	Icon string `json:"icon"`

	// Color token, used only for custom statuses
	Color string `json:"color"`

	// Optional advisory expiry (RFC 3339)
	ExpiresAt *time.Time `json:"expiresAt"`
}

// NewSetStatusHandler returns an HTTP handler for setting a user's status.
// @Summary Set status
// @Description Deactivates the user's current status and creates a new active one. If the partner is live-connected the update is pushed immediately.
// @Tags statuses
// @Accept json
// @Produce json
// @Param setStatusRequest body handlers.SetStatusRequest true "Status change request"
// @Success 200 {object} models.StatusDB "Created status"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status type or missing fields"
// @Security BearerAuth
// @Router /api/statuses [post]
func NewSetStatusHandler(svc StatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request"})
			return
		}
		if req.UserID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "userId is required"})
			return
		}

		status, err := svc.SetStatus(r.Context(), req.UserID, req.Type, req.Title, req.Message, req.Icon, req.Color, req.ExpiresAt)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatusType), errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: err.Error()})
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(status)
	}
}
