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

// PartnerConnector defines the interface that the pairing service must implement.
type PartnerConnector interface {
	Connect(ctx context.Context, userID uuid.UUID, invitationCode string) (*models.UserDB, error)
}

// ConnectRequest represents the JSON body for pairing via invitation code
// swagger:model ConnectRequest
type ConnectRequest struct {
	// Partner's invitation code
	// required: true
	// default: AB12CD34
	InvitationCode string `json:"invitationCode"`
}

// NewConnectHandler returns an HTTP handler for pairing two users.
// @Summary Connect partners
// @Description Pairs the user with the owner of the invitation code. Both users end up referencing each other.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param connectRequest body handlers.ConnectRequest true "Connect request"
// @Success 200 {object} models.UserDB "Updated user with partnerId set"
// @Failure 400 {object} handlers.ErrorResponse "Self-connect or invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user or invitation code"
// @Security BearerAuth
// @Router /api/users/{id}/connect [post]
func NewConnectHandler(svc PartnerConnector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			return
		}

		var req ConnectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request"})
			return
		}

		user, err := svc.Connect(r.Context(), id, req.InvitationCode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			case errors.Is(err, services.ErrInvalidInvitationCode):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid invitation code"})
			case errors.Is(err, services.ErrSelfConnect):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Cannot connect to yourself"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
