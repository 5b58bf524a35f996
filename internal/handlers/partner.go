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

// PartnerGetter defines the interface that the service must implement.
type PartnerGetter interface {
	GetPartner(ctx context.Context, id uuid.UUID) (*models.UserDB, *models.StatusDB, error)
}

// PartnerResponse is the partner user together with their current status
// swagger:model PartnerResponse
type PartnerResponse struct {
	models.UserDB
	// The partner's active status, null when none
	CurrentStatus *models.StatusDB `json:"currentStatus"`
}

// NewGetPartnerHandler returns an HTTP handler for fetching a user's partner.
// @Summary Get partner
// @Description Returns the user's partner with the partner's current status attached.
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.PartnerResponse "Partner with current status"
// @Failure 404 {object} handlers.ErrorResponse "User has no partner"
// @Router /api/users/{id}/partner [get]
func NewGetPartnerHandler(svc PartnerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Partner not found"})
			return
		}

		partner, status, err := svc.GetPartner(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPartnerNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Partner not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PartnerResponse{UserDB: *partner, CurrentStatus: status})
	}
}
