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

// ProfilePictureUpdater defines the interface that the service must implement.
type ProfilePictureUpdater interface {
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, picture string) (*models.UserDB, error)
}

// ProfilePictureRequest represents the JSON body for a profile picture update
// swagger:model ProfilePictureRequest
type ProfilePictureRequest struct {
	// Image payload as a data URI or URL; empty clears the picture
	ProfilePicture string `json:"profilePicture"`
}

// NewProfilePictureHandler returns an HTTP handler for updating a user's
// profile picture.
// @Summary Update profile picture
// @Description Replaces the user's profile picture. An empty value clears it.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param profilePictureRequest body handlers.ProfilePictureRequest true "Profile picture request"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/users/{id}/profile-picture [post]
func NewProfilePictureHandler(svc ProfilePictureUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			return
		}

		var req ProfilePictureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request"})
			return
		}

		user, err := svc.UpdateProfilePicture(r.Context(), id, req.ProfilePicture)
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
