package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-savelyev/pairstatus/internal/models"
	"github.com/d-savelyev/pairstatus/internal/services"
)

func TestGetPartnerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	partnerID := uuid.New()

	t.Run("partner with status", func(t *testing.T) {
		svc := NewMockPartnerGetter(ctrl)
		svc.EXPECT().GetPartner(gomock.Any(), userID).Return(
			&models.UserDB{ID: partnerID, Name: "Bob"},
			&models.StatusDB{ID: uuid.New(), UserID: partnerID, Type: models.StatusBusy, IsActive: true},
			nil,
		)

		rec := serveUserRoute(http.MethodGet, "/users/{id}/partner", "/users/"+userID.String()+"/partner", nil, NewGetPartnerHandler(svc))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp PartnerResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, partnerID, resp.ID)
		require.NotNil(t, resp.CurrentStatus)
		assert.Equal(t, models.StatusBusy, resp.CurrentStatus.Type)
	})

	t.Run("partner without status serializes null", func(t *testing.T) {
		svc := NewMockPartnerGetter(ctrl)
		svc.EXPECT().GetPartner(gomock.Any(), userID).
			Return(&models.UserDB{ID: partnerID, Name: "Bob"}, nil, nil)

		rec := serveUserRoute(http.MethodGet, "/users/{id}/partner", "/users/"+userID.String()+"/partner", nil, NewGetPartnerHandler(svc))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"currentStatus":null`)
	})

	t.Run("no partner", func(t *testing.T) {
		svc := NewMockPartnerGetter(ctrl)
		svc.EXPECT().GetPartner(gomock.Any(), userID).Return(nil, nil, services.ErrPartnerNotFound)

		rec := serveUserRoute(http.MethodGet, "/users/{id}/partner", "/users/"+userID.String()+"/partner", nil, NewGetPartnerHandler(svc))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := NewMockPartnerGetter(ctrl)

		rec := serveUserRoute(http.MethodGet, "/users/{id}/partner", "/users/oops/partner", nil, NewGetPartnerHandler(svc))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
