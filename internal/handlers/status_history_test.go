package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-savelyev/pairstatus/internal/models"
)

func TestStatusHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	now := time.Now()

	t.Run("returns history", func(t *testing.T) {
		svc := NewMockStatusLister(ctrl)
		svc.EXPECT().List(gomock.Any(), userID).Return([]models.StatusDB{
			{ID: uuid.New(), UserID: userID, Type: models.StatusBusy, CreatedAt: now, IsActive: true},
			{ID: uuid.New(), UserID: userID, Type: models.StatusFree, CreatedAt: now.Add(-time.Hour)},
		}, nil)

		rec := serveUserRoute(http.MethodGet, "/users/{id}/statuses", "/users/"+userID.String()+"/statuses", nil, NewStatusHistoryHandler(svc))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []models.StatusDB
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, models.StatusBusy, resp[0].Type)
	})

	t.Run("empty history yields empty array", func(t *testing.T) {
		svc := NewMockStatusLister(ctrl)
		svc.EXPECT().List(gomock.Any(), userID).Return(nil, nil)

		rec := serveUserRoute(http.MethodGet, "/users/{id}/statuses", "/users/"+userID.String()+"/statuses", nil, NewStatusHistoryHandler(svc))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("malformed id yields empty array", func(t *testing.T) {
		svc := NewMockStatusLister(ctrl)

		rec := serveUserRoute(http.MethodGet, "/users/{id}/statuses", "/users/oops/statuses", nil, NewStatusHistoryHandler(svc))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		svc := NewMockStatusLister(ctrl)
		svc.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("db down"))

		rec := serveUserRoute(http.MethodGet, "/users/{id}/statuses", "/users/"+userID.String()+"/statuses", nil, NewStatusHistoryHandler(svc))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
