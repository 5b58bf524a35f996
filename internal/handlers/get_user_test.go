package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-savelyev/pairstatus/internal/models"
	"github.com/d-savelyev/pairstatus/internal/services"
)

// serveUserRoute routes a request through chi so {id} is populated.
func serveUserRoute(method, pattern, target string, body io.Reader, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name     string
		target   string
		setup    func(svc *MockUserGetter)
		wantCode int
	}{
		{
			name:   "success",
			target: "/users/" + userID.String(),
			setup: func(svc *MockUserGetter) {
				svc.EXPECT().GetByID(gomock.Any(), userID).
					Return(&models.UserDB{ID: userID, Name: "Anna", InvitationCode: "AB12CD34"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed id",
			target:   "/users/not-a-uuid",
			setup:    func(*MockUserGetter) {},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "not found",
			target: "/users/" + userID.String(),
			setup: func(svc *MockUserGetter) {
				svc.EXPECT().GetByID(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "internal error",
			target: "/users/" + userID.String(),
			setup: func(svc *MockUserGetter) {
				svc.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockUserGetter(ctrl)
			tt.setup(svc)

			rec := serveUserRoute(http.MethodGet, "/users/{id}", tt.target, nil, NewGetUserHandler(svc))
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var resp models.UserDB
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, userID, resp.ID)
				assert.Equal(t, "Anna", resp.Name)
			}
		})
	}
}
