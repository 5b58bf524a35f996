package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-savelyev/pairstatus/internal/models"
	"github.com/d-savelyev/pairstatus/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name        string
		body        string
		setup       func(svc *MockLoginer)
		wantCode    int
		wantMessage string
	}{
		{
			name: "success",
			body: `{"username":"anna_k","password":"secret123"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "anna_k", "secret123").
					Return(&models.UserDB{ID: userID, Name: "Anna"}, "token", nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:        "malformed json",
			body:        `{"username":`,
			setup:       func(*MockLoginer) {},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid request",
		},
		{
			name: "invalid credentials",
			body: `{"username":"anna_k","password":"wrong"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "anna_k", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid username or password",
		},
		{
			name: "internal error",
			body: `{"username":"anna_k","password":"secret123"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "anna_k", "secret123").
					Return(nil, "", errors.New("db down"))
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLoginer(ctrl)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			NewLoginHandler(svc)(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var resp LoginResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, userID, resp.ID)
				assert.Equal(t, "token", resp.Token)
				return
			}
			if tt.wantMessage != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}
