package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/d-savelyev/pairstatus/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	username := "alice"
	hash := "$2a$10$hash"

	tests := []struct {
		name      string
		inName    string
		inUser    string
		inPass    string
		setup     func(reader *MockUserReader, writer *MockUserWriter, jwt *MockJWTGenerator, statuses *MockInitialStatusSetter)
		wantToken string
		wantErr   error
	}{
		{
			name:   "success",
			inName: "Alice",
			inUser: username,
			inPass: "secret12",
			setup: func(reader *MockUserReader, writer *MockUserWriter, jwt *MockJWTGenerator, statuses *MockInitialStatusSetter) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).Return(nil, nil)
				reader.EXPECT().GetByInvitationCode(gomock.Any(), gomock.Any()).Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "Alice", gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, name string, username, passwordHash *string, invitationCode string) (*models.UserDB, error) {
						require.NotNil(t, username)
						require.NotNil(t, passwordHash)
						assert.Len(t, invitationCode, 8)
						for _, c := range invitationCode {
							assert.Contains(t, invitationCodeChars, string(c))
						}
						return &models.UserDB{ID: userID, Name: name, Username: username, PasswordHash: passwordHash, InvitationCode: invitationCode}, nil
					})
				statuses.EXPECT().
					SetStatus(gomock.Any(), userID, models.StatusFree, "", "", "", "", nil).
					Return(&models.StatusDB{UserID: userID, Type: models.StatusFree}, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("token", nil)
			},
			wantToken: "token",
		},
		{
			name:    "empty name",
			inName:  "",
			inUser:  username,
			inPass:  "secret12",
			setup:   func(*MockUserReader, *MockUserWriter, *MockJWTGenerator, *MockInitialStatusSetter) {},
			wantErr: ErrValidation,
		},
		{
			name:    "short username",
			inName:  "Alice",
			inUser:  "al",
			inPass:  "secret12",
			setup:   func(*MockUserReader, *MockUserWriter, *MockJWTGenerator, *MockInitialStatusSetter) {},
			wantErr: ErrValidation,
		},
		{
			name:    "short password",
			inName:  "Alice",
			inUser:  username,
			inPass:  "12345",
			setup:   func(*MockUserReader, *MockUserWriter, *MockJWTGenerator, *MockInitialStatusSetter) {},
			wantErr: ErrValidation,
		},
		{
			name:   "username taken",
			inName: "Alice",
			inUser: username,
			inPass: "secret12",
			setup: func(reader *MockUserReader, _ *MockUserWriter, _ *MockJWTGenerator, _ *MockInitialStatusSetter) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).Return(&models.UserDB{ID: userID, Username: &username, PasswordHash: &hash}, nil)
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name:   "invitation code collision is retried",
			inName: "Alice",
			inUser: username,
			inPass: "secret12",
			setup: func(reader *MockUserReader, writer *MockUserWriter, jwt *MockJWTGenerator, statuses *MockInitialStatusSetter) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).Return(nil, nil)
				taken := &models.UserDB{ID: uuid.New()}
				gomock.InOrder(
					reader.EXPECT().GetByInvitationCode(gomock.Any(), gomock.Any()).Return(taken, nil),
					reader.EXPECT().GetByInvitationCode(gomock.Any(), gomock.Any()).Return(nil, nil),
				)
				writer.EXPECT().
					Save(gomock.Any(), "Alice", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.UserDB{ID: userID}, nil)
				statuses.EXPECT().
					SetStatus(gomock.Any(), userID, models.StatusFree, "", "", "", "", nil).
					Return(&models.StatusDB{UserID: userID, Type: models.StatusFree}, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("token", nil)
			},
			wantToken: "token",
		},
		{
			name:   "save error",
			inName: "Alice",
			inUser: username,
			inPass: "secret12",
			setup: func(reader *MockUserReader, writer *MockUserWriter, _ *MockJWTGenerator, _ *MockInitialStatusSetter) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).Return(nil, nil)
				reader.EXPECT().GetByInvitationCode(gomock.Any(), gomock.Any()).Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "Alice", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
		{
			name:   "initial status error",
			inName: "Alice",
			inUser: username,
			inPass: "secret12",
			setup: func(reader *MockUserReader, writer *MockUserWriter, _ *MockJWTGenerator, statuses *MockInitialStatusSetter) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).Return(nil, nil)
				reader.EXPECT().GetByInvitationCode(gomock.Any(), gomock.Any()).Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "Alice", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.UserDB{ID: userID}, nil)
				statuses.EXPECT().
					SetStatus(gomock.Any(), userID, models.StatusFree, "", "", "", "", nil).
					Return(nil, errors.New("status insert failed"))
			},
			wantErr: errors.New("status insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockUserReader(ctrl)
			writer := NewMockUserWriter(ctrl)
			jwtGen := NewMockJWTGenerator(ctrl)
			statuses := NewMockInitialStatusSetter(ctrl)
			tt.setup(reader, writer, jwtGen, statuses)

			svc := NewAuthService(reader, writer, jwtGen, statuses)
			user, token, err := svc.Register(context.Background(), tt.inName, tt.inUser, tt.inPass)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrValidation) || errors.Is(tt.wantErr, ErrUsernameTaken) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	username := "bob"

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret12"), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashed)

	tests := []struct {
		name     string
		password string
		setup    func(reader *MockUserReader, jwt *MockJWTGenerator)
		wantErr  error
	}{
		{
			name:     "success",
			password: "secret12",
			setup: func(reader *MockUserReader, jwt *MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).
					Return(&models.UserDB{ID: userID, Username: &username, PasswordHash: &hash}, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("token", nil)
			},
		},
		{
			name:     "unknown user",
			password: "secret12",
			setup: func(reader *MockUserReader, _ *MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrongpass",
			setup: func(reader *MockUserReader, _ *MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).
					Return(&models.UserDB{ID: userID, Username: &username, PasswordHash: &hash}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "user without password hash",
			password: "secret12",
			setup: func(reader *MockUserReader, _ *MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).
					Return(&models.UserDB{ID: userID, Username: &username}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "repository error",
			password: "secret12",
			setup: func(reader *MockUserReader, _ *MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), username).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockUserReader(ctrl)
			jwtGen := NewMockJWTGenerator(ctrl)
			tt.setup(reader, jwtGen)

			svc := NewAuthService(reader, nil, jwtGen, nil)
			user, token, err := svc.Login(context.Background(), username, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidCredentials) {
					assert.ErrorIs(t, err, ErrInvalidCredentials)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, userID, user.ID)
			assert.Equal(t, "token", token)
		})
	}
}

func TestGenerateInvitationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := generateInvitationCode()
		require.NoError(t, err)
		assert.Len(t, code, invitationCodeLength)
		for _, c := range code {
			assert.Contains(t, invitationCodeChars, string(c))
		}
		seen[code] = struct{}{}
	}
	// 100 draws from a 36^8 space should never collide.
	assert.Len(t, seen, 100)
}
