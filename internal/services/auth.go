package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/d-savelyev/pairstatus/internal/logger"
	"github.com/d-savelyev/pairstatus/internal/models"
)

// Error variables
var (
	ErrValidation         = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	invitationCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	invitationCodeLength = 8

	minUsernameLength = 3
	minPasswordLength = 6
)

// UserReader defines read-only user operations needed for auth.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByInvitationCode(ctx context.Context, code string) (*models.UserDB, error)
}

// UserWriter defines user write operations needed for auth.
type UserWriter interface {
	Save(ctx context.Context, name string, username, passwordHash *string, invitationCode string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// InitialStatusSetter creates the first status of a freshly registered user.
type InitialStatusSetter interface {
	SetStatus(ctx context.Context, userID uuid.UUID, statusType, title, message, icon, color string, expiresAt *time.Time) (*models.StatusDB, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      JWTGenerator
	statuses InitialStatusSetter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, statuses InitialStatusSetter) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		statuses: statuses,
	}
}

// Register creates a new user with a unique invitation code, an initial
// "free" status, and returns the user together with a session token.
func (svc *AuthService) Register(ctx context.Context, name, username, password string) (*models.UserDB, string, error) {
	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(username) < minUsernameLength {
		return nil, "", fmt.Errorf("%w: username must be at least %d characters", ErrValidation, minUsernameLength)
	}
	if len(password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	invitationCode, err := svc.uniqueInvitationCode(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate invitation code", "err", err)
		return nil, "", err
	}

	hash := string(hashedPassword)
	user, err := svc.writer.Save(ctx, name, &username, &hash, invitationCode)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	// New users start out free.
	if _, err := svc.statuses.SetStatus(ctx, user.ID, models.StatusFree, "", "", "", "", nil); err != nil {
		logger.Log.Errorw("failed to create initial status", "user_id", user.ID, "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns the user with a session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// uniqueInvitationCode generates an 8-character [A-Z0-9] code and retries on
// the rare uniqueness collision.
func (svc *AuthService) uniqueInvitationCode(ctx context.Context) (string, error) {
	for {
		code, err := generateInvitationCode()
		if err != nil {
			return "", err
		}

		existing, err := svc.reader.GetByInvitationCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
}

func generateInvitationCode() (string, error) {
	max := big.NewInt(int64(len(invitationCodeChars)))

	b := make([]byte, invitationCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		b[i] = invitationCodeChars[n.Int64()]
	}
	return string(b), nil
}
