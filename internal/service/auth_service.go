package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Abeke05/Aristotel/internal/models"
	appErrors "github.com/Abeke05/Aristotel/pkg/errors"
)

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) *models.User
	Append(ctx context.Context, user *models.User) error
}

// RegisterRequest is the payload for creating a new account. The role
// must be one of the closed set; there is no email-format or
// password-strength validation.
type RegisterRequest struct {
	Email    string      `json:"email" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Role     models.Role `json:"role" validate:"required,oneof=student teacher"`
	Password string      `json:"password" validate:"required"`
}

// AuthService provides credential hashing, authentication and
// registration.
type AuthService struct {
	users     authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users authUserRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, validator: validate, logger: logger}
}

// HashPassword returns the hex-encoded SHA-256 digest of the plaintext.
// The digest is deterministic and unsalted, matching the stored
// password_hash values; see DESIGN.md for the hardening trade-off.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Authenticate returns the user for the given credentials. An unknown
// email and a wrong password yield the same error so the caller cannot
// tell which check failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user := s.users.FindByEmail(ctx, email)
	if user == nil || user.PasswordHash != HashPassword(password) {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}
	return user, nil
}

// Register creates a new account unless the email is already taken.
// Uniqueness is checked against the stored collection at call time; the
// store itself enforces nothing.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid registration payload")
	}

	if existing := s.users.FindByEmail(ctx, req.Email); existing != nil {
		return nil, appErrors.Clone(appErrors.ErrDuplicateEmail, "")
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: HashPassword(req.Password),
	}
	if err := s.users.Append(ctx, user); err != nil {
		s.logger.Warn("failed to persist new user", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, "failed to persist user")
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}
