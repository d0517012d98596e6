package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/logger"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService handles registration, login, token authentication and password
// changes. It is stateless; the user repository is the only shared resource.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
	ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) error
	Profile(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	hasher   auth.Hasher
	tokens   *auth.TokenService
	tokenTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher auth.Hasher, tokens *auth.TokenService, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &authService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// normalizeEmail folds the login key: comparison is case-insensitive and
// whitespace-tolerant, and the folded form is what gets stored.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a customer account with a hashed password. The unique
// index on email is the final arbiter: when two registrations race, the
// losing insert comes back as a duplicate, never a second success.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, apperrors.ErrValidation
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateUser
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		lg := logger.Get()
		lg.Error().Err(err).Str("email", email).Msg("check user existence")
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) {
			return nil, apperrors.ErrValidation
		}
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUser
		}
		lg := logger.Get()
		lg.Error().Err(err).Str("email", email).Msg("create user")
		return nil, err
	}

	return user, nil
}

// Login authenticates credentials and returns a signed token. Unknown email
// and wrong password are indistinguishable to the caller: both return the
// same error, and the missing-user path still burns a hash check against a
// dummy digest so the two take comparable time.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", apperrors.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			lg := logger.Get()
			lg.Error().Err(err).Msg("find user by email")
		}
		s.hasher.Verify(password, auth.DummyDigest)
		return "", apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, s.tokenTTL)
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Uint("user_id", user.ID).Msg("issue token")
		return "", err
	}
	return token, nil
}

// Authenticate verifies a bearer token and re-fetches the user it names.
// Downstream code gets the fresh record, never the token: the account may
// have changed or vanished since issuance. Every rejection reads the same
// from outside; the subtype only goes to the log.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		lg := logger.Get()
		lg.Debug().Err(err).Msg("token rejected")
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, subject)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			lg := logger.Get()
			lg.Error().Err(err).Uint("user_id", subject).Msg("load token subject")
		}
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// ChangePassword re-verifies the old password and swaps in a new digest.
// Outstanding tokens stay valid until their own expiry.
func (s *authService) ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperrors.ErrValidation
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) {
			return apperrors.ErrValidation
		}
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Uint("user_id", user.ID).Msg("update password hash")
		return err
	}
	return nil
}

// Profile returns the user's current record.
func (s *authService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
