package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-vacancies/internal/jwt"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (*models.UserDB, error)
}

// BlacklistStore is the durable set of revoked tokens.
type BlacklistStore interface {
	Add(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}

// BlacklistCache remembers revoked tokens in front of BlacklistStore.
type BlacklistCache interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
	SetRevoked(ctx context.Context, token string) error
}

// TokenManager issues and decodes JWT tokens.
type TokenManager interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Decode(ctx context.Context, token string) (jwt.Claims, error)
	CheckExpiry(claims jwt.Claims) error
	Generate(ctx context.Context, userID int64) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hashed string) bool
}

// AuthService authenticates requests and manages user credentials.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	blacklist BlacklistStore
	cache     BlacklistCache
	tokens    TokenManager
	hasher    PasswordHasher
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	blacklist BlacklistStore,
	cache BlacklistCache,
	tokens TokenManager,
	hasher PasswordHasher,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		blacklist: blacklist,
		cache:     cache,
		tokens:    tokens,
		hasher:    hasher,
	}
}

// Authenticate resolves the identity behind the request token.
// Requests without a token, or with a foreign scheme, are anonymous and yield
// a nil user and no error. Every rejection is a *TokenError.
func (svc *AuthService) Authenticate(ctx context.Context, r *http.Request) (*models.UserDB, string, error) {
	token, err := svc.tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, "", &TokenError{Reason: ReasonBadHeader}
	}
	if token == "" {
		return nil, "", nil
	}

	claims, err := svc.tokens.Decode(ctx, token)
	if err != nil {
		logger.Log.Infow("token rejected", "reason", "decode", "err", err)
		return nil, "", &TokenError{Reason: ReasonTokenInvalid}
	}

	if err := svc.tokens.CheckExpiry(claims); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, "", &TokenError{Reason: ReasonTokenExpired}
		}
		return nil, "", &TokenError{Reason: ReasonInvalidExpiry}
	}

	revoked, err := svc.isRevoked(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to check token blacklist", "err", err)
		return nil, "", err
	}
	if revoked {
		return nil, "", &TokenError{Reason: ReasonTokenInvalid}
	}

	userID, err := jwt.UserID(claims)
	if err != nil {
		return nil, "", &TokenError{Reason: ReasonInvalidPayload}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load token user", "user_id", userID, "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", &TokenError{Reason: ReasonAuthenticatedOnly}
	}

	return user, token, nil
}

func (svc *AuthService) isRevoked(ctx context.Context, token string) (bool, error) {
	if svc.cache != nil {
		revoked, err := svc.cache.IsRevoked(ctx, token)
		if err != nil {
			logger.Log.Warnw("blacklist cache unavailable", "err", err)
		} else if revoked {
			return true, nil
		}
	}

	revoked, err := svc.blacklist.Exists(ctx, token)
	if err != nil {
		return false, err
	}

	if revoked && svc.cache != nil {
		if err := svc.cache.SetRevoked(ctx, token); err != nil {
			logger.Log.Warnw("failed to cache revoked token", "err", err)
		}
	}
	return revoked, nil
}

// Login verifies credentials and issues a token.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := svc.checkCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, err
	}

	return &models.LoginResponse{User: user.Username, JWTToken: token}, nil
}

// Logout revokes token for the rest of its lifetime.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if err := svc.blacklist.Add(ctx, token); err != nil {
		logger.Log.Errorw("failed to blacklist token", "err", err)
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.SetRevoked(ctx, token); err != nil {
			logger.Log.Warnw("failed to cache revoked token", "err", err)
		}
	}
	return nil
}

// ResetPassword replaces the password of a user who proves the old one.
func (svc *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.UserDB, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := svc.checkCredentials(ctx, req.Username, req.OldPassword)
	if err != nil {
		return nil, err
	}

	hashed, err := svc.hasher.Hash(req.NewPassword1)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	updated, err := svc.writer.UpdatePassword(ctx, user.ID, hashed)
	if err != nil {
		logger.Log.Errorw("failed to update password", "user_id", user.ID, "err", err)
		return nil, translate(err, "User")
	}
	return updated, nil
}

// CreateUser registers a user with a strong password.
func (svc *AuthService) CreateUser(ctx context.Context, username, password string) (*models.UserDB, error) {
	if username == "" {
		return nil, NewValidationError("username", msgRequired)
	}
	if err := validate.Var(password, "required,password"); err != nil {
		return nil, NewValidationError("password", msgPasswordWeak)
	}

	hashed, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, hashed)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, translate(err, "User")
	}
	return user, nil
}

func (svc *AuthService) checkCredentials(ctx context.Context, username, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil || !svc.hasher.Check(password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
