package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
	"petitions-backend/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists    = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUnauthorized         = errors.New("missing or invalid token")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrWrongCurrentPassword = errors.New("current password does not match")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrEmptyPassword        = errors.New("password must not be empty")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string, city, country *string) (int64, error)
	Update(ctx context.Context, user *models.UserDB) error
	SetToken(ctx context.Context, userID int64, authToken *string) error
}

// TokenIssuer issues and parses session tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64) (string, error)
	UserID(ctx context.Context, tokenString string) (int64, error)
}

// AuthService handles registration, login, logout, token resolution and
// profile access.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user and returns its id.
func (svc *AuthService) Register(ctx context.Context, name, email, password string, city, country *string) (int64, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return 0, err
	}
	if existing != nil {
		return 0, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, name, email, string(hashed), city, country)
	if errors.Is(err, repositories.ErrDuplicate) {
		// Lost the race to a concurrent registration with the same email.
		return 0, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return userID, nil
}

// Login authenticates a user, issues a fresh session token, stores it on
// the user row and returns the user id together with the token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (int64, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return 0, "", err
	}
	if user == nil {
		return 0, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, "", ErrInvalidCredentials
	}

	tokenString, err := svc.tokens.Issue(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to issue token", "err", err)
		return 0, "", err
	}

	if err := svc.writer.SetToken(ctx, user.UserID, &tokenString); err != nil {
		logger.Log.Errorw("failed to store token", "err", err)
		return 0, "", err
	}

	return user.UserID, tokenString, nil
}

// Logout clears the user's stored session token, revoking it.
func (svc *AuthService) Logout(ctx context.Context, userID int64) error {
	return svc.writer.SetToken(ctx, userID, nil)
}

// Authenticate resolves a presented token to a user id. The token must
// parse, and must still equal the token stored against the user, so a
// logged-out token is rejected.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (int64, error) {
	userID, err := svc.tokens.UserID(ctx, tokenString)
	if err != nil {
		return 0, ErrUnauthorized
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return 0, err
	}
	if user == nil || user.AuthToken == nil || *user.AuthToken != tokenString {
		return 0, ErrUnauthorized
	}

	return user.UserID, nil
}

// GetUser returns the user with the given id.
func (svc *AuthService) GetUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUserParams carries the optional fields of a profile update. Nil
// fields keep their current values.
type UpdateUserParams struct {
	Name            *string
	Email           *string
	Password        *string
	CurrentPassword *string
	City            *string
	Country         *string
}

// UpdateUser merges the supplied fields over the stored profile. Changing
// the password requires the matching current password and a non-empty new
// password; changing the email re-checks uniqueness against other users.
func (svc *AuthService) UpdateUser(ctx context.Context, userID int64, params UpdateUserParams) error {
	if params.Name == nil && params.Email == nil && params.Password == nil &&
		params.City == nil && params.Country == nil {
		return ErrNoFieldsToUpdate
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if params.Password != nil {
		if *params.Password == "" {
			return ErrEmptyPassword
		}
		if params.CurrentPassword == nil ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*params.CurrentPassword)) != nil {
			return ErrWrongCurrentPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return err
		}
		user.PasswordHash = string(hashed)
	}

	if params.Email != nil {
		if !strings.Contains(*params.Email, "@") {
			return ErrInvalidEmail
		}
		other, err := svc.reader.GetByEmail(ctx, *params.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return err
		}
		if other != nil && other.UserID != userID {
			return ErrUserAlreadyExists
		}
		user.Email = *params.Email
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.City != nil {
		user.City = params.City
	}
	if params.Country != nil {
		user.Country = params.Country
	}

	err = svc.writer.Update(ctx, user)
	if errors.Is(err, repositories.ErrDuplicate) {
		return ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
	}
	return err
}
