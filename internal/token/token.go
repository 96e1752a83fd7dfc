package token

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Header carrying the session token.
const Header = "X-Authorization"

var (
	// ErrNoToken is returned when the request carries no token.
	ErrNoToken = errors.New("authorization header missing")
	// ErrInvalidToken is returned for malformed or badly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Service issues and parses signed session tokens. The issued token string
// is additionally stored against the user row, so a token is only valid
// while it matches the stored value.
type Service struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime
}

// New creates a new token Service.
func New(secretKey string, expiration time.Duration) *Service {
	return &Service{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Issue creates a session token for the given user id. Every call produces
// a distinct token: the claims carry a random jti.
func (s *Service) Issue(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"jti": uuid.NewString(),
		"exp": now.Add(s.Exp).Unix(),
		"iat": now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.SecretKey))
}

// UserID parses the token string and returns the user id it was issued for.
func (s *Service) UserID(ctx context.Context, tokenString string) (int64, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.SecretKey), nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// FromRequest extracts the token string from the X-Authorization header.
// The header carries the bare token, no scheme prefix.
func (s *Service) FromRequest(ctx context.Context, r *http.Request) (string, error) {
	token := r.Header.Get(Header)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
