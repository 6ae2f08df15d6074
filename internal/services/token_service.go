package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/iwansal64/report-web-api/internal/config"
	"github.com/iwansal64/report-web-api/internal/models"
	"github.com/iwansal64/report-web-api/internal/utils"
)

// SessionClaims is the payload of the user_token session cookie. The
// expiry claim is embedded so the token stays bounded even if the cookie
// outlives its Max-Age somewhere.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type TokenService struct {
	users UserStore
	cfg   *config.Config
}

func NewTokenService(users UserStore, cfg *config.Config) *TokenService {
	return &TokenService{users: users, cfg: cfg}
}

// Login checks the credentials and returns a signed session token.
func (s *TokenService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", utils.NewAppError(401, "UNAUTHORIZED", "invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", utils.NewAppError(401, "UNAUTHORIZED", "invalid credentials", nil)
	}

	token, err := s.IssueToken(user.Email)
	if err != nil {
		return "", utils.NewAppError(500, "INTERNAL_ERROR", "could not generate token", nil)
	}
	return token, nil
}

func (s *TokenService) IssueToken(email string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken validates the signature and expiry and returns the email
// claim. Any failure mode (bad signature, malformed, expired) is just an
// error to the caller.
func (s *TokenService) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Email, nil
}

func (s *TokenService) ResolveRole(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// IsTeacher reports whether the token verifies and belongs to a teacher
// account. A token that verifies but resolves to another role is not
// enough.
func (s *TokenService) IsTeacher(ctx context.Context, tokenStr string) bool {
	email, err := s.VerifyToken(tokenStr)
	if err != nil {
		return false
	}
	role, err := s.ResolveRole(ctx, email)
	if err != nil {
		return false
	}
	return role == models.RoleTeacher
}
