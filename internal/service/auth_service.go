package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 8
	maxNicknameLen = 30
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = apperr.Unauthorized("invalid credentials")
	ErrInvalidToken       = apperr.Unauthorized("invalid or expired token")
)

// AuthService handles local sign-up/sign-in and JWT issuing.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
	admins     map[string]struct{}
}

// NewAuthService builds the service. Accounts whose e-mail is in adminEmails hold the ADMIN role.
func NewAuthService(users repository.Users, signingKey string, tokenTTL time.Duration, adminEmails []string) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AuthService{users: users, signingKey: []byte(signingKey), tokenTTL: tokenTTL, admins: admins}
}

// roleFor returns the role a new account with this e-mail starts with.
func (s *AuthService) roleFor(email string) string {
	if _, ok := s.admins[normalizeEmail(email)]; ok {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// promote grants ADMIN to an existing account listed in the admin e-mails.
// Roles are never revoked here.
func (s *AuthService) promote(ctx context.Context, u *models.User) error {
	if u.Role == models.RoleAdmin || s.roleFor(u.Email) != models.RoleAdmin {
		return nil
	}
	if err := s.users.SetRole(ctx, u.ID, models.RoleAdmin); err != nil {
		return translate(err, "user")
	}
	u.Role = models.RoleAdmin
	return nil
}

// SignUp validates input, hashes the password and creates a local account.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (int64, error) {
	email := normalizeEmail(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return 0, apperr.Validation("invalid email %q", in.Email)
	}
	nickname, err := validateNickname(in.Nickname)
	if err != nil {
		return 0, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	if u, err := s.users.GetByEmail(ctx, email); err != nil {
		return 0, err
	} else if u != nil {
		return 0, apperr.Conflict("email %q is already registered", email)
	}
	if u, err := s.users.GetByNickname(ctx, nickname); err != nil {
		return 0, err
	} else if u != nil {
		return 0, apperr.Conflict("nickname %q is already taken", nickname)
	}

	id, err := s.users.Create(ctx, models.User{
		Email:        email,
		Nickname:     nickname,
		Provider:     models.ProviderLocal,
		ProviderID:   email,
		PasswordHash: hash,
		Role:         s.roleFor(email),
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return 0, apperr.Conflict("email or nickname already in use")
	}
	return id, err
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// GenerateToken validates local credentials and returns a JWT.
func (s *AuthService) GenerateToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if u == nil || u.Provider != models.ProviderLocal || u.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	if err := s.promote(ctx, u); err != nil {
		return "", err
	}
	return s.IssueToken(u.ID, u.Role)
}

// IssueToken signs a token for an already authenticated user.
func (s *AuthService) IssueToken(userID int64, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	})
	return token.SignedString(s.signingKey)
}

// ParseToken parses a JWT and returns the caller identity.
func (s *AuthService) ParseToken(accessToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return Identity{}, apperr.Wrap(apperr.CodeUnauthorized, ErrInvalidToken.Message, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateNickname(nickname string) (string, error) {
	n := strings.TrimSpace(nickname)
	if n == "" {
		return "", apperr.Validation("nickname is empty")
	}
	if len([]rune(n)) > maxNicknameLen {
		return "", apperr.Validation("nickname must be at most %d characters", maxNicknameLen)
	}
	return n, nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", apperr.Validation("password is empty")
	}
	if len(password) < minPasswordLen {
		return "", apperr.Validation("password must be at least %d characters", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
