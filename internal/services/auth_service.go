package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/storefrontlabs/catalog-backend/internal/config"
	"github.com/storefrontlabs/catalog-backend/internal/models"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers bad logins and invalid, expired, or
	// orphaned tokens alike. The cases are deliberately indistinguishable
	// from the outside.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("not enough permissions")
)

// TokenClaims is the minimal claim set embedded in every issued token.
type TokenClaims struct {
	UserID  uuid.UUID
	Subject string
}

type AuthService struct {
	users  *repository.UserRepository
	hasher repository.PasswordHasher
	cfg    *config.Config
}

func NewAuthService(users *repository.UserRepository, hasher repository.PasswordHasher, cfg *config.Config) *AuthService {
	return &AuthService{users: users, hasher: hasher, cfg: cfg}
}

// IssueToken signs a token carrying the user's id and email with an
// absolute expiry. There is no refresh flow; re-issuance requires
// re-authenticating with credentials.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"sub":     user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.JWTExpiry).Unix(),
	}

	method := jwt.GetSigningMethod(s.cfg.JWTAlgorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", s.cfg.JWTAlgorithm)
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken validates signature and expiry and extracts the claim set.
// Any failure maps to ErrInvalidCredentials.
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.cfg.JWTAlgorithm {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	rawID, _ := claims["user_id"].(string)
	sub, _ := claims["sub"].(string)
	if rawID == "" || sub == "" {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return &TokenClaims{UserID: userID, Subject: sub}, nil
}

// CurrentUser resolves the token's subject to a live user row. A token whose
// subject no longer exists fails exactly like a forged one.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login checks credentials and issues a token. "No such user" and "wrong
// password" produce the identical error so neither case leaks.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a user after an explicit email uniqueness pre-check. A
// concurrent duplicate still surfaces as a constraint violation at commit.
func (s *AuthService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	taken, err := s.users.EmailExists(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}
	return s.users.Create(ctx, user, password)
}

// RequireSuperuser is the admin-only gate: authenticated and superuser, or
// ErrForbidden.
func (s *AuthService) RequireSuperuser(ctx context.Context, tokenString string) (*models.User, error) {
	user, err := s.CurrentUser(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if !user.IsSuperuser {
		return nil, ErrForbidden
	}
	return user, nil
}
