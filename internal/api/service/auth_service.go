package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"reviewhub/internal/auth"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/config"
	"reviewhub/internal/mail"
)

type AuthService interface {
	// SignUp creates the user (or reuses the exact username+email pair)
	// and emails a fresh confirmation code. created is false on resend.
	SignUp(ctx context.Context, username, email string) (created bool, err error)
	// IssueToken exchanges a valid (username, code) pair for a session token.
	IssueToken(ctx context.Context, username, code string) (string, error)
	// Authenticate resolves a session token to its user record.
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo        repository.UserRepository
	codeStore       repository.ConfirmationCodeStore
	mailer          mail.Mailer
	jwtSecret       string
	jwtExpiry       time.Duration
	confirmationTTL time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	codeStore repository.ConfirmationCodeStore,
	mailer mail.Mailer,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		codeStore:       codeStore,
		mailer:          mailer,
		jwtSecret:       cfg.JWTSecret,
		jwtExpiry:       cfg.JWTExpiry,
		confirmationTTL: cfg.ConfirmationTTL,
	}
}

func (s *authService) SignUp(ctx context.Context, username, email string) (bool, error) {
	if !models.ValidUsername(username) {
		return false, ErrInvalidUsername
	}
	if models.ReservedUsername(username) {
		return false, ErrReservedUsername
	}

	// An exact (username, email) match is a resend, not a conflict.
	user, err := s.userRepo.FindByUsernameAndEmail(ctx, username, email)
	created := false
	switch {
	case err == nil:
		// resend path
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{
			Username: username,
			Email:    email,
			Role:     models.RoleUser,
			IsActive: true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			// Partial collisions, including ones raced in after the
			// lookup above, surface here through the unique indexes.
			if repository.IsUniqueViolation(err) {
				return false, ErrUserConflict
			}
			return false, err
		}
		created = true
	default:
		return false, err
	}

	code := auth.NewConfirmationCode()
	codeHash, err := auth.HashCode(code)
	if err != nil {
		return false, err
	}
	if err := s.codeStore.Save(ctx, user.Username, codeHash, s.confirmationTTL); err != nil {
		return false, err
	}

	if err := s.mailer.SendConfirmationCode(user.Email, user.Username, code); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	return created, nil
}

func (s *authService) IssueToken(ctx context.Context, username, code string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	codeHash, err := s.codeStore.Get(ctx, user.Username)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return "", ErrInvalidCode
		}
		return "", err
	}
	if err := auth.VerifyCode(codeHash, code); err != nil {
		return "", ErrInvalidCode
	}

	token, err := s.generateSessionToken(user)
	if err != nil {
		return "", err
	}

	// The code is single-use; consume it only once the token exists, so
	// a signing failure never burns the code.
	if err := s.codeStore.Delete(ctx, user.Username); err != nil {
		return "", err
	}

	return token, nil
}

func (s *authService) generateSessionToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     now.Add(s.jwtExpiry).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, int64(rawID))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrInvalidToken
	}
	return user, nil
}
