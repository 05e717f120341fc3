package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gardenbook/entities"
	repo "gardenbook/pkg/auth/repository"
	"gardenbook/pkg/auth/service"
	"gardenbook/pkg/middleware"
)

type authSvc struct {
	r      repo.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(r repo.UserRepository, secret []byte, ttl time.Duration) service.AuthService {
	return &authSvc{r: r, secret: secret, ttl: ttl}
}

func (s *authSvc) Register(ctx context.Context, email, password, displayName string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if _, err := s.r.FindByEmail(ctx, email); err == nil {
		return nil, service.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entities.User{
		UID:          "U_" + uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
	}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authSvc) Login(ctx context.Context, email, password string) (string, *entities.User, error) {
	if len(s.secret) == 0 {
		return "", nil, errors.New("token login is disabled")
	}
	u, err := s.r.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, service.ErrBadCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, service.ErrBadCredentials
	}
	tok, err := middleware.IssueToken(s.secret, u.UID, s.ttl)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}
