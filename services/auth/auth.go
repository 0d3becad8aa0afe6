package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	staffRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/staff"
	"github.com/bholdsworth/mindful-booking-noushy/models"
	"github.com/bholdsworth/mindful-booking-noushy/utils"
)

const (
	tokenPrefix = "staffToken:"
	tokenTTL    = 12 * time.Hour
)

// AuthService signs management console staff in and out, and provisions
// their accounts.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (string, *models.StaffAccount, error)
	ValidateSession(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
	RegisterStaff(ctx context.Context, name, email, password string) (*models.StaffAccount, error)
	GetAccount(ctx context.Context, staffID string) (*models.StaffAccount, error)
}

// DefaultAuthService issues JWT bearer tokens whose hashes are cached in
// Redis; revocation deletes the hash so stolen tokens die with logout.
type DefaultAuthService struct {
	Repo  staffRepo.StaffRepository
	Cache *redis.Client
}

func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (string, *models.StaffAccount, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := s.Cache.Set(ctx, tokenPrefix+utils.HashToken(token), account.ID, tokenTTL).Err(); err != nil {
		return "", nil, fmt.Errorf("failed to cache session: %w", err)
	}
	return token, account, nil
}

// ValidateSession returns the staff ID for a live token.
func (s *DefaultAuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	staffID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	cached, err := s.Cache.Get(ctx, tokenPrefix+utils.HashToken(token)).Result()
	if err == redis.Nil || (err == nil && cached != staffID) {
		return "", fmt.Errorf("session revoked or expired")
	}
	if err != nil {
		return "", fmt.Errorf("failed to check session: %w", err)
	}
	return staffID, nil
}

func (s *DefaultAuthService) Revoke(ctx context.Context, token string) error {
	return s.Cache.Del(ctx, tokenPrefix+utils.HashToken(token)).Err()
}

// RegisterStaff provisions a console login with a bcrypt-hashed password.
func (s *DefaultAuthService) RegisterStaff(ctx context.Context, name, email, password string) (*models.StaffAccount, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("staff name and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, fmt.Errorf("an account with that email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account := models.StaffAccount{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         "staff",
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}
	return &account, nil
}

// GetAccount returns the signed-in staff member's own record.
func (s *DefaultAuthService) GetAccount(ctx context.Context, staffID string) (*models.StaffAccount, error) {
	account, err := s.Repo.GetByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("staff account not found: %w", err)
	}
	return account, nil
}
