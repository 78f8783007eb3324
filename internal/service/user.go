package service

import (
	"context"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:                 uuid.New().String(),
		Username:           input.Username,
		Email:              input.Email,
		IsAgent:            input.IsAgent,
		SubscriptionTier:   domain.TierFree,
		VerificationStatus: domain.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
