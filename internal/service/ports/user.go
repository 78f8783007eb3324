package ports

import (
	"context"

	"github.com/archiveone/bookingcore/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
