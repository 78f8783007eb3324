package ports

import (
	"context"

	"github.com/archiveone/bookingcore/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string, itemType domain.ItemType) (*domain.Item, error)
}
