package ports

import (
	"context"

	"github.com/archiveone/bookingcore/internal/domain"
)

type CommissionRepo interface {
	Create(ctx context.Context, c *domain.Commission) error
}
