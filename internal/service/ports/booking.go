package ports

import (
	"context"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
)

type BookingRepo interface {
	// CreateForDays inserts a set of per-day bookings for one item as a
	// single atomic unit, re-validating capacity for every day under a
	// row lock on the item.
	CreateForDays(ctx context.Context, bookings []*domain.Booking) error
	// GuestsPerDay aggregates non-cancelled guest counts keyed by
	// domain.DateLayout over the closed interval [start, end].
	GuestsPerDay(ctx context.Context, itemID string, itemType domain.ItemType, start, end time.Time) (map[string]int, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	CancelExpired(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
}
