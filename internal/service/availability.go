package service

import (
	"context"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports"
)

// Availability queries are capped so a single request cannot aggregate an
// unbounded range of booking rows.
const maxRangeDays = 366

type AvailabilityService struct {
	itemRepo    ports.ItemRepo
	bookingRepo ports.BookingRepo
}

func NewAvailabilityService(itemRepo ports.ItemRepo, bookingRepo ports.BookingRepo) *AvailabilityService {
	return &AvailabilityService{
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
	}
}

// Project computes the per-day availability of an item over [start, end].
// Input validation runs before any repository read; the projection itself
// is advisory and holds no reservation.
func (s *AvailabilityService) Project(ctx context.Context, itemID, itemType string, start, end time.Time, guests int) (*domain.AvailabilityProjection, error) {
	typ := domain.ItemType(itemType)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unsupported item type %q", domain.ErrValidation, itemType)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", domain.ErrValidation)
	}
	if guests < 0 {
		return nil, fmt.Errorf("%w: guests must not be negative", domain.ErrValidation)
	}
	if int(end.Sub(start).Hours()/24) >= maxRangeDays {
		return nil, fmt.Errorf("%w: date range exceeds %d days", domain.ErrValidation, maxRangeDays)
	}

	item, err := s.itemRepo.GetByID(ctx, itemID, typ)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	booked, err := s.bookingRepo.GuestsPerDay(ctx, itemID, typ, start, end)
	if err != nil {
		return nil, fmt.Errorf("guests per day: %w", err)
	}

	return domain.ProjectAvailability(item, booked, start, end), nil
}
