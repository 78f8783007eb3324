package service

import (
	"context"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/archiveone/bookingcore/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	itemRepo    ports.ItemRepo
	userRepo    ports.UserRepo
	notifier    ports.NotificationDispatcher
	pendingTTL  time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	itemRepo ports.ItemRepo,
	userRepo ports.UserRepo,
	notifier ports.NotificationDispatcher,
	pendingTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		pendingTTL:  pendingTTL,
		logger:      logger,
	}
}

// Reserve creates one pending/unpaid booking row per calendar day of the
// requested range. The capacity check runs inside the repository
// transaction, so overflow surfaces as domain.ErrNoCapacity even when
// reservations race for the last remaining guests.
func (s *BookingService) Reserve(ctx context.Context, input domain.ReserveInput) ([]*domain.Booking, error) {
	typ := domain.ItemType(input.ItemType)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unsupported item type %q", domain.ErrValidation, input.ItemType)
	}
	if input.Guests < 1 {
		return nil, fmt.Errorf("%w: guests must be positive", domain.ErrValidation)
	}
	end := input.EndDate
	if end.IsZero() {
		end = input.StartDate
	}
	if end.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", domain.ErrValidation)
	}

	item, err := s.itemRepo.GetByID(ctx, input.ItemID, typ)
	if err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}

	if input.Guests > item.MaxGuests {
		return nil, domain.ErrNoCapacity
	}

	if _, err = s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	var bookings []*domain.Booking
	for day := input.StartDate; !day.After(end); day = day.AddDate(0, 0, 1) {
		bookings = append(bookings, &domain.Booking{
			ID:              uuid.New().String(),
			ItemID:          item.ID,
			ItemType:        item.Type,
			Date:            day,
			Guests:          input.Guests,
			Status:          domain.BookingStatusPending,
			PaymentStatus:   domain.PaymentStatusUnpaid,
			PaymentIntentID: input.PaymentIntentID,
			UserID:          input.UserID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	if err = s.bookingRepo.CreateForDays(ctx, bookings); err != nil {
		return nil, fmt.Errorf("create bookings: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("item_id", item.ID),
		logger.String("item_type", string(item.Type)),
		logger.String("user_id", input.UserID),
		logger.Int("days", len(bookings)),
	)

	return bookings, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// CancelExpired sweeps pending/unpaid bookings whose payment window has
// lapsed, releasing the capacity they held.
func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelExpired(ctx, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifier.Enqueue(ctx, b.UserID, domain.NotificationBookingExpired, map[string]any{
			"booking_id": b.ID,
			"item_id":    b.ItemID,
			"item_type":  string(b.ItemType),
			"date":       b.Date.Format(domain.DateLayout),
		})
	}
}
