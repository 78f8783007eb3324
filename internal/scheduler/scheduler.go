package scheduler

import (
	"context"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCanceller interface {
	CancelExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Sweeper periodically cancels pending bookings whose payment window has
// lapsed, so abandoned checkouts stop holding capacity.
type Sweeper struct {
	bookingService bookingCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("item_id", b.ItemID),
			logger.String("user_id", b.UserID),
		)
	}
}
