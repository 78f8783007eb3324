package ports

import (
	"context"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
)

// WebhookEventRepo applies provider events to the ledger. Every Apply
// method records the idempotency marker and performs its state transition
// inside one transaction: either both land or neither does. A marker
// conflict surfaces as domain.ErrEventAlreadyProcessed.
type WebhookEventRepo interface {
	// ApplyPaymentSucceeded confirms all pending rows sharing the payment
	// reference (one per day of a range reservation). Rows already released
	// by the expiry sweeper are flagged paid and surface as
	// domain.ErrBookingCancelled.
	ApplyPaymentSucceeded(ctx context.Context, eventID, paymentIntentID string) ([]*domain.Booking, error)
	ApplySubscriptionCreated(ctx context.Context, eventID, userID, customerID, subscriptionID string, renewsAt time.Time) (*domain.User, error)
	ApplySubscriptionUpdated(ctx context.Context, eventID, userID string, renewsAt time.Time) (*domain.User, error)
	ApplySubscriptionDeleted(ctx context.Context, eventID, userID string) (*domain.User, error)
	ApplyIdentityVerified(ctx context.Context, eventID, userID string) (*domain.User, error)
	// MarkProcessed records the marker for events that carry no state
	// transition (e.g. a non-verified identity outcome).
	MarkProcessed(ctx context.Context, eventID, kind string) error
}
