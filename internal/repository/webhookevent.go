package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// WebhookEventRepository applies provider events to the ledger. The
// idempotency marker and the state transition always land in the same
// transaction; a retried delivery either sees the marker row or collides
// with it on insert, and both read as "already applied".
type WebhookEventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWebhookEventRepo(db *dbpg.DB) *WebhookEventRepository {
	return &WebhookEventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, item_id, item_type, booking_date, guests, status,
		payment_status, payment_intent_id, confirmed_at, user_id, created_at, updated_at`

const userColumns = `id, username, email, is_agent, subscription_tier,
		customer_id, subscription_id, subscription_renews_at, verification_status, created_at, updated_at`

// ApplyPaymentSucceeded confirms every pending row carrying the reference:
// a range reservation shares one payment_intent_id across its days. When the
// expiry sweeper already cancelled the rows, they are flagged paid (status
// stays cancelled), the marker commits, and ErrBookingCancelled is returned
// so the payment leaves a durable trace instead of vanishing into a log line.
func (r *WebhookEventRepository) ApplyPaymentSucceeded(ctx context.Context, eventID, paymentIntentID string) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = insertMarker(ctx, tx, eventID, domain.EventPaymentSucceeded); err != nil {
		return nil, err
	}

	query := `UPDATE bookings
			  SET status = $2, payment_status = $3, confirmed_at = NOW(), updated_at = NOW()
			  WHERE payment_intent_id = $1 AND status = $4
			  RETURNING ` + bookingColumns

	bookings, err := scanBookings(tx.QueryContext(
		ctx, query, paymentIntentID,
		domain.BookingStatusConfirmed, domain.PaymentStatusPaid,
		domain.BookingStatusPending,
	))
	if err != nil {
		return nil, fmt.Errorf("confirm bookings: %w", err)
	}

	if len(bookings) == 0 {
		flagged, err := r.flagCancelledPaid(ctx, tx, paymentIntentID)
		if err != nil {
			return nil, err
		}
		if flagged {
			if err = tx.Commit(); err != nil {
				return nil, fmt.Errorf("commit: %w", err)
			}
			return nil, domain.ErrBookingCancelled
		}
		// Rollback drops the marker too, so a later retry can still apply
		// once the booking exists.
		return nil, domain.ErrBookingNotFound
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return bookings, nil
}

func (r *WebhookEventRepository) flagCancelledPaid(ctx context.Context, tx *sql.Tx, paymentIntentID string) (bool, error) {
	query := `UPDATE bookings
			  SET payment_status = $2, updated_at = NOW()
			  WHERE payment_intent_id = $1 AND status = $3`

	res, err := tx.ExecContext(ctx, query, paymentIntentID,
		domain.PaymentStatusPaid, domain.BookingStatusCancelled)
	if err != nil {
		return false, fmt.Errorf("flag cancelled bookings paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return n > 0, nil
}

func scanBookings(rows *sql.Rows, err error) ([]*domain.Booking, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.ItemID, &b.ItemType, &b.Date, &b.Guests,
			&b.Status, &b.PaymentStatus, &b.PaymentIntentID, &b.ConfirmedAt,
			&b.UserID, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *WebhookEventRepository) ApplySubscriptionCreated(ctx context.Context, eventID, userID, customerID, subscriptionID string, renewsAt time.Time) (*domain.User, error) {
	query := `UPDATE users
			  SET subscription_tier = $2, customer_id = $3, subscription_id = $4,
			      subscription_renews_at = $5, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.applyUserTransition(ctx, eventID, domain.EventSubscriptionCreated, query,
		userID, domain.TierPro, customerID, subscriptionID, renewsAt)
}

func (r *WebhookEventRepository) ApplySubscriptionUpdated(ctx context.Context, eventID, userID string, renewsAt time.Time) (*domain.User, error) {
	query := `UPDATE users
			  SET subscription_renews_at = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.applyUserTransition(ctx, eventID, domain.EventSubscriptionUpdated, query, userID, renewsAt)
}

func (r *WebhookEventRepository) ApplySubscriptionDeleted(ctx context.Context, eventID, userID string) (*domain.User, error) {
	query := `UPDATE users
			  SET subscription_tier = $2, customer_id = NULL, subscription_id = NULL,
			      subscription_renews_at = NULL, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.applyUserTransition(ctx, eventID, domain.EventSubscriptionDeleted, query, userID, domain.TierFree)
}

func (r *WebhookEventRepository) ApplyIdentityVerified(ctx context.Context, eventID, userID string) (*domain.User, error) {
	query := `UPDATE users
			  SET verification_status = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.applyUserTransition(ctx, eventID, domain.EventIdentityVerification, query,
		userID, domain.VerificationVerified)
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, eventID, kind string) error {
	query := `INSERT INTO processed_webhook_events (event_id, kind, processed_at)
			  VALUES ($1, $2, NOW())`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, kind)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEventAlreadyProcessed
		}
		return fmt.Errorf("insert marker: %w", err)
	}

	return nil
}

func (r *WebhookEventRepository) applyUserTransition(ctx context.Context, eventID, kind, query string, args ...any) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = insertMarker(ctx, tx, eventID, kind); err != nil {
		return nil, err
	}

	var u domain.User
	err = tx.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.IsAgent, &u.SubscriptionTier,
		&u.CustomerID, &u.SubscriptionID, &u.SubscriptionRenewsAt,
		&u.VerificationStatus, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("apply %s: %w", kind, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &u, nil
}

func insertMarker(ctx context.Context, tx *sql.Tx, eventID, kind string) error {
	query := `INSERT INTO processed_webhook_events (event_id, kind, processed_at)
			  VALUES ($1, $2, NOW())`
	if _, err := tx.ExecContext(ctx, query, eventID, kind); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEventAlreadyProcessed
		}
		return fmt.Errorf("insert marker: %w", err)
	}

	return nil
}
