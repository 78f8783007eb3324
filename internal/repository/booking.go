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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateForDays inserts every booking in one transaction. The item row is
// locked first so two reservations racing for the last remaining guests
// serialize on the capacity re-check instead of both passing it.
func (r *BookingRepository) CreateForDays(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	itemID, itemType := bookings[0].ItemID, bookings[0].ItemType

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем позицию на время проверки вместимости
	var maxGuests int
	lockQuery := `SELECT max_guests FROM items WHERE id = $1 AND item_type = $2 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, itemID, itemType).Scan(&maxGuests); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("lock item: %w", err)
	}

	sumQuery := `SELECT COALESCE(SUM(guests), 0) FROM bookings
				 WHERE item_id = $1 AND item_type = $2 AND booking_date = $3 AND status = ANY($4)`
	insertQuery := `INSERT INTO bookings (id, item_id, item_type, booking_date, guests, status, payment_status, payment_intent_id, user_id, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, b := range bookings {
		var booked int
		if err = tx.QueryRowContext(
			ctx, sumQuery, itemID, itemType, b.Date,
			pq.Array(domain.ActiveStatuses),
		).Scan(&booked); err != nil {
			return fmt.Errorf("sum guests: %w", err)
		}

		if booked+b.Guests > maxGuests {
			return domain.ErrNoCapacity
		}

		_, err = tx.ExecContext(
			ctx, insertQuery,
			b.ID, b.ItemID, b.ItemType, b.Date, b.Guests,
			b.Status, b.PaymentStatus, b.PaymentIntentID, b.UserID,
			b.CreatedAt, b.UpdatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domain.ErrAlreadyBooked
			}
			return fmt.Errorf("insert booking: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GuestsPerDay(ctx context.Context, itemID string, itemType domain.ItemType, start, end time.Time) (map[string]int, error) {
	query := `SELECT booking_date, COALESCE(SUM(guests), 0)
			  FROM bookings
			  WHERE item_id = $1 AND item_type = $2
			    AND booking_date BETWEEN $3 AND $4
			    AND status = ANY($5)
			  GROUP BY booking_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, itemID, itemType, start, end, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("guests per day: %w", err)
	}
	defer rows.Close()

	res := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var guests int
		if err = rows.Scan(&day, &guests); err != nil {
			return nil, fmt.Errorf("scan guests per day: %w", err)
		}
		res[day.Format(domain.DateLayout)] = guests
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, item_id, item_type, booking_date, guests, status, payment_status, payment_intent_id, confirmed_at, user_id, created_at, updated_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY booking_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
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
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) CancelExpired(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE status = $1
		  AND payment_status = $2
		  AND created_at + make_interval(secs => $4) < NOW()
		RETURNING id, item_id, item_type, booking_date, guests, status,
				  payment_status, payment_intent_id, confirmed_at, user_id,
				  created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.PaymentStatusUnpaid,
		domain.BookingStatusCancelled, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
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
			return nil, fmt.Errorf("scan: %w", err)
		}

		res = append(res, &b)
	}

	return res, rows.Err()
}
