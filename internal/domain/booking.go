package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// DateLayout is the calendar-day format used for booking dates and
// per-day aggregation keys.
const DateLayout = "2006-01-02"

// Booking reserves one calendar day of an item. Ranges are stored as one
// row per day so capacity accounting stays a per-(item, day) aggregate.
type Booking struct {
	ID              string        `json:"id"`
	ItemID          string        `json:"item_id"`
	ItemType        ItemType      `json:"item_type"`
	Date            time.Time     `json:"date"`
	Guests          int           `json:"guests"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty"`
	ConfirmedAt     *time.Time    `json:"confirmed_at,omitempty"`
	UserID          string        `json:"user_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type ReserveInput struct {
	ItemID          string
	ItemType        string
	StartDate       time.Time
	EndDate         time.Time
	Guests          int
	UserID          string
	PaymentIntentID *string
}
