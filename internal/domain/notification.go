package domain

// Notification kinds produced by the core. Delivery is handled downstream
// by the notification consumers; the core only guarantees enqueue intent.
const (
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationBookingReceived  = "booking_received"
	NotificationBookingExpired   = "booking_expired"
	NotificationCommissionEarned = "commission_earned"
)
