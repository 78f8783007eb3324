package domain

import "time"

// Provider event kinds consumed by the reconciler. Anything else is
// acknowledged and dropped.
const (
	EventPaymentSucceeded     = "payment_intent.succeeded"
	EventSubscriptionCreated  = "customer.subscription.created"
	EventSubscriptionUpdated  = "customer.subscription.updated"
	EventSubscriptionDeleted  = "customer.subscription.deleted"
	EventIdentityVerification = "identity.verification_session.completed"
)

// Identity verification session outcomes reported by the provider.
const (
	IdentityOutcomeVerified      = "verified"
	IdentityOutcomeRequiresInput = "requires_input"
	IdentityOutcomeCanceled      = "canceled"
)

// ProcessedWebhookEvent marks a provider event as applied. Rows are
// insert-only and never deleted; a primary-key conflict on insert is the
// signal that a retried delivery must be acknowledged as a no-op.
type ProcessedWebhookEvent struct {
	EventID     string    `json:"event_id"`
	Kind        string    `json:"kind"`
	ProcessedAt time.Time `json:"processed_at"`
}
