package domain

import "time"

type SubscriptionTier string

const (
	TierFree SubscriptionTier = "FREE"
	TierPro  SubscriptionTier = "PRO"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

type User struct {
	ID                   string             `json:"id"`
	Username             string             `json:"username"`
	Email                string             `json:"email"`
	IsAgent              bool               `json:"is_agent"`
	SubscriptionTier     SubscriptionTier   `json:"subscription_tier"`
	CustomerID           *string            `json:"customer_id,omitempty"`
	SubscriptionID       *string            `json:"subscription_id,omitempty"`
	SubscriptionRenewsAt *time.Time         `json:"subscription_renews_at,omitempty"`
	VerificationStatus   VerificationStatus `json:"verification_status"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

type CreateUserInput struct {
	Username string
	Email    string
	IsAgent  bool
}
