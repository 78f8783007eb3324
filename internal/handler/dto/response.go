package dto

import (
	"time"

	"github.com/archiveone/bookingcore/internal/domain"
)

type SlotResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Available       bool   `json:"available"`
	MaxGuests       int    `json:"max_guests"`
	CurrentBookings int    `json:"current_bookings"`
	Price           int64  `json:"price"`
	Currency        string `json:"currency"`
}

type PriceLineResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

type PricingResponse struct {
	BasePrice      int64               `json:"base_price"`
	Currency       string              `json:"currency"`
	AdditionalFees []PriceLineResponse `json:"additional_fees"`
}

type AvailabilityResponse struct {
	Available bool            `json:"available"`
	Slots     []SlotResponse  `json:"slots"`
	Pricing   PricingResponse `json:"pricing"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	ItemID          string  `json:"item_id"`
	ItemType        string  `json:"item_type"`
	Date            string  `json:"date"`
	Guests          int     `json:"guests"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
	ConfirmedAt     *string `json:"confirmed_at,omitempty"`
	UserID          string  `json:"user_id"`
	CreatedAt       string  `json:"created_at"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	MaxGuests   int    `json:"max_guests"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	CleaningFee *int64 `json:"cleaning_fee,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type CommissionResponse struct {
	ID              string `json:"id"`
	PropertyID      string `json:"property_id"`
	AgentID         string `json:"agent_id"`
	SaleAmount      int64  `json:"sale_amount"`
	TotalCommission int64  `json:"total_commission"`
	PlatformFee     int64  `json:"platform_fee"`
	AgentCommission int64  `json:"agent_commission"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type UserResponse struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	IsAgent            bool   `json:"is_agent"`
	SubscriptionTier   string `json:"subscription_tier"`
	VerificationStatus string `json:"verification_status"`
	CreatedAt          string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAvailabilityResponse(p *domain.AvailabilityProjection) AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(p.Slots))
	for _, s := range p.Slots {
		day := s.Date.Format(domain.DateLayout)
		slots = append(slots, SlotResponse{
			ID:              day,
			Date:            day,
			Available:       s.Available,
			MaxGuests:       s.MaxGuests,
			CurrentBookings: s.BookedGuests,
			Price:           s.Price,
			Currency:        s.Currency,
		})
	}

	fees := make([]PriceLineResponse, 0, len(p.Pricing.AdditionalFees))
	for _, f := range p.Pricing.AdditionalFees {
		fees = append(fees, PriceLineResponse{Name: f.Name, Amount: f.Amount})
	}

	return AvailabilityResponse{
		Available: p.Available,
		Slots:     slots,
		Pricing: PricingResponse{
			BasePrice:      p.Pricing.BasePrice,
			Currency:       p.Pricing.Currency,
			AdditionalFees: fees,
		},
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		ItemID:          b.ItemID,
		ItemType:        string(b.ItemType),
		Date:            b.Date.Format(domain.DateLayout),
		Guests:          b.Guests,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentIntentID: b.PaymentIntentID,
		UserID:          b.UserID,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.ConfirmedAt != nil {
		confirmed := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmed
	}

	return resp
}

func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Type:        string(item.Type),
		OwnerID:     item.OwnerID,
		Title:       item.Title,
		MaxGuests:   item.MaxGuests,
		Price:       item.Price,
		Currency:    item.Currency,
		CleaningFee: item.CleaningFee,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
}

func ToCommissionResponse(c *domain.Commission) CommissionResponse {
	return CommissionResponse{
		ID:              c.ID,
		PropertyID:      c.PropertyID,
		AgentID:         c.AgentID,
		SaleAmount:      c.SaleAmount,
		TotalCommission: c.TotalCommission,
		PlatformFee:     c.PlatformFee,
		AgentCommission: c.AgentCommission,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		IsAgent:            u.IsAgent,
		SubscriptionTier:   string(u.SubscriptionTier),
		VerificationStatus: string(u.VerificationStatus),
		CreatedAt:          u.CreatedAt.Format(time.RFC3339),
	}
}
