package dto

type CreateItemRequest struct {
	Type        string `json:"type" binding:"required"`
	OwnerID     string `json:"owner_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	MaxGuests   int    `json:"max_guests" binding:"required,gt=0"`
	Price       int64  `json:"price" binding:"required,gte=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
	CleaningFee *int64 `json:"cleaning_fee"`
}

type ReserveRequest struct {
	ItemID    string `json:"item_id" binding:"required,uuid"`
	ItemType  string `json:"item_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
	Guests    int    `json:"guests" binding:"required,gt=0"`
	UserID    string `json:"user_id" binding:"required,uuid"`
	// PaymentIntentID is the provider checkout reference the payment
	// webhook later confirms against. Optional: free reservations and
	// flows that attach payment out of band omit it.
	PaymentIntentID *string `json:"payment_intent_id"`
}

type CreateCommissionRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid"`
	AgentID    string `json:"agent_id" binding:"required,uuid"`
	SaleAmount int64  `json:"sale_amount" binding:"required,gt=0"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	IsAgent  bool   `json:"is_agent"`
}
