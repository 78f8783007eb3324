package domain

import "time"

type ItemType string

const (
	ItemTypeProperty ItemType = "property"
	ItemTypeService  ItemType = "service"
	ItemTypeLeisure  ItemType = "leisure"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeProperty, ItemTypeService, ItemTypeLeisure:
		return true
	}
	return false
}

// Item is anything bookable for a calendar day: a property, a service
// slot or a leisure activity. Prices are integer minor units.
type Item struct {
	ID          string    `json:"id"`
	Type        ItemType  `json:"type"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	MaxGuests   int       `json:"max_guests"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	CleaningFee *int64    `json:"cleaning_fee,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateItemInput struct {
	Type        string
	OwnerID     string
	Title       string
	MaxGuests   int
	Price       int64
	Currency    string
	CleaningFee *int64
}
