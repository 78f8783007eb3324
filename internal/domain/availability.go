package domain

import "time"

// DaySlot is the availability projection for one calendar day of an item.
type DaySlot struct {
	Date         time.Time `json:"date"`
	Available    bool      `json:"available"`
	MaxGuests    int       `json:"max_guests"`
	BookedGuests int       `json:"current_bookings"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"`
}

type PriceLine struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

type Pricing struct {
	BasePrice      int64       `json:"base_price"`
	Currency       string      `json:"currency"`
	AdditionalFees []PriceLine `json:"additional_fees"`
}

type AvailabilityProjection struct {
	Available bool      `json:"available"`
	Slots     []DaySlot `json:"slots"`
	Pricing   Pricing   `json:"pricing"`
}

const serviceFeePct = 10

// ProjectAvailability builds the per-day availability of an item over the
// closed interval [start, end], in ascending date order. bookedGuests maps
// a DateLayout key to the aggregate guest count of non-cancelled bookings
// for that day. The projection is a pure read: it holds no reservation and
// may be stale the moment it is returned.
func ProjectAvailability(item *Item, bookedGuests map[string]int, start, end time.Time) *AvailabilityProjection {
	start = truncateToDay(start)
	end = truncateToDay(end)

	p := &AvailabilityProjection{
		Slots: make([]DaySlot, 0, int(end.Sub(start).Hours()/24)+1),
		Pricing: Pricing{
			BasePrice: item.Price,
			Currency:  item.Currency,
		},
	}

	if item.Type == ItemTypeProperty && item.CleaningFee != nil {
		p.Pricing.AdditionalFees = append(p.Pricing.AdditionalFees, PriceLine{
			Name:   "cleaning_fee",
			Amount: *item.CleaningFee,
		})
	}
	p.Pricing.AdditionalFees = append(p.Pricing.AdditionalFees, PriceLine{
		Name:   "service_fee",
		Amount: PercentHalfUp(item.Price, serviceFeePct),
	})

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		booked := bookedGuests[day.Format(DateLayout)]
		slot := DaySlot{
			Date:         day,
			Available:    booked < item.MaxGuests,
			MaxGuests:    item.MaxGuests,
			BookedGuests: booked,
			Price:        item.Price,
			Currency:     item.Currency,
		}
		if slot.Available {
			p.Available = true
		}
		p.Slots = append(p.Slots, slot)
	}

	return p
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
