package domain

import "time"

// TourPackage represents a tour package offered on the website
type TourPackage struct {
	ID             int64
	Name           string
	DurationDays   int
	PricePerPerson float64
	Currency       string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccommodationLevel уровень размещения в туре
type AccommodationLevel string

const (
	AccommodationStandard AccommodationLevel = "standard"
	AccommodationDeluxe   AccommodationLevel = "deluxe"
	AccommodationLuxury   AccommodationLevel = "luxury"
	AccommodationPremium  AccommodationLevel = "premium"
)

// Vehicle represents a rentable vehicle
type Vehicle struct {
	ID          int64
	Name        string
	Type        string
	Seats       int
	PricePerDay float64
	Currency    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasSeatsFor returns true if the vehicle can carry the given number of passengers
func (v *Vehicle) HasSeatsFor(passengers int) bool {
	return v.Seats == 0 || passengers <= v.Seats
}
