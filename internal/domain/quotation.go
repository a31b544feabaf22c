package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// QuotationStatus represents the lifecycle status of a quotation
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationViewed   QuotationStatus = "viewed"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationDeclined QuotationStatus = "declined"
	QuotationExpired  QuotationStatus = "expired"
)

// Quotation represents a priced offer sent to a prospective customer
type Quotation struct {
	ID              int64
	QuotationNumber string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string

	ServiceType pricing.ServiceType
	ItemID      *int64 // ID пакета тура или автомобиля (для гостиницы - nil)
	ItemName    string
	RentalType  *pricing.RentalType

	StartDate   time.Time
	EndDate     time.Time
	Days        int
	NumAdults   int
	NumChildren int
	NumInfants  int
	NumRooms    int

	// Цены денормализованы на момент создания
	Currency          string
	BasePrice         float64
	Subtotal          decimal.Decimal
	DepositPercentage float64
	DepositAmount     decimal.Decimal
	RemainingAmount   decimal.Decimal

	ValidUntil time.Time
	Status     QuotationStatus
	Notes      *string
	CreatedBy  int64

	SentAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinal returns true if no further status changes are possible
func (q *Quotation) IsFinal() bool {
	return q.Status == QuotationAccepted ||
		q.Status == QuotationDeclined ||
		q.Status == QuotationExpired
}

// IsExpiredAt returns true if the validity window has passed and the quotation is still open
func (q *Quotation) IsExpiredAt(now time.Time) bool {
	return !q.IsFinal() && now.After(q.ValidUntil)
}

// CanBeSent returns true if the quotation can be (re)sent to the customer
func (q *Quotation) CanBeSent() bool {
	return q.Status == QuotationDraft || q.Status == QuotationSent || q.Status == QuotationViewed
}

// CanTransitionTo проверяет допустимость перехода статуса
func (q *Quotation) CanTransitionTo(next QuotationStatus) bool {
	allowed, ok := quotationTransitions[q.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == next {
			return true
		}
	}
	return false
}

var quotationTransitions = map[QuotationStatus][]QuotationStatus{
	QuotationDraft:  {QuotationSent, QuotationExpired},
	QuotationSent:   {QuotationViewed, QuotationAccepted, QuotationDeclined, QuotationExpired},
	QuotationViewed: {QuotationAccepted, QuotationDeclined, QuotationExpired},
}

// QuotationsFilter фильтр для списка котировок
type QuotationsFilter struct {
	Status        *QuotationStatus // Фильтр по статусу (опционально)
	ServiceType   *pricing.ServiceType
	CustomerEmail *string
	Limit         uint64
	Offset        uint64
}
