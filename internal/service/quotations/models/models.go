package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid quotation status")
)

// Request модели

// ListQuotationsRequest запрос на получение списка котировок
type ListQuotationsRequest struct {
	Status        *string `json:"status,omitempty"`
	ServiceType   *string `json:"serviceType,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Limit         uint64  `json:"limit,omitempty"`
	Offset        uint64  `json:"offset,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса котировки
type UpdateStatusRequest struct {
	UserID int64  `json:"-"`
	Status string `json:"status"`
}

// Response модели

// QuotationResponse ответ с данными котировки
type QuotationResponse struct {
	ID                int64           `json:"id"`
	QuotationNumber   string          `json:"quotationNumber"`
	CustomerName      string          `json:"customerName"`
	CustomerEmail     string          `json:"customerEmail"`
	CustomerPhone     *string         `json:"customerPhone,omitempty"`
	ServiceType       string          `json:"serviceType"`
	ItemID            *int64          `json:"itemId,omitempty"`
	ItemName          string          `json:"itemName"`
	RentalType        *string         `json:"rentalType,omitempty"`
	StartDate         string          `json:"startDate"` // "2025-10-15"
	EndDate           string          `json:"endDate"`
	Days              int             `json:"days"`
	NumAdults         int             `json:"numAdults"`
	NumChildren       int             `json:"numChildren"`
	NumInfants        int             `json:"numInfants"`
	NumRooms          int             `json:"numRooms,omitempty"`
	Currency          string          `json:"currency"`
	BasePrice         float64         `json:"basePrice"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DepositPercentage float64         `json:"depositPercentage"`
	DepositAmount     decimal.Decimal `json:"depositAmount"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	ValidUntil        string          `json:"validUntil"`
	IsExpired         bool            `json:"isExpired"` // срок действия прошёл, статус ещё не финальный
	Status            string          `json:"status"`
	Notes             *string         `json:"notes,omitempty"`
	CreatedBy         int64           `json:"createdBy"`
	SentAt            *string         `json:"sentAt,omitempty"`
	CreatedAt         string          `json:"createdAt"`
	UpdatedAt         string          `json:"updatedAt"`
}

// QuotationListResponse ответ со списком котировок
type QuotationListResponse struct {
	Quotations []*QuotationResponse `json:"quotations"`
	Total      int                  `json:"total"`
}

// Конвертеры

// ToDomainQuotationStatus конвертирует строку в статус котировки
func ToDomainQuotationStatus(status string) (domain.QuotationStatus, error) {
	for _, s := range domain.QuotationStatuses {
		if string(s) == status {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// FromDomainQuotation конвертирует котировку в ответ
func FromDomainQuotation(q *domain.Quotation, now time.Time) *QuotationResponse {
	resp := &QuotationResponse{
		ID:                q.ID,
		QuotationNumber:   q.QuotationNumber,
		CustomerName:      q.CustomerName,
		CustomerEmail:     q.CustomerEmail,
		CustomerPhone:     q.CustomerPhone,
		ServiceType:       string(q.ServiceType),
		ItemID:            q.ItemID,
		ItemName:          q.ItemName,
		StartDate:         q.StartDate.Format(domain.DateFormat),
		EndDate:           q.EndDate.Format(domain.DateFormat),
		Days:              q.Days,
		NumAdults:         q.NumAdults,
		NumChildren:       q.NumChildren,
		NumInfants:        q.NumInfants,
		NumRooms:          q.NumRooms,
		Currency:          q.Currency,
		BasePrice:         q.BasePrice,
		Subtotal:          q.Subtotal,
		DepositPercentage: q.DepositPercentage,
		DepositAmount:     q.DepositAmount,
		RemainingAmount:   q.RemainingAmount,
		ValidUntil:        q.ValidUntil.Format(time.RFC3339),
		IsExpired:         q.IsExpiredAt(now),
		Status:            string(q.Status),
		Notes:             q.Notes,
		CreatedBy:         q.CreatedBy,
		CreatedAt:         q.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         q.UpdatedAt.Format(time.RFC3339),
	}

	if q.RentalType != nil {
		rt := string(*q.RentalType)
		resp.RentalType = &rt
	}
	if q.SentAt != nil {
		sentAt := q.SentAt.Format(time.RFC3339)
		resp.SentAt = &sentAt
	}

	return resp
}

// FromDomainQuotationList конвертирует список котировок
func FromDomainQuotationList(quotations []*domain.Quotation, now time.Time) *QuotationListResponse {
	result := make([]*QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		result = append(result, FromDomainQuotation(q, now))
	}
	return &QuotationListResponse{Quotations: result, Total: len(result)}
}
