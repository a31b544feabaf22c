package create_quotation

import (
	"fmt"
	"net/mail"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// validateRequest валидирует поля, которые не проверяет калькулятор
func validateRequest(req *Request) error {
	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}
	if req.CustomerName == "" || len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customerEmail: %v", ErrInvalidInput, err)
	}
	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown serviceType %q", ErrInvalidInput, req.ServiceType)
	}

	// Для всех услуг, кроме гостиницы, цена берётся из каталога
	if req.ServiceType != pricing.ServiceHotel && req.ItemID == nil && req.BasePrice == nil {
		return fmt.Errorf("%w: itemId is required for %s", ErrInvalidInput, req.ServiceType)
	}
	if req.ItemID != nil && *req.ItemID <= 0 {
		return fmt.Errorf("%w: itemId must be positive", ErrInvalidInput)
	}

	if req.AccommodationLevel != "" {
		if _, ok := domain.AccommodationSurcharges[req.AccommodationLevel]; !ok {
			return fmt.Errorf("%w: unknown accommodationLevel %q", ErrInvalidInput, req.AccommodationLevel)
		}
	}
	if req.ValidityDays < 0 || req.ValidityDays > domain.MaxQuotationValidityDays {
		return fmt.Errorf("%w: validityDays must be in [0, %d]", ErrInvalidInput, domain.MaxQuotationValidityDays)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
