package domain

// Default configuration values
const (
	DefaultQuotationValidityDays = 14
	DefaultInvoiceDueDays        = 7
	DefaultDepositPercentage     = 30
	DefaultQuotationsLimit       = 50
)

// Business validation constants
const (
	MaxQuotationValidityDays = 180
	MaxNotesLength           = 1000
	MaxCustomerNameLength    = 200
	MaxBulkItems             = 100
	MaxGalleryTitleLength    = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AccommodationSurcharges доплата за ночь по уровню размещения в туре
// Добавляется к цене пакета до расчёта цены тура
var AccommodationSurcharges = map[AccommodationLevel]float64{
	AccommodationStandard: 0,
	AccommodationDeluxe:   50,
	AccommodationLuxury:   100,
	AccommodationPremium:  150,
}

// QuotationStatuses список всех статусов котировки
var QuotationStatuses = []QuotationStatus{
	QuotationDraft,
	QuotationSent,
	QuotationViewed,
	QuotationAccepted,
	QuotationDeclined,
	QuotationExpired,
}
