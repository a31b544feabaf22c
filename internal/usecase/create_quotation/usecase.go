package create_quotation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TourService/internal/pricing"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

// UseCase use case для создания котировки
type UseCase struct {
	quotationRepo QuotationRepository
	catalogRepo   CatalogRepository
	settings      Settings
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	quotationRepo QuotationRepository,
	catalogRepo CatalogRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.ValidityDays <= 0 {
		settings.ValidityDays = domain.DefaultQuotationValidityDays
	}
	return &UseCase{
		quotationRepo: quotationRepo,
		catalogRepo:   catalogRepo,
		settings:      settings,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// resolved базовая цена и описание позиции из каталога
type resolved struct {
	basePrice float64
	itemName  string
	currency  string
}

// Execute выполняет use case создания котировки
// Котировка сохраняется в статусе draft, цены фиксируются на момент создания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Quotation, error) {
	uc.logger.Info("CreateQuotation: service=%s, customer=%s, start=%s, end=%s, by=%d",
		req.ServiceType, req.CustomerEmail, req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat), req.CreatedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateQuotation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Длительность нужна до расчёта цены: доплата за размещение считается по ночам
	duration, err := pricing.ComputeDuration(req.StartDate, req.EndDate, req.ServiceType)
	if err != nil {
		uc.logger.Warn("CreateQuotation: invalid dates: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 3. Базовая цена из каталога
	item, err := uc.resolveItem(ctx, req, duration.Days)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = item.currency
	}
	if currency == "" {
		currency = uc.settings.DefaultCurrency
	}
	deposit := uc.settings.DefaultDepositPercentage
	if req.DepositPercentage != nil {
		deposit = *req.DepositPercentage
	}

	endDate := req.EndDate
	if req.ServiceType.IsTransfer() {
		endDate = req.StartDate
	}

	// 4. Расчёт стоимости
	rentalType := pricing.ResolveRentalType(req.RentalType, req.WithDriver)
	breakdown, err := pricing.ComputePrice(pricing.BookingRequest{
		ServiceType:       req.ServiceType,
		StartDate:         req.StartDate,
		EndDate:           endDate,
		NumAdults:         req.NumAdults,
		NumChildren:       req.NumChildren,
		NumInfants:        req.NumInfants,
		BasePrice:         item.basePrice,
		Currency:          currency,
		DepositPercentage: deposit,
		WithDriver:        req.WithDriver,
		RentalType:        rentalType,
		NumRooms:          req.NumRooms,
	})
	if err != nil {
		uc.logger.Warn("CreateQuotation: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 5. Формируем котировку
	validityDays := uc.settings.ValidityDays
	if req.ValidityDays > 0 {
		validityDays = req.ValidityDays
	}

	q := &domain.Quotation{
		QuotationNumber:   domain.NewDocumentNumber(domain.QuotationNumberPrefix, now),
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		ServiceType:       req.ServiceType,
		ItemID:            req.ItemID,
		ItemName:          item.itemName,
		StartDate:         req.StartDate,
		EndDate:           endDate,
		Days:              breakdown.Days,
		NumAdults:         req.NumAdults,
		NumChildren:       req.NumChildren,
		NumInfants:        req.NumInfants,
		NumRooms:          req.NumRooms,
		Currency:          breakdown.Currency,
		BasePrice:         item.basePrice,
		Subtotal:          breakdown.Subtotal,
		DepositPercentage: deposit,
		DepositAmount:     breakdown.DepositAmount,
		RemainingAmount:   breakdown.RemainingAmount,
		ValidUntil:        now.AddDate(0, 0, validityDays),
		Status:            domain.QuotationDraft,
		Notes:             req.Notes,
		CreatedBy:         req.CreatedBy,
	}
	if req.ServiceType == pricing.ServiceVehicle {
		q.RentalType = ptr.Ptr(rentalType)
	}

	// 6. Сохраняем
	created, err := uc.quotationRepo.Create(ctx, q)
	if err != nil {
		uc.logger.Error("CreateQuotation: failed to create quotation: %v", err)
		return nil, fmt.Errorf("%w: failed to create quotation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateQuotation: created quotation id=%d number=%s subtotal=%s %s",
		created.ID, created.QuotationNumber, created.Subtotal, created.Currency)
	return created, nil
}

// resolveItem определяет базовую цену по типу услуги
//
//	tour      - цена пакета за человека + доплата за размещение за каждую ночь
//	vehicle   - цена автомобиля за день
//	transfers - цена автомобиля за поездку
//	hotel     - только ручная цена, по умолчанию 0
//
// Ручная цена (BasePrice) имеет приоритет над каталогом
func (uc *UseCase) resolveItem(ctx context.Context, req *Request, days int) (resolved, error) {
	var item resolved

	switch {
	case req.ServiceType == pricing.ServiceTour && req.ItemID != nil:
		pkg, err := uc.catalogRepo.GetPackage(ctx, *req.ItemID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrPackageNotFound) {
				uc.logger.Warn("CreateQuotation: package id=%d not found", *req.ItemID)
				return item, ErrPackageNotFound
			}
			uc.logger.Error("CreateQuotation: failed to get package id=%d: %v", *req.ItemID, err)
			return item, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}
		item = resolved{
			basePrice: pkg.PricePerPerson + accommodationSurcharge(req.AccommodationLevel, days),
			itemName:  pkg.Name,
			currency:  pkg.Currency,
		}

	case req.ServiceType != pricing.ServiceHotel && req.ItemID != nil:
		vehicle, err := uc.catalogRepo.GetVehicle(ctx, *req.ItemID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrVehicleNotFound) {
				uc.logger.Warn("CreateQuotation: vehicle id=%d not found", *req.ItemID)
				return item, ErrVehicleNotFound
			}
			uc.logger.Error("CreateQuotation: failed to get vehicle id=%d: %v", *req.ItemID, err)
			return item, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}
		item = resolved{
			basePrice: vehicle.PricePerDay,
			itemName:  vehicle.Name,
			currency:  vehicle.Currency,
		}

	default:
		item.itemName = req.ItemName
	}

	if req.BasePrice != nil {
		item.basePrice = *req.BasePrice
	}
	if req.ItemName != "" {
		item.itemName = req.ItemName
	}

	return item, nil
}

// accommodationSurcharge доплата за уровень размещения: за ночь, ночей = дней - 1
func accommodationSurcharge(level domain.AccommodationLevel, days int) float64 {
	nights := days - 1
	if nights < 1 {
		return 0
	}
	return domain.AccommodationSurcharges[level] * float64(nights)
}
