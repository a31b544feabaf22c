package create_quotation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TourService/internal/pricing"
	"github.com/m04kA/SMC-TourService/pkg/logger"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeQuotationRepo struct {
	created *domain.Quotation
	err     error
}

func (f *fakeQuotationRepo) Create(_ context.Context, q *domain.Quotation) (*domain.Quotation, error) {
	if f.err != nil {
		return nil, f.err
	}
	q.ID = 1
	f.created = q
	return q, nil
}

type fakeCatalog struct {
	packages map[int64]*domain.TourPackage
	vehicles map[int64]*domain.Vehicle
}

func (f *fakeCatalog) GetPackage(_ context.Context, id int64) (*domain.TourPackage, error) {
	if p, ok := f.packages[id]; ok {
		return p, nil
	}
	return nil, catalogRepo.ErrPackageNotFound
}

func (f *fakeCatalog) GetVehicle(_ context.Context, id int64) (*domain.Vehicle, error) {
	if v, ok := f.vehicles[id]; ok {
		return v, nil
	}
	return nil, catalogRepo.ErrVehicleNotFound
}

var now = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func newUseCase(repo *fakeQuotationRepo) *UseCase {
	catalog := &fakeCatalog{
		packages: map[int64]*domain.TourPackage{
			1: {ID: 1, Name: "Cultural Triangle", PricePerPerson: 500, Currency: "USD", IsActive: true},
		},
		vehicles: map[int64]*domain.Vehicle{
			2: {ID: 2, Name: "Toyota Prius", Seats: 3, PricePerDay: 100, Currency: "LKR", IsActive: true},
		},
	}
	uc := NewUseCase(repo, catalog, Settings{
		DefaultDepositPercentage: 30,
		DefaultCurrency:          "USD",
	}, logger.NewNop())
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func baseRequest(st pricing.ServiceType) *Request {
	return &Request{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		ServiceType:   st,
		StartDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		NumAdults:     2,
		CreatedBy:     7,
	}
}

func TestExecute_Tour(t *testing.T) {
	repo := &fakeQuotationRepo{}
	req := baseRequest(pricing.ServiceTour)
	req.ItemID = ptr.Ptr(int64(1))
	req.NumChildren = 1
	req.NumInfants = 2

	q, err := newUseCase(repo).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.QuotationDraft, q.Status)
	assert.Regexp(t, `^QT-20240110-[0-9A-F]{6}$`, q.QuotationNumber)
	assert.Equal(t, "Cultural Triangle", q.ItemName)
	assert.Equal(t, 5, q.Days)
	assert.Equal(t, "1350", q.Subtotal.String())
	assert.Equal(t, "405", q.DepositAmount.String())
	assert.Equal(t, "945", q.RemainingAmount.String())
	assert.Equal(t, 30.0, q.DepositPercentage)
	assert.Equal(t, "USD", q.Currency)
	assert.Equal(t, now.AddDate(0, 0, domain.DefaultQuotationValidityDays), q.ValidUntil)
	assert.Nil(t, q.RentalType)
	assert.Same(t, q, repo.created)
}

func TestExecute_TourWithAccommodation(t *testing.T) {
	req := baseRequest(pricing.ServiceTour)
	req.ItemID = ptr.Ptr(int64(1))
	req.AccommodationLevel = domain.AccommodationDeluxe

	q, err := newUseCase(&fakeQuotationRepo{}).Execute(context.Background(), req)
	require.NoError(t, err)

	// 500 + 50 * 4 ночи = 700 за человека
	assert.Equal(t, 700.0, q.BasePrice)
	assert.Equal(t, "1400", q.Subtotal.String())
}

func TestExecute_VehicleWithDriver(t *testing.T) {
	req := baseRequest(pricing.ServiceVehicle)
	req.ItemID = ptr.Ptr(int64(2))
	req.EndDate = time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	req.WithDriver = true
	req.ValidityDays = 3

	q, err := newUseCase(&fakeQuotationRepo{}).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "450", q.Subtotal.String())
	assert.Equal(t, "LKR", q.Currency)
	require.NotNil(t, q.RentalType)
	assert.Equal(t, pricing.RentalWithDriver, *q.RentalType)
	assert.Equal(t, now.AddDate(0, 0, 3), q.ValidUntil)
}

func TestExecute_TransferForcesSingleDay(t *testing.T) {
	req := baseRequest(pricing.ServiceAirportTransfer)
	req.ItemID = ptr.Ptr(int64(2))

	q, err := newUseCase(&fakeQuotationRepo{}).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, q.Days)
	assert.Equal(t, q.StartDate, q.EndDate)
	assert.Equal(t, "100", q.Subtotal.String())
}

func TestExecute_HotelManualPrice(t *testing.T) {
	req := baseRequest(pricing.ServiceHotel)
	req.ItemName = "Galle Face Hotel"
	req.NumRooms = 2

	q, err := newUseCase(&fakeQuotationRepo{}).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "0", q.Subtotal.String())
	assert.Equal(t, "Galle Face Hotel", q.ItemName)

	req.BasePrice = ptr.Ptr(120.0)
	q, err = newUseCase(&fakeQuotationRepo{}).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "240", q.Subtotal.String())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		repoErr error
		wantErr error
	}{
		{"package not found", func(r *Request) { r.ItemID = ptr.Ptr(int64(99)) }, nil, ErrPackageNotFound},
		{"missing item", func(r *Request) {}, nil, ErrInvalidInput},
		{"bad email", func(r *Request) { r.ItemID = ptr.Ptr(int64(1)); r.CustomerEmail = "nope" }, nil, ErrInvalidInput},
		{"no creator", func(r *Request) { r.ItemID = ptr.Ptr(int64(1)); r.CreatedBy = 0 }, nil, ErrInvalidInput},
		{"end before start", func(r *Request) {
			r.ItemID = ptr.Ptr(int64(1))
			r.EndDate = time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)
		}, nil, pricing.ErrValidation},
		{"deposit out of range", func(r *Request) {
			r.ItemID = ptr.Ptr(int64(1))
			r.DepositPercentage = ptr.Ptr(150.0)
		}, nil, pricing.ErrValidation},
		{"unknown accommodation", func(r *Request) {
			r.ItemID = ptr.Ptr(int64(1))
			r.AccommodationLevel = "palace"
		}, nil, ErrInvalidInput},
		{"repository failure", func(r *Request) { r.ItemID = ptr.Ptr(int64(1)) }, errors.New("db down"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(pricing.ServiceTour)
			tt.mutate(req)

			_, err := newUseCase(&fakeQuotationRepo{err: tt.repoErr}).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
