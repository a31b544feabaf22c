package airport_pickup_price

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TourService/internal/pricing"
	"github.com/m04kA/SMC-TourService/pkg/logger"
)

type fakeCatalog struct {
	vehicles map[int64]*domain.Vehicle
	err      error
}

func (f *fakeCatalog) GetVehicle(_ context.Context, id int64) (*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.vehicles[id]
	if !ok {
		return nil, catalogRepo.ErrVehicleNotFound
	}
	return v, nil
}

func newUseCase(f *fakeCatalog) *UseCase {
	return NewUseCase(f, 50, logger.NewNop())
}

func van() *domain.Vehicle {
	return &domain.Vehicle{ID: 3, Name: "Toyota KDH", Seats: 9, PricePerDay: 100, Currency: "USD", IsActive: true}
}

func TestExecute_TwoWayWithSurcharge(t *testing.T) {
	uc := newUseCase(&fakeCatalog{vehicles: map[int64]*domain.Vehicle{3: van()}})

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID:  3,
		TripType:   pricing.TripTwoWay,
		Passengers: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Days)
	assert.Equal(t, "220", resp.Subtotal.String())
	assert.Equal(t, "110", resp.DepositAmount.String())
	assert.Equal(t, "110", resp.RemainingAmount.String())
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, "Toyota KDH", resp.VehicleName)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog *fakeCatalog
		req     Request
		wantErr error
	}{
		{
			name:    "vehicle not found",
			catalog: &fakeCatalog{},
			req:     Request{VehicleID: 42, TripType: pricing.TripOneWay, Passengers: 2},
			wantErr: ErrVehicleNotFound,
		},
		{
			name:    "repository failure",
			catalog: &fakeCatalog{err: errors.New("db down")},
			req:     Request{VehicleID: 3, TripType: pricing.TripOneWay, Passengers: 2},
			wantErr: ErrInternal,
		},
		{
			name:    "not enough seats",
			catalog: &fakeCatalog{vehicles: map[int64]*domain.Vehicle{3: van()}},
			req:     Request{VehicleID: 3, TripType: pricing.TripOneWay, Passengers: 12},
			wantErr: ErrTooManyPassengers,
		},
		{
			name:    "unknown trip type",
			catalog: &fakeCatalog{vehicles: map[int64]*domain.Vehicle{3: van()}},
			req:     Request{VehicleID: 3, TripType: "round", Passengers: 2},
			wantErr: pricing.ErrValidation,
		},
		{
			name:    "zero passengers",
			catalog: &fakeCatalog{vehicles: map[int64]*domain.Vehicle{3: van()}},
			req:     Request{VehicleID: 3, TripType: pricing.TripOneWay},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad vehicle id",
			catalog: &fakeCatalog{},
			req:     Request{TripType: pricing.TripOneWay, Passengers: 1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(tt.catalog).Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
