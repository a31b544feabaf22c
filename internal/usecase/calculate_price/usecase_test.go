package calculate_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/pricing"
	"github.com/m04kA/SMC-TourService/pkg/logger"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

func TestExecute_AppliesDefaults(t *testing.T) {
	uc := NewUseCase(30, "USD", logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: pricing.ServiceTour,
		StartDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		NumAdults:   2,
		NumChildren: 1,
		NumInfants:  2,
		BasePrice:   500,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Days)
	assert.Equal(t, "1350", resp.Subtotal.String())
	assert.Equal(t, "405", resp.DepositAmount.String())
	assert.Equal(t, "945", resp.RemainingAmount.String())
	assert.Equal(t, "USD", resp.Currency)
}

func TestExecute_ExplicitZeroDeposit(t *testing.T) {
	uc := NewUseCase(30, "USD", logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType:       pricing.ServiceAirportTransfer,
		StartDate:         time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		BasePrice:         60,
		Currency:          "EUR",
		DepositPercentage: ptr.Ptr(0.0),
	})
	require.NoError(t, err)

	assert.Equal(t, "0", resp.DepositAmount.String())
	assert.Equal(t, "60", resp.RemainingAmount.String())
	assert.Equal(t, "EUR", resp.Currency)
}

func TestExecute_ValidationError(t *testing.T) {
	uc := NewUseCase(30, "USD", logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: pricing.ServiceTour,
		StartDate:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		NumAdults:   1,
		BasePrice:   100,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, pricing.ErrValidation)

	var vErr *pricing.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "endDate", vErr.Field)
}
