package pricing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputePrice_Tour(t *testing.T) {
	req := BookingRequest{
		ServiceType:       ServiceTour,
		StartDate:         date(2024, 2, 1),
		EndDate:           date(2024, 2, 5),
		NumAdults:         2,
		NumChildren:       1,
		NumInfants:        2,
		BasePrice:         500,
		Currency:          "USD",
		DepositPercentage: 30,
	}

	got, err := ComputePrice(req)
	require.NoError(t, err)

	assert.Equal(t, 5, got.Days)
	assertMoney(t, "1350", got.Subtotal)
	assertMoney(t, "405", got.DepositAmount)
	assertMoney(t, "945", got.RemainingAmount)
	assert.True(t, got.Subtotal.Equal(got.DepositAmount.Add(got.RemainingAmount)))
	assert.Equal(t, "USD", got.Currency)
}

func TestComputePrice_TourRequiresAdult(t *testing.T) {
	_, err := ComputePrice(BookingRequest{
		ServiceType: ServiceTour,
		StartDate:   date(2024, 2, 1),
		EndDate:     date(2024, 2, 1),
		NumChildren: 2,
		BasePrice:   100,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputePrice_Vehicle(t *testing.T) {
	tests := []struct {
		name       string
		rentalType RentalType
		withDriver bool
		adults     int
		want       string
	}{
		{"self drive", RentalSelfDrive, false, 0, "300"},
		{"with driver", RentalWithDriver, false, 1, "450"},
		{"with driver flag", "", true, 2, "450"},
		{"tour rental", RentalTour, false, 3, "600"},
		{"default is self drive", "", false, 0, "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePrice(BookingRequest{
				ServiceType: ServiceVehicle,
				StartDate:   date(2024, 2, 1),
				EndDate:     date(2024, 2, 3),
				NumAdults:   tt.adults,
				BasePrice:   100,
				Currency:    "LKR",
				WithDriver:  tt.withDriver,
				RentalType:  tt.rentalType,
			})
			require.NoError(t, err)
			assert.Equal(t, 3, got.Days)
			assertMoney(t, tt.want, got.Subtotal)
		})
	}
}

func TestComputePrice_VehicleWithDriverRequiresAdult(t *testing.T) {
	_, err := ComputePrice(BookingRequest{
		ServiceType: ServiceVehicle,
		StartDate:   date(2024, 2, 1),
		EndDate:     date(2024, 2, 3),
		BasePrice:   100,
		RentalType:  RentalWithDriver,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputePrice_UnknownRentalType(t *testing.T) {
	_, err := ComputePrice(BookingRequest{
		ServiceType: ServiceVehicle,
		StartDate:   date(2024, 2, 1),
		EndDate:     date(2024, 2, 3),
		BasePrice:   100,
		RentalType:  "chauffeur",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputePrice_Hotel(t *testing.T) {
	got, err := ComputePrice(BookingRequest{
		ServiceType: ServiceHotel,
		StartDate:   date(2024, 2, 1),
		EndDate:     date(2024, 2, 4),
		BasePrice:   80,
		NumRooms:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Days)
	assertMoney(t, "160", got.Subtotal)

	// цена гостиницы задается вручную, 0 - допустимо
	got, err = ComputePrice(BookingRequest{
		ServiceType: ServiceHotel,
		StartDate:   date(2024, 2, 1),
		EndDate:     date(2024, 2, 4),
		NumRooms:    1,
	})
	require.NoError(t, err)
	assertMoney(t, "0", got.Subtotal)

	_, err = ComputePrice(BookingRequest{
		ServiceType: ServiceHotel,
		StartDate:   date(2024, 2, 1),
		EndDate:     date(2024, 2, 4),
		BasePrice:   80,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputePrice_TransferIsFlat(t *testing.T) {
	for _, st := range []ServiceType{ServiceAirportTransfer, ServiceAllIslandTransfer} {
		got, err := ComputePrice(BookingRequest{
			ServiceType:       st,
			StartDate:         date(2024, 2, 1),
			EndDate:           date(2024, 2, 9),
			NumAdults:         5,
			BasePrice:         75.5,
			DepositPercentage: 100,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Days)
		assertMoney(t, "75.5", got.Subtotal)
		assertMoney(t, "75.5", got.DepositAmount)
		assertMoney(t, "0", got.RemainingAmount)
	}
}

func TestComputePrice_Validation(t *testing.T) {
	valid := BookingRequest{
		ServiceType:       ServiceTour,
		StartDate:         date(2024, 2, 1),
		EndDate:           date(2024, 2, 2),
		NumAdults:         1,
		BasePrice:         100,
		DepositPercentage: 20,
	}

	tests := []struct {
		name   string
		mutate func(r *BookingRequest)
		field  string
	}{
		{"negative base price", func(r *BookingRequest) { r.BasePrice = -1 }, "basePrice"},
		{"no adults", func(r *BookingRequest) { r.NumAdults = 0 }, "numAdults"},
		{"deposit below zero", func(r *BookingRequest) { r.DepositPercentage = -0.5 }, "depositPercentage"},
		{"deposit above hundred", func(r *BookingRequest) { r.DepositPercentage = 100.1 }, "depositPercentage"},
		{"deposit NaN", func(r *BookingRequest) { r.DepositPercentage = math.NaN() }, "depositPercentage"},
		{"deposit +Inf", func(r *BookingRequest) { r.DepositPercentage = math.Inf(1) }, "depositPercentage"},
		{"base price NaN", func(r *BookingRequest) { r.BasePrice = math.NaN() }, "basePrice"},
		{"base price +Inf", func(r *BookingRequest) { r.BasePrice = math.Inf(1) }, "basePrice"},
		{"base price -Inf", func(r *BookingRequest) { r.BasePrice = math.Inf(-1) }, "basePrice"},
		{"transfer with NaN deposit", func(r *BookingRequest) {
			r.ServiceType = ServiceAirportTransfer
			r.DepositPercentage = math.NaN()
		}, "depositPercentage"},
		{"negative children", func(r *BookingRequest) { r.NumChildren = -1 }, "numChildren"},
		{"negative infants", func(r *BookingRequest) { r.NumInfants = -1 }, "numInfants"},
		{"end before start", func(r *BookingRequest) { r.EndDate = date(2024, 1, 31) }, "endDate"},
		{"unknown service", func(r *BookingRequest) { r.ServiceType = "cruise" }, "serviceType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			_, err := ComputePrice(req)
			require.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestComputePrice_Idempotent(t *testing.T) {
	req := BookingRequest{
		ServiceType:       ServiceVehicle,
		StartDate:         date(2024, 7, 1),
		EndDate:           date(2024, 7, 10),
		NumAdults:         2,
		BasePrice:         47.35,
		Currency:          "EUR",
		DepositPercentage: 25,
		WithDriver:        true,
	}

	first, err := ComputePrice(req)
	require.NoError(t, err)
	second, err := ComputePrice(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputePrice_DepositPlusRemainingEqualsSubtotal(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	types := []ServiceType{ServiceTour, ServiceVehicle, ServiceHotel, ServiceAirportTransfer}

	for i := 0; i < 5000; i++ {
		req := BookingRequest{
			ServiceType:       types[rnd.Intn(len(types))],
			StartDate:         date(2024, 1, 1),
			EndDate:           date(2024, 1, 1+rnd.Intn(20)),
			NumAdults:         1 + rnd.Intn(6),
			NumChildren:       rnd.Intn(4),
			NumRooms:          1 + rnd.Intn(3),
			BasePrice:         float64(rnd.Intn(500000)) / 100,
			DepositPercentage: float64(rnd.Intn(10001)) / 100,
			WithDriver:        rnd.Intn(2) == 0,
		}

		got, err := ComputePrice(req)
		require.NoError(t, err)
		require.Truef(t, got.Subtotal.Equal(got.DepositAmount.Add(got.RemainingAmount)),
			"base=%v pct=%v: %s != %s + %s", req.BasePrice, req.DepositPercentage,
			got.Subtotal, got.DepositAmount, got.RemainingAmount)
		require.LessOrEqual(t, got.DepositAmount.Exponent(), int32(0))
		require.GreaterOrEqual(t, got.DepositAmount.Exponent(), int32(-2))
	}
}

func TestSplitDeposit_RoundsHalfUp(t *testing.T) {
	got, err := SplitDeposit(10.05, 50, "USD")
	require.NoError(t, err)
	assertMoney(t, "5.03", got.DepositAmount)
	assertMoney(t, "5.02", got.RemainingAmount)

	got, err = SplitDeposit(100, 33.333, "USD")
	require.NoError(t, err)
	assertMoney(t, "33.33", got.DepositAmount)
	assertMoney(t, "66.67", got.RemainingAmount)

	_, err = SplitDeposit(100, 101, "USD")
	assert.ErrorIs(t, err, ErrValidation)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = SplitDeposit(bad, 30, "USD")
		assert.ErrorIs(t, err, ErrValidation)
		_, err = SplitDeposit(100, bad, "USD")
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestRentalPricingPolicy(t *testing.T) {
	got, err := DefaultRentalPricingPolicy.Subtotal(100, 3, RentalWithDriver)
	require.NoError(t, err)
	assertMoney(t, "450", got)

	_, err = DefaultRentalPricingPolicy.Subtotal(100, 0, RentalSelfDrive)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = DefaultRentalPricingPolicy.Subtotal(math.NaN(), 1, RentalSelfDrive)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTransferPricingPolicy(t *testing.T) {
	tests := []struct {
		name       string
		tripType   TripType
		passengers int
		want       string
	}{
		{"two way with surcharge", TripTwoWay, 6, "220"},
		{"one way within included", TripOneWay, 4, "100"},
		{"one way with surcharge", TripOneWay, 5, "110"},
		{"two way single passenger", TripTwoWay, 1, "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultTransferPricingPolicy.Subtotal(100, tt.tripType, tt.passengers)
			require.NoError(t, err)
			assertMoney(t, tt.want, got)
		})
	}

	_, err := DefaultTransferPricingPolicy.Subtotal(100, "round", 2)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = DefaultTransferPricingPolicy.Subtotal(100, TripOneWay, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTwoPoliciesStayDistinct(t *testing.T) {
	// один и тот же автомобиль за 100, 1 день, 6 пассажиров
	rental, err := DefaultRentalPricingPolicy.Subtotal(100, 1, RentalWithDriver)
	require.NoError(t, err)
	transfer, err := DefaultTransferPricingPolicy.Subtotal(100, TripTwoWay, 6)
	require.NoError(t, err)

	assertMoney(t, "150", rental)
	assertMoney(t, "220", transfer)
}

func TestComputeTransferPrice(t *testing.T) {
	got, err := ComputeTransferPrice(TransferRequest{
		VehicleBasePrice:  100,
		TripType:          TripTwoWay,
		Passengers:        6,
		Currency:          "USD",
		DepositPercentage: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Days)
	assertMoney(t, "220", got.Subtotal)
	assertMoney(t, "110", got.DepositAmount)
	assertMoney(t, "110", got.RemainingAmount)
	assert.Equal(t, "USD", got.Currency)
}

func TestComputeTransferPrice_NonFinite(t *testing.T) {
	tests := []struct {
		name  string
		req   TransferRequest
		field string
	}{
		{"NaN vehicle price", TransferRequest{VehicleBasePrice: math.NaN(), TripType: TripOneWay, Passengers: 1}, "basePrice"},
		{"+Inf vehicle price", TransferRequest{VehicleBasePrice: math.Inf(1), TripType: TripOneWay, Passengers: 1}, "basePrice"},
		{"NaN deposit", TransferRequest{VehicleBasePrice: 100, TripType: TripOneWay, Passengers: 1, DepositPercentage: math.NaN()}, "depositPercentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTransferPrice(tt.req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
