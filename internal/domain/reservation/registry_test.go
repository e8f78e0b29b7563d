//go:build unit

package reservation_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/inventory"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2025, 12, 1, 9, 30, 0, 0, time.UTC)

type RegistryTestSuite struct {
	suite.Suite
	clock    *clock.MockClock
	ledger   *inventory.Ledger
	registry *reservation.Registry
	today    time.Time
	tomorrow time.Time
}

func (s *RegistryTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(now)
	s.ledger = inventory.NewLedger()
	s.ledger.AddCars(car.CategorySedan, 2)
	s.ledger.AddCars(car.CategorySUV, 1)
	s.ledger.AddCars(car.CategoryVan, 1)
	s.registry = reservation.NewRegistry(s.ledger, s.clock, reservation.NewSequenceGenerator())
	s.today = clock.Today(s.clock)
	s.tomorrow = s.today.AddDate(0, 0, 1)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

// ================================================================================
// MakeReservation
// ================================================================================

func (s *RegistryTestSuite) TestMakeReservation_EachCategory() {
	for _, c := range car.Categories() {
		id, err := s.registry.MakeReservation("CUST001", c, s.tomorrow, 3)
		s.Require().NoError(err, c.String())
		s.NotEmpty(id)
	}
}

func (s *RegistryTestSuite) TestMakeReservation_RecordsActiveReservation() {
	before := s.ledger.AvailableCount(car.CategorySedan)

	id, err := s.registry.MakeReservation("CUST001", car.CategorySedan, s.tomorrow, 3)
	s.Require().NoError(err)

	s.Equal(before-1, s.ledger.AvailableCount(car.CategorySedan))
	s.Equal(2, s.ledger.TotalCount(car.CategorySedan))

	got, ok := s.registry.Find(id)
	s.Require().True(ok)
	s.Equal(id, got.ID())
	s.Equal("CUST001", got.CustomerID())
	s.Equal(car.CategorySedan, got.Category())
	s.Equal(s.tomorrow, got.StartDate())
	s.Equal(3, got.Days())
	s.Equal(s.tomorrow.AddDate(0, 0, 3), got.EndDate())
	s.Equal(reservation.StatusActive, got.Status())
	s.True(got.IsActive())
	s.Equal(now, got.CreatedAt())
}

func (s *RegistryTestSuite) TestMakeReservation_StartingTodayOK() {
	_, err := s.registry.MakeReservation("CUST001", car.CategoryVan, s.today, 1)
	s.NoError(err)
}

func (s *RegistryTestSuite) TestMakeReservation_Validation() {
	cases := []struct {
		name       string
		customerID string
		category   car.Category
		startDate  time.Time
		days       int
		errIs      error
	}{
		{name: "empty customer id", customerID: "", category: car.CategorySedan, startDate: s.tomorrow, days: 3, errIs: reservation.ErrInvalidArgument},
		{name: "blank customer id", customerID: "   ", category: car.CategorySedan, startDate: s.tomorrow, days: 3, errIs: reservation.ErrInvalidArgument},
		{name: "empty customer id wins over other problems", customerID: "", category: car.CategoryUnknown, startDate: time.Time{}, days: 0, errIs: reservation.ErrInvalidArgument},
		{name: "missing category", customerID: "C1", category: car.CategoryUnknown, startDate: s.tomorrow, days: 3, errIs: reservation.ErrRejectedRequest},
		{name: "out of range category", customerID: "C1", category: car.Category(99), startDate: s.tomorrow, days: 3, errIs: reservation.ErrRejectedRequest},
		{name: "missing start date", customerID: "C1", category: car.CategorySedan, startDate: time.Time{}, days: 3, errIs: reservation.ErrRejectedRequest},
		{name: "start date yesterday", customerID: "C1", category: car.CategorySedan, startDate: s.today.AddDate(0, 0, -1), days: 3, errIs: reservation.ErrRejectedRequest},
		{name: "zero days", customerID: "C1", category: car.CategorySedan, startDate: s.tomorrow, days: 0, errIs: reservation.ErrRejectedRequest},
		{name: "negative days", customerID: "C1", category: car.CategorySedan, startDate: s.tomorrow, days: -1, errIs: reservation.ErrRejectedRequest},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			id, err := s.registry.MakeReservation(c.customerID, c.category, c.startDate, c.days)

			s.Require().Error(err)
			s.ErrorIs(err, c.errIs)
			s.NotErrorIs(err, reservation.ErrNoCarAvailable)
			s.Empty(id)
			s.Equal(2, s.ledger.AvailableCount(car.CategorySedan))
		})
	}
}

func (s *RegistryTestSuite) TestMakeReservation_InvalidArgumentAndRejectedAreDistinct() {
	_, err := s.registry.MakeReservation("", car.CategorySedan, s.tomorrow, 3)
	s.NotErrorIs(err, reservation.ErrRejectedRequest)

	_, err = s.registry.MakeReservation("C1", car.CategorySedan, s.tomorrow, 0)
	s.NotErrorIs(err, reservation.ErrInvalidArgument)
}

func (s *RegistryTestSuite) TestMakeReservation_NoCarAvailable() {
	_, err := s.registry.MakeReservation("CUST001", car.CategorySUV, s.tomorrow, 3)
	s.Require().NoError(err)
	s.Zero(s.ledger.AvailableCount(car.CategorySUV))

	_, err = s.registry.MakeReservation("CUST002", car.CategorySUV, s.tomorrow, 3)
	s.ErrorIs(err, reservation.ErrNoCarAvailable)
	s.NotErrorIs(err, reservation.ErrRejectedRequest)
	s.Len(s.registry.CustomerReservations("CUST002"), 0)

	// Dates far apart from the existing booking are refused the same way.
	_, err = s.registry.MakeReservation("CUST002", car.CategorySUV, s.tomorrow.AddDate(1, 0, 0), 1)
	s.ErrorIs(err, reservation.ErrNoCarAvailable)
}

func (s *RegistryTestSuite) TestMakeReservation_EmptyCategory() {
	ledger := inventory.NewLedger()
	registry := reservation.NewRegistry(ledger, s.clock, reservation.NewSequenceGenerator())

	_, err := registry.MakeReservation("CUST001", car.CategorySedan, s.tomorrow, 1)
	s.ErrorIs(err, reservation.ErrNoCarAvailable)
}

func (s *RegistryTestSuite) TestMakeReservation_OverlappingDatesAccepted() {
	_, err := s.registry.MakeReservation("A", car.CategorySedan, s.tomorrow, 5)
	s.Require().NoError(err)
	_, err = s.registry.MakeReservation("B", car.CategorySedan, s.tomorrow.AddDate(0, 0, 2), 5)
	s.Require().NoError(err)

	s.Zero(s.ledger.AvailableCount(car.CategorySedan))
}

func (s *RegistryTestSuite) TestMakeReservation_UniqueIDs() {
	s.ledger.AddCars(car.CategoryVan, 100)

	seen := map[string]bool{}
	for range 100 {
		id, err := s.registry.MakeReservation("CUST001", car.CategoryVan, s.tomorrow, 1)
		s.Require().NoError(err)
		s.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

// ================================================================================
// CancelReservation
// ================================================================================

func (s *RegistryTestSuite) TestCancelReservation() {
	id, err := s.registry.MakeReservation("CUST001", car.CategorySedan, s.tomorrow, 3)
	s.Require().NoError(err)
	s.Equal(1, s.ledger.AvailableCount(car.CategorySedan))

	s.True(s.registry.CancelReservation(id))
	s.Equal(2, s.ledger.AvailableCount(car.CategorySedan))

	got, ok := s.registry.Find(id)
	s.Require().True(ok)
	s.True(got.IsCancelled())
	s.Equal(reservation.StatusCancelled, got.Status())
}

func (s *RegistryTestSuite) TestCancelReservation_Twice() {
	id, err := s.registry.MakeReservation("CUST001", car.CategorySUV, s.tomorrow, 3)
	s.Require().NoError(err)

	s.True(s.registry.CancelReservation(id))
	s.False(s.registry.CancelReservation(id))
	s.Equal(1, s.ledger.AvailableCount(car.CategorySUV))
	s.Equal(1, s.ledger.TotalCount(car.CategorySUV))
}

func (s *RegistryTestSuite) TestCancelReservation_UnknownID() {
	_, err := s.registry.MakeReservation("CUST001", car.CategorySUV, s.tomorrow, 3)
	s.Require().NoError(err)

	s.False(s.registry.CancelReservation("RES-DOES-NOT-EXIST"))
	s.False(s.registry.CancelReservation(""))
	s.Zero(s.ledger.AvailableCount(car.CategorySUV))
}

// ================================================================================
// CustomerReservations
// ================================================================================

func (s *RegistryTestSuite) TestCustomerReservations() {
	first, err := s.registry.MakeReservation("CUST001", car.CategorySedan, s.tomorrow, 3)
	s.Require().NoError(err)
	_, err = s.registry.MakeReservation("CUST002", car.CategorySedan, s.tomorrow, 2)
	s.Require().NoError(err)
	second, err := s.registry.MakeReservation("CUST001", car.CategoryVan, s.tomorrow.AddDate(0, 0, 4), 2)
	s.Require().NoError(err)
	s.Require().True(s.registry.CancelReservation(first))

	got := s.registry.CustomerReservations("CUST001")
	s.Require().Len(got, 2)
	s.Equal(first, got[0].ID())
	s.True(got[0].IsCancelled())
	s.Equal(second, got[1].ID())
	s.True(got[1].IsActive())
	for _, r := range got {
		s.Equal("CUST001", r.CustomerID())
	}

	s.Empty(s.registry.CustomerReservations("NOBODY"))
}

func (s *RegistryTestSuite) TestCustomerReservations_IsSnapshot() {
	id, err := s.registry.MakeReservation("CUST001", car.CategorySedan, s.tomorrow, 3)
	s.Require().NoError(err)

	before := s.registry.CustomerReservations("CUST001")
	s.Require().True(s.registry.CancelReservation(id))

	s.True(before[0].IsActive())
	s.True(s.registry.CustomerReservations("CUST001")[0].IsCancelled())
}

// ================================================================================
// Scenarios
// ================================================================================

func (s *RegistryTestSuite) TestRentalFlow() {
	s.Equal(1, s.ledger.TotalCount(car.CategorySUV))
	s.Equal(1, s.ledger.AvailableCount(car.CategorySUV))

	dec10 := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	dec14 := time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)

	resA, err := s.registry.MakeReservation("customerA", car.CategorySUV, dec10, 8)
	s.Require().NoError(err, "customer A should get the SUV")
	s.Zero(s.ledger.AvailableCount(car.CategorySUV))

	_, err = s.registry.MakeReservation("customerB", car.CategorySUV, dec14, 7)
	s.ErrorIs(err, reservation.ErrNoCarAvailable)

	s.True(s.registry.CancelReservation(resA))
	s.Equal(1, s.ledger.AvailableCount(car.CategorySUV))

	_, err = s.registry.MakeReservation("customerB", car.CategorySUV, dec14, 7)
	s.Require().NoError(err, "customer B should succeed now")
	s.Zero(s.ledger.AvailableCount(car.CategorySUV))

	// A's original dates only overlap B's, yet the counter alone decides.
	_, err = s.registry.MakeReservation("customerA", car.CategorySUV, dec10, 8)
	s.ErrorIs(err, reservation.ErrNoCarAvailable)
}

func (s *RegistryTestSuite) TestAvailableNeverExceedsTotal() {
	var ids []string
	for range 3 {
		id, err := s.registry.MakeReservation("CUST001", car.CategorySedan, s.tomorrow, 1)
		if err == nil {
			ids = append(ids, id)
		}
		s.assertLedgerInvariant()
	}
	for _, id := range append(ids, ids...) {
		s.registry.CancelReservation(id)
		s.assertLedgerInvariant()
	}
	s.Equal(2, s.ledger.AvailableCount(car.CategorySedan))
}

func (s *RegistryTestSuite) assertLedgerInvariant() {
	for _, c := range car.Categories() {
		s.LessOrEqual(s.ledger.AvailableCount(c), s.ledger.TotalCount(c), c.String())
		s.GreaterOrEqual(s.ledger.AvailableCount(c), 0, c.String())
	}
}

func TestRegistry_ConcurrentReservationsDoNotOversell(t *testing.T) {
	ledger := inventory.NewLedger()
	ledger.AddCars(car.CategoryVan, 5)
	registry := reservation.NewRegistry(ledger, clock.NewMockClock(now), reservation.NewUUIDGenerator())
	start := clock.DateOf(now).AddDate(0, 0, 1)

	var wg sync.WaitGroup
	results := make(chan error, 40)
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := registry.MakeReservation(fmt.Sprintf("CUST%03d", i), car.CategoryVan, start, 2)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, full int
	for err := range results {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, reservation.ErrNoCarAvailable)
			full++
		}
	}

	assert.Equal(t, 5, ok)
	assert.Equal(t, 35, full)
	assert.Zero(t, ledger.AvailableCount(car.CategoryVan))
}

func TestMakeReservation_KindsWithStandardErrorsIs(t *testing.T) {
	clk := clock.NewMockClock(now)
	tomorrow := clock.Today(clk).AddDate(0, 0, 1)
	kinds := []error{reservation.ErrInvalidArgument, reservation.ErrRejectedRequest, reservation.ErrNoCarAvailable}

	cases := []struct {
		name       string
		customerID string
		days       int
		fleet      int
		want       error
	}{
		{name: "empty customer id", customerID: "", days: 3, fleet: 1, want: reservation.ErrInvalidArgument},
		{name: "zero days", customerID: "C1", days: 0, fleet: 1, want: reservation.ErrRejectedRequest},
		{name: "empty ledger", customerID: "C1", days: 3, fleet: 0, want: reservation.ErrNoCarAvailable},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ledger := inventory.NewLedger()
			ledger.AddCars(car.CategorySedan, c.fleet)
			registry := reservation.NewRegistry(ledger, clk, reservation.NewSequenceGenerator())

			_, err := registry.MakeReservation(c.customerID, car.CategorySedan, tomorrow, c.days)
			require.Error(t, err)

			for _, kind := range kinds {
				assert.Equal(t, kind == c.want, errors.Is(err, kind), "errors.Is(%v, %v)", err, kind)
			}

			wrapped := fmt.Errorf("caller: %w", err)
			assert.True(t, errors.Is(wrapped, c.want))
		})
	}
}

func TestReservation_String(t *testing.T) {
	clk := clock.NewMockClock(now)
	ledger := inventory.NewLedger()
	ledger.AddCars(car.CategoryVan, 1)
	registry := reservation.NewRegistry(ledger, clk, reservation.NewSequenceGenerator())

	id, err := registry.MakeReservation("CUST001", car.CategoryVan, time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), 2)
	require.NoError(t, err)
	require.True(t, registry.CancelReservation(id))

	got, ok := registry.Find(id)
	require.True(t, ok)
	assert.Equal(t,
		"Reservation[id=RES-VAN-000001, customer=CUST001, category=Van, start=2025-12-24, days=2, status=cancelled]",
		got.String())
	assert.Same(t, ledger, registry.Ledger())
}
