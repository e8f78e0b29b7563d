package reservation

import (
	"strings"
	"sync"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/inventory"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
)

// Registry owns every reservation ever made and keeps the ledger in step with them.
//
// Availability is a flat counter per category: requested dates are only checked
// against today, never against each other.
type Registry struct {
	mu           sync.Mutex
	ledger       *inventory.Ledger
	clock        clock.Clock
	ids          IDGenerator
	reservations []*Reservation
}

func NewRegistry(ledger *inventory.Ledger, clk clock.Clock, ids IDGenerator) *Registry {
	return &Registry{
		ledger: ledger,
		clock:  clk,
		ids:    ids,
	}
}

func (r *Registry) Ledger() *inventory.Ledger {
	return r.ledger
}

// MakeReservation books one unit of category and returns the new reservation id.
// Failures are marked with ErrInvalidArgument, ErrRejectedRequest or ErrNoCarAvailable.
func (r *Registry) MakeReservation(customerID string, category car.Category, startDate time.Time, days int) (string, error) {
	if strings.TrimSpace(customerID) == "" {
		return "", errs.Mark(errs.New("customer id must not be empty"), ErrInvalidArgument)
	}
	if err := r.validateRequest(category, startDate, days); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ledger.Reserve(category) {
		return "", errs.Mark(errs.Newf("no %s available", category), ErrNoCarAvailable)
	}

	id := r.ids.NextID(category)
	r.reservations = append(r.reservations, newReservation(id, customerID, category, startDate, days, r.clock.Now()))
	return id, nil
}

func (r *Registry) validateRequest(category car.Category, startDate time.Time, days int) error {
	if !category.IsValid() {
		return errs.Mark(errs.New("car category is required"), ErrRejectedRequest)
	}
	if startDate.IsZero() {
		return errs.Mark(errs.New("start date is required"), ErrRejectedRequest)
	}
	if days <= 0 {
		return errs.Mark(errs.Newf("days must be positive, got %d", days), ErrRejectedRequest)
	}
	if clock.DateOf(startDate).Before(clock.Today(r.clock)) {
		return errs.Mark(errs.Newf("start date %s is in the past", startDate.Format(time.DateOnly)), ErrRejectedRequest)
	}
	return nil
}

// CancelReservation cancels the first active reservation with id and returns its unit to
// the ledger. Unknown and already cancelled ids both report false.
func (r *Registry) CancelReservation(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.reservations {
		if res.id != id || res.IsCancelled() {
			continue
		}
		res.cancel()
		r.ledger.Release(res.category)
		return true
	}
	return false
}

// CustomerReservations returns copies of every reservation of customerID in creation order.
func (r *Registry) CustomerReservations(customerID string) []Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []Reservation{}
	for _, res := range r.reservations {
		if res.customerID == customerID {
			out = append(out, *res)
		}
	}
	return out
}

func (r *Registry) Find(id string) (Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.reservations {
		if res.id == id {
			return *res, true
		}
	}
	return Reservation{}, false
}
