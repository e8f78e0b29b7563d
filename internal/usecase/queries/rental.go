package queries

//go:generate mockgen -source=rental.go -destination=../../../tests/mock/queries/rental.go -package=queriesmock

import (
	"context"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/inventory"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/errs"
)

type FleetReadStore interface {
	Availability(category car.Category) inventory.Availability
	Snapshot() []inventory.Availability
}

type ReservationReadStore interface {
	Find(id string) (reservation.Reservation, bool)
	CustomerReservations(customerID string) []reservation.Reservation
}

type RentalQueries interface {
	Fleet(ctx context.Context) ([]*FleetView, error)
	CategoryAvailability(ctx context.Context, category car.Category) (*FleetView, error)
	GetReservation(ctx context.Context, id string) (*ReservationView, error)
	CustomerReservations(ctx context.Context, customerID string) ([]*ReservationView, error)
}

type rentalQueriesImpl struct {
	fleet        FleetReadStore
	reservations ReservationReadStore
}

func NewRentalQueries(fleet FleetReadStore, reservations ReservationReadStore) RentalQueries {
	return &rentalQueriesImpl{fleet: fleet, reservations: reservations}
}

func (q *rentalQueriesImpl) Fleet(_ context.Context) ([]*FleetView, error) {
	snapshot := q.fleet.Snapshot()
	views := make([]*FleetView, len(snapshot))
	for i, a := range snapshot {
		views[i] = toFleetView(a)
	}
	return views, nil
}

func (q *rentalQueriesImpl) CategoryAvailability(_ context.Context, category car.Category) (*FleetView, error) {
	if !category.IsValid() {
		return nil, errs.ErrUnknownCategory
	}
	return toFleetView(q.fleet.Availability(category)), nil
}

func (q *rentalQueriesImpl) GetReservation(_ context.Context, id string) (*ReservationView, error) {
	res, ok := q.reservations.Find(id)
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	return toReservationView(&res), nil
}

func (q *rentalQueriesImpl) CustomerReservations(_ context.Context, customerID string) ([]*ReservationView, error) {
	list := q.reservations.CustomerReservations(customerID)
	views := make([]*ReservationView, len(list))
	for i := range list {
		views[i] = toReservationView(&list[i])
	}
	return views, nil
}

func toFleetView(a inventory.Availability) *FleetView {
	return &FleetView{
		Category:  a.Category.String(),
		Code:      a.Category.Code(),
		Total:     a.Total,
		Available: a.Available,
		Reserved:  a.Total - a.Available,
	}
}

func toReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:           r.ID(),
		CustomerID:   r.CustomerID(),
		Category:     r.Category().String(),
		CategoryCode: r.Category().Code(),
		StartDate:    r.StartDate().Format(time.DateOnly),
		EndDate:      r.EndDate().Format(time.DateOnly),
		Days:         r.Days(),
		Status:       r.Status().String(),
		CreatedAt:    r.CreatedAt(),
	}
}
