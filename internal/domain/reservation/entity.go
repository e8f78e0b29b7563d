package reservation

import (
	"fmt"
	"time"

	"car-rental/internal/domain/car"
)

type Reservation struct {
	id         string
	customerID string
	category   car.Category
	startDate  time.Time
	days       int
	status     Status
	createdAt  time.Time
}

func newReservation(id, customerID string, category car.Category, startDate time.Time, days int, createdAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		category:   category,
		startDate:  startDate,
		days:       days,
		status:     StatusActive,
		createdAt:  createdAt,
	}
}

// cancel moves an active reservation to cancelled and reports whether it did.
func (r *Reservation) cancel() bool {
	if r.status == StatusCancelled {
		return false
	}
	r.status = StatusCancelled
	return true
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// EndDate is the first day after the rental period.
func (r *Reservation) EndDate() time.Time {
	return r.startDate.AddDate(0, 0, r.days)
}

func (r *Reservation) ID() string             { return r.id }
func (r *Reservation) CustomerID() string     { return r.customerID }
func (r *Reservation) Category() car.Category { return r.category }
func (r *Reservation) StartDate() time.Time   { return r.startDate }
func (r *Reservation) Days() int              { return r.days }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }

func (r Reservation) String() string {
	return fmt.Sprintf("Reservation[id=%s, customer=%s, category=%s, start=%s, days=%d, status=%s]",
		r.id, r.customerID, r.category, r.startDate.Format(time.DateOnly), r.days, r.status)
}
