//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID         string
	CustomerID string
	Category   car.Category
	StartDate  time.Time
	Days       int
	Status     string
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:         "RES-SEDAN-000001",
		CustomerID: "CUST001",
		Category:   car.CategorySedan,
		StartDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1),
		Days:       3,
		Status:     "active",
		CreatedAt:  now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithCustomerID(id string) *ReservationBuilder {
	r.CustomerID = id
	return r
}

func (r *ReservationBuilder) WithCategory(c car.Category) *ReservationBuilder {
	r.Category = c
	return r
}

func (r *ReservationBuilder) WithStartDate(d time.Time) *ReservationBuilder {
	r.StartDate = d
	return r
}

func (r *ReservationBuilder) WithDays(days int) *ReservationBuilder {
	r.Days = days
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Status = "cancelled"
	return r
}

// Build methods
func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerID: r.CustomerID,
		Category:   r.Category.Code(),
		StartDate:  r.StartDate.Format(time.DateOnly),
		Days:       r.Days,
	}
}

func (r *ReservationBuilder) BuildParams() commands.MakeReservationParams {
	return commands.MakeReservationParams{
		CustomerID: r.CustomerID,
		Category:   r.Category,
		StartDate:  r.StartDate,
		Days:       r.Days,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		Category:     r.Category.String(),
		CategoryCode: r.Category.Code(),
		StartDate:    r.StartDate.Format(time.DateOnly),
		EndDate:      r.StartDate.AddDate(0, 0, r.Days).Format(time.DateOnly),
		Days:         r.Days,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
}
