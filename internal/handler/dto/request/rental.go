package request

import (
	"errors"
	"strings"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/usecase/commands"
)

var ErrInvalidStartDate = errors.New("startDate must be formatted as YYYY-MM-DD")

type CreateReservationRequest struct {
	CustomerID string `json:"customerId"`
	Category   string `json:"category"`
	StartDate  string `json:"startDate"`
	Days       int    `json:"days"`
}

// ToParams leaves business validation (empty values, past dates, days) to the registry.
// Only an unparseable date is reported here, and only once a customer id is present:
// a blank customer id outranks every other problem.
func (r CreateReservationRequest) ToParams() (commands.MakeReservationParams, error) {
	var start time.Time
	if s := strings.TrimSpace(r.StartDate); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil && strings.TrimSpace(r.CustomerID) != "" {
			return commands.MakeReservationParams{}, ErrInvalidStartDate
		}
		start = parsed
	}

	category, err := car.ParseCategory(r.Category)
	if err != nil {
		category = car.CategoryUnknown
	}

	return commands.MakeReservationParams{
		CustomerID: r.CustomerID,
		Category:   category,
		StartDate:  start,
		Days:       r.Days,
	}, nil
}

type AddCarsRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}
