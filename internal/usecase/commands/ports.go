package commands

import (
	"time"

	"car-rental/internal/domain/car"
)

// Write-side input kept free of transport types
type MakeReservationParams struct {
	CustomerID string
	Category   car.Category
	StartDate  time.Time
	Days       int
}

type MakeReservationResult struct {
	ReservationID string
}
