package queries

import "time"

// FleetView represents read-optimized ledger counts of one category
type FleetView struct {
	Category  string `json:"category"`
	Code      string `json:"code"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
}

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	Category     string    `json:"category"`
	CategoryCode string    `json:"category_code"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Days         int       `json:"days"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
