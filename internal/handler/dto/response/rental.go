package response

import (
	"time"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type FleetResponse struct {
	Category  string `json:"category"`
	Code      string `json:"code"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
}

type ReservationResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	Category     string    `json:"category"`
	CategoryCode string    `json:"categoryCode"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Days         int       `json:"days"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromFleetView(v *queries.FleetView) (*FleetResponse, error) {
	var resp FleetResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "copy fleet view")
	}
	return &resp, nil
}

func FromFleetViews(vs []*queries.FleetView) ([]*FleetResponse, error) {
	out := make([]*FleetResponse, len(vs))
	for i, v := range vs {
		resp, err := FromFleetView(v)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "copy reservation view")
	}
	return &resp, nil
}

func FromReservationViews(vs []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		resp, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}
