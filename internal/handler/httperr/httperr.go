package httperr

import (
	"net/http"

	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRentalError maps rental failures to their HTTP status.
func AbortWithRentalError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, reservation.ErrInvalidArgument):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid argument", err.Error())
	case errs.Is(err, reservation.ErrRejectedRequest):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation request rejected", err.Error())
	case errs.Is(err, reservation.ErrNoCarAvailable):
		AbortWithError(c, http.StatusConflict, err, "No car available", err.Error())
	case errs.Is(err, errs.ErrReservationNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrUnknownCategory):
		AbortWithError(c, http.StatusNotFound, err, "Unknown car category", nil)
	case errs.Is(err, errs.ErrInvalidCarCount):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid car count", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
