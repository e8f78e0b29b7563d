package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewReservationHandler(cmds commands.RentalCommands, q queries.RentalQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Reserve one car of a category. Availability is a plain counter; dates are not checked for overlap.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.MakeReservation(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithRentalError(c, err)
		return
	}
	view, err := h.q.GetReservation(c.Request.Context(), result.ReservationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.q.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithRentalError(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel reservation
// @Description Unknown and already cancelled reservations both answer 404
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	if err := h.cmds.CancelReservation(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithRentalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List customer reservations
// @Description Active and cancelled reservations of a customer in creation order
// @Tags reservations
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/customers/{customerId}/reservations [get]
func (h *ReservationHandler) ListByCustomer(c *gin.Context) {
	views, err := h.q.CustomerReservations(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		httperr.AbortWithRentalError(c, err)
		return
	}
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
