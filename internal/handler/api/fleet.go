package api

import (
	"net/http"

	"car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewFleetHandler(cmds commands.RentalCommands, q queries.RentalQueries) *FleetHandler {
	return &FleetHandler{cmds: cmds, q: q}
}

// @Summary List fleet
// @Description Total and available cars of every category
// @Tags fleet
// @Produce json
// @Success 200 {array} resdto.FleetResponse
// @Router /api/fleet [get]
func (h *FleetHandler) List(c *gin.Context) {
	views, err := h.q.Fleet(c.Request.Context())
	if err != nil {
		httperr.AbortWithRentalError(c, err)
		return
	}
	resp, err := resdto.FromFleetViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get category availability
// @Tags fleet
// @Produce json
// @Param category path string true "Car category (sedan, suv, van)"
// @Success 200 {object} resdto.FleetResponse
// @Failure 404 {object} map[string]string
// @Router /api/fleet/{category} [get]
func (h *FleetHandler) Get(c *gin.Context) {
	category, err := car.ParseCategory(c.Param("category"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown car category", nil)
		return
	}
	view, err := h.q.CategoryAvailability(c.Request.Context(), category)
	if err != nil {
		httperr.AbortWithRentalError(c, err)
		return
	}
	resp, err := resdto.FromFleetView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Add cars
// @Description Add cars of a category to the fleet
// @Tags fleet
// @Accept json
// @Produce json
// @Param category path string true "Car category (sedan, suv, van)"
// @Param request body reqdto.AddCarsRequest true "Number of cars"
// @Success 200 {object} resdto.FleetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/fleet/{category}/cars [post]
func (h *FleetHandler) AddCars(c *gin.Context) {
	category, err := car.ParseCategory(c.Param("category"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown car category", nil)
		return
	}
	var req reqdto.AddCarsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.AddCars(c.Request.Context(), category, req.Count); err != nil {
		httperr.AbortWithRentalError(c, err)
		return
	}
	view, err := h.q.CategoryAvailability(c.Request.Context(), category)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load fleet", nil)
		return
	}
	resp, err := resdto.FromFleetView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
