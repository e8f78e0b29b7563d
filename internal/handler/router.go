package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, fleetHandler *api.FleetHandler, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, fleetHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, fleetHandler *api.FleetHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/fleet"), []route{
			{Method: http.MethodGet, Path: "", Handler: fleetHandler.List},
			{Method: http.MethodGet, Path: "/:category", Handler: fleetHandler.Get},
			{Method: http.MethodPost, Path: "/:category/cars", Handler: fleetHandler.AddCars},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel},
		})

		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodGet, Path: "/:customerId/reservations", Handler: reservationHandler.ListByCustomer},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
