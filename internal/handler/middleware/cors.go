package middleware

import (
	"log/slog"
	"slices"

	"car-rental/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append(slices.Clone(cfg.AllowHeaders), RequestIDHeader),
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// gin-contrib/cors rejects "*" inside AllowOrigins
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowAllOrigins", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
