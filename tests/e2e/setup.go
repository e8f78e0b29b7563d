//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"car-rental/cmd/bootstrap"
	"car-rental/cmd/bootstrap/components"
	"car-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds a fresh in-memory application per test
// ------------------------------------------------------------
func SetupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, cfg, app := buildE2EApp()
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return router, cfg
}

// ------------------------------------------------------------
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp() (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.DomainModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.FleetModule,

		fx.Populate(&router, &cfg),

		// start without fx event logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, app
}
