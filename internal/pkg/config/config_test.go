//go:build unit

package config_test

import (
	"testing"

	"car-rental/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, config.FleetConfig{Sedan: 3, SUV: 2, Van: 1}, cfg.Fleet)
		assert.Equal(t, config.IDStrategyUUID, cfg.Reservation.IDStrategy)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("FLEET_SUV", "7")
		t.Setenv("RESERVATION_ID_STRATEGY", "sequence")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 7, cfg.Fleet.SUV)
		assert.Equal(t, config.IDStrategySequence, cfg.Reservation.IDStrategy)
	})

	t.Run("unknown id strategy NG", func(t *testing.T) {
		t.Setenv("RESERVATION_ID_STRATEGY", "millis")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})

	t.Run("negative fleet NG", func(t *testing.T) {
		t.Setenv("FLEET_VAN", "-1")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}
