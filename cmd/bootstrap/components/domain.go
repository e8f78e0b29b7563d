package components

import (
	"car-rental/internal/domain/inventory"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		clock.NewRealClock,
		inventory.NewLedger,
		NewIDGenerator,
		reservation.NewRegistry,
	),
)

func NewIDGenerator(cfg config.Config) reservation.IDGenerator {
	if cfg.Reservation.IDStrategy == config.IDStrategySequence {
		return reservation.NewSequenceGenerator()
	}
	return reservation.NewUUIDGenerator()
}
