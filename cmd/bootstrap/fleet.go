package bootstrap

import (
	"context"
	"log/slog"

	"car-rental/internal/domain/car"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var FleetModule = fx.Module("fleet",
	fx.Invoke(SeedFleet),
)

// SeedFleet adds the configured cars before the server accepts requests.
func SeedFleet(lc fx.Lifecycle, cfg config.Config, cmds commands.RentalCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			initial := map[car.Category]int{
				car.CategorySedan: cfg.Fleet.Sedan,
				car.CategorySUV:   cfg.Fleet.SUV,
				car.CategoryVan:   cfg.Fleet.Van,
			}
			for _, category := range car.Categories() {
				count := initial[category]
				if count == 0 {
					continue
				}
				if err := cmds.AddCars(ctx, category, count); err != nil {
					return err
				}
			}
			logger.Info("fleet initialized", "sedan", cfg.Fleet.Sedan, "suv", cfg.Fleet.SUV, "van", cfg.Fleet.Van)
			return nil
		},
	})
}
