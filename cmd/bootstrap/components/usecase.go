package components

import (
	"car-rental/internal/domain/inventory"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecasePortsOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecasePortsOption = fx.Provide(
	func(l *inventory.Ledger) commands.FleetLedger { return l },
	func(r *reservation.Registry) commands.ReservationRegistry { return r },
	func(l *inventory.Ledger) queries.FleetReadStore { return l },
	func(r *reservation.Registry) queries.ReservationReadStore { return r },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRentalCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRentalQueries,
	),
)
