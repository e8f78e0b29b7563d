package commands

//go:generate mockgen -source=rental.go -destination=../../../tests/mock/commands/rental.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/errs"
)

type FleetLedger interface {
	AddCars(category car.Category, count int)
	AvailableCount(category car.Category) int
	TotalCount(category car.Category) int
}

type ReservationRegistry interface {
	MakeReservation(customerID string, category car.Category, startDate time.Time, days int) (string, error)
	CancelReservation(id string) bool
}

type RentalCommands interface {
	AddCars(ctx context.Context, category car.Category, count int) error
	MakeReservation(ctx context.Context, params MakeReservationParams) (*MakeReservationResult, error)
	CancelReservation(ctx context.Context, id string) error
}

type rentalCommandsImpl struct {
	ledger   FleetLedger
	registry ReservationRegistry
	logger   *slog.Logger
}

func NewRentalCommands(ledger FleetLedger, registry ReservationRegistry, logger *slog.Logger) RentalCommands {
	return &rentalCommandsImpl{
		ledger:   ledger,
		registry: registry,
		logger:   logger,
	}
}

func (c *rentalCommandsImpl) AddCars(ctx context.Context, category car.Category, count int) error {
	if !category.IsValid() {
		return errs.ErrUnknownCategory
	}
	if count <= 0 {
		return errs.Mark(errs.Newf("cannot add %d cars", count), errs.ErrInvalidCarCount)
	}

	c.ledger.AddCars(category, count)
	c.logger.InfoContext(ctx, "cars added to fleet",
		"category", category.String(),
		"added", count,
		"total", c.ledger.TotalCount(category),
		"available", c.ledger.AvailableCount(category),
	)
	return nil
}

func (c *rentalCommandsImpl) MakeReservation(ctx context.Context, params MakeReservationParams) (*MakeReservationResult, error) {
	id, err := c.registry.MakeReservation(params.CustomerID, params.Category, params.StartDate, params.Days)
	if err != nil {
		level := slog.LevelInfo
		if errs.Is(err, reservation.ErrInvalidArgument) {
			level = slog.LevelWarn
		}
		c.logger.Log(ctx, level, "reservation not created",
			"customer_id", params.CustomerID,
			"category", params.Category.String(),
			"error", err,
		)
		return nil, err
	}

	c.logger.InfoContext(ctx, "reservation created",
		"reservation_id", id,
		"customer_id", params.CustomerID,
		"category", params.Category.String(),
		"start_date", params.StartDate.Format(time.DateOnly),
		"days", params.Days,
		"available", c.ledger.AvailableCount(params.Category),
	)
	return &MakeReservationResult{ReservationID: id}, nil
}

func (c *rentalCommandsImpl) CancelReservation(ctx context.Context, id string) error {
	if !c.registry.CancelReservation(id) {
		c.logger.InfoContext(ctx, "reservation not cancelled", "reservation_id", id)
		return errs.ErrReservationNotFound
	}
	c.logger.InfoContext(ctx, "reservation cancelled", "reservation_id", id)
	return nil
}
