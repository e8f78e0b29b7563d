// Command demo walks through the rental flow against an in-memory fleet.
package main

import (
	"fmt"
	"os"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/inventory"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo failed:", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== Car Rental System Demo ===")

	clk := clock.NewRealClock()
	registry := reservation.NewRegistry(inventory.NewLedger(), clk, reservation.NewSequenceGenerator())
	ledger := registry.Ledger()

	ledger.AddCars(car.CategorySedan, 3)
	ledger.AddCars(car.CategorySUV, 2)
	ledger.AddCars(car.CategoryVan, 1)

	fmt.Println("Fleet initialized:")
	for _, c := range car.Categories() {
		fmt.Printf("%s: %d cars\n", c, ledger.TotalCount(c))
	}
	fmt.Println("----------------------------")

	tomorrow := clock.Today(clk).AddDate(0, 0, 1)

	fmt.Println("Making reservations...")
	sedan, err := registry.MakeReservation("CUST001", car.CategorySedan, tomorrow, 3)
	if err != nil {
		return errs.Wrap(err, "reserve sedan")
	}
	fmt.Println("Sedan reserved:", sedan)

	suv, err := registry.MakeReservation("CUST002", car.CategorySUV, tomorrow, 5)
	if err != nil {
		return errs.Wrap(err, "reserve suv")
	}
	fmt.Println("SUV reserved:", suv)

	fmt.Println("Testing car limits...")
	if _, err := registry.MakeReservation("CUST003", car.CategoryVan, tomorrow, 2); err != nil {
		return errs.Wrap(err, "reserve van")
	}
	if _, err := registry.MakeReservation("CUST004", car.CategoryVan, tomorrow, 2); errs.Is(err, reservation.ErrNoCarAvailable) {
		fmt.Println("Van reservation correctly rejected - no more vans available")
	} else {
		return errs.Newf("expected the second van to be refused, got %v", err)
	}

	fmt.Println("Current availability:")
	for _, c := range car.Categories() {
		fmt.Printf("%s: %d/%d available\n", c, ledger.AvailableCount(c), ledger.TotalCount(c))
	}

	fmt.Println("Cancelling sedan reservation...")
	registry.CancelReservation(sedan)
	fmt.Printf("Sedans now available: %d\n", ledger.AvailableCount(car.CategorySedan))

	fmt.Println("Reservations of CUST001:")
	for _, r := range registry.CustomerReservations("CUST001") {
		fmt.Println(r)
	}

	fmt.Println("=== Demo Complete ===")
	return nil
}
