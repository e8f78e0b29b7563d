package inventory

import (
	"sync"

	"car-rental/internal/domain/car"
)

type counts struct {
	total     int
	available int
}

// Ledger tracks total and available units per car category.
type Ledger struct {
	mu     sync.RWMutex
	counts map[car.Category]*counts
}

type Availability struct {
	Category  car.Category
	Total     int
	Available int
}

func NewLedger() *Ledger {
	l := &Ledger{counts: make(map[car.Category]*counts, len(car.Categories()))}
	for _, c := range car.Categories() {
		l.counts[c] = &counts{}
	}
	return l
}

// AddCars grows the fleet of category. Non-positive counts and unknown categories are ignored.
func (l *Ledger) AddCars(category car.Category, count int) {
	if count <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counts[category]
	if !ok {
		return
	}
	c.total += count
	c.available += count
}

func (l *Ledger) AvailableCount(category car.Category) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if c, ok := l.counts[category]; ok {
		return c.available
	}
	return 0
}

func (l *Ledger) TotalCount(category car.Category) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if c, ok := l.counts[category]; ok {
		return c.total
	}
	return 0
}

// Reserve takes one unit out of availability. It reports false when none is left.
func (l *Ledger) Reserve(category car.Category) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counts[category]
	if !ok || c.available <= 0 {
		return false
	}
	c.available--
	return true
}

// Release returns one unit to availability, never above the total.
func (l *Ledger) Release(category car.Category) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counts[category]
	if !ok || c.available >= c.total {
		return false
	}
	c.available++
	return true
}

func (l *Ledger) Availability(category car.Category) Availability {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a := Availability{Category: category}
	if c, ok := l.counts[category]; ok {
		a.Total = c.total
		a.Available = c.available
	}
	return a
}

// Snapshot returns every category's counts in car.Categories() order.
func (l *Ledger) Snapshot() []Availability {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Availability, 0, len(l.counts))
	for _, category := range car.Categories() {
		c := l.counts[category]
		out = append(out, Availability{Category: category, Total: c.total, Available: c.available})
	}
	return out
}
