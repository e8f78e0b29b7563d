package reservation

import (
	"fmt"
	"sync/atomic"

	"car-rental/internal/domain/car"

	"github.com/google/uuid"
)

const idPrefix = "RES"

// IDGenerator issues reservation ids that are unique for the process lifetime.
type IDGenerator interface {
	NextID(category car.Category) string
}

// SequenceGenerator builds ids from a monotonic counter, e.g. "RES-SUV-000042".
type SequenceGenerator struct {
	seq atomic.Uint64
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) NextID(category car.Category) string {
	return fmt.Sprintf("%s-%s-%06d", idPrefix, category.Code(), g.seq.Add(1))
}

// UUIDGenerator builds ids from random v4 UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NextID(_ car.Category) string {
	return idPrefix + "-" + uuid.NewString()
}
