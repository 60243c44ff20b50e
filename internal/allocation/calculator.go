package allocation

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/eugenenazirov/carton-packer/internal/sizes"
)

// Calculator splits piece counts into full cartons and packs the remainders
// into combined cartons. ItemsPerBox is fixed for the lifetime of a Calculator.
type Calculator struct {
	itemsPerBox int
	logger      *zap.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger attaches a logger for allocation diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Calculator for cartons holding itemsPerBox pieces.
func New(itemsPerBox int, opts ...Option) (*Calculator, error) {
	if itemsPerBox <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidConfiguration, itemsPerBox)
	}

	c := &Calculator{
		itemsPerBox: itemsPerBox,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Debug("carton calculator initialised", zap.Int("items_per_box", itemsPerBox))
	return c, nil
}

// ItemsPerBox returns the carton capacity.
func (c *Calculator) ItemsPerBox() int {
	return c.itemsPerBox
}

// Allocate splits the pieces of one size into full cartons and a remainder.
func (c *Calculator) Allocate(size string, totalPcs int) (SizeAllocation, error) {
	if totalPcs < 0 {
		return SizeAllocation{}, fmt.Errorf("%w: size %s has %d pieces", ErrInvalidInput, size, totalPcs)
	}

	fullBoxes := totalPcs / c.itemsPerBox
	return SizeAllocation{
		Size:      size,
		TotalPcs:  totalPcs,
		FullBoxes: fullBoxes,
		FullQty:   fullBoxes * c.itemsPerBox,
		Remainder: totalPcs % c.itemsPerBox,
	}, nil
}

// AllocateAll applies Allocate to every size. No partial result is returned on error.
func (c *Calculator) AllocateAll(quantities map[string]int) (map[string]SizeAllocation, error) {
	allocations := make(map[string]SizeAllocation, len(quantities))
	for _, size := range slices.SortedFunc(maps.Keys(quantities), sizes.Compare) {
		alloc, err := c.Allocate(size, quantities[size])
		if err != nil {
			return nil, err
		}
		allocations[size] = alloc
		c.logger.Debug("size allocated",
			zap.String("size", size),
			zap.Int("total_pcs", alloc.TotalPcs),
			zap.Int("full_boxes", alloc.FullBoxes),
			zap.Int("remainder", alloc.Remainder),
		)
	}
	return allocations, nil
}

// CombineRemainders packs the remainders of all sizes into combined cartons.
// Sizes are visited in size order and poured first-fit into the current
// carton, which is closed as soon as it is full. Only the last carton may be
// short.
func (c *Calculator) CombineRemainders(allocations map[string]SizeAllocation) []CombinedCarton {
	pending := make([]string, 0, len(allocations))
	for size, alloc := range allocations {
		if alloc.Remainder > 0 {
			pending = append(pending, size)
		}
	}
	slices.Sort(pending)
	sizes.Sort(pending)

	var (
		cartons []CombinedCarton
		current = newCartonBuilder()
	)
	for _, size := range pending {
		remaining := allocations[size].Remainder
		for remaining > 0 {
			take := min(remaining, c.itemsPerBox-current.total)
			current.add(size, take)
			remaining -= take

			if current.total == c.itemsPerBox {
				cartons = append(cartons, current.build())
				current = newCartonBuilder()
			}
		}
	}
	if current.total > 0 {
		cartons = append(cartons, current.build())
	}

	c.logger.Info("combined cartons packed", zap.Int("count", len(cartons)))
	return cartons
}

// Calculate runs the full allocation for a set of size quantities.
func (c *Calculator) Calculate(quantities map[string]int) (Result, error) {
	c.logger.Info("calculating allocation", zap.Int("sizes", len(quantities)))

	allocations, err := c.AllocateAll(quantities)
	if err != nil {
		return Result{}, err
	}

	totalFull := 0
	for _, alloc := range allocations {
		totalFull += alloc.FullBoxes
	}
	combined := c.CombineRemainders(allocations)

	return Result{
		Allocations:        allocations,
		CombinedCartons:    combined,
		TotalFullBoxes:     totalFull,
		TotalCombinedBoxes: len(combined),
		ItemsPerBox:        c.itemsPerBox,
	}, nil
}

type cartonBuilder struct {
	sizes      []string
	quantities map[string]int
	total      int
}

func newCartonBuilder() *cartonBuilder {
	return &cartonBuilder{quantities: make(map[string]int)}
}

func (b *cartonBuilder) add(size string, qty int) {
	if _, ok := b.quantities[size]; !ok {
		b.sizes = append(b.sizes, size)
	}
	b.quantities[size] += qty
	b.total += qty
}

func (b *cartonBuilder) build() CombinedCarton {
	return CombinedCarton{
		Sizes:      b.sizes,
		Quantities: b.quantities,
		TotalPcs:   b.total,
	}
}
