package allocation

import (
	"slices"
	"strings"

	"github.com/eugenenazirov/carton-packer/internal/sizes"
)

// SizeAllocation is the full-carton split of one size.
// FullQty + Remainder always equals TotalPcs.
type SizeAllocation struct {
	Size      string `json:"size"`
	TotalPcs  int    `json:"totalPcs"`
	FullBoxes int    `json:"fullBoxes"`
	FullQty   int    `json:"fullQty"`
	Remainder int    `json:"remainder"`
}

// CombinedCarton holds remainders of one or more sizes packed together.
type CombinedCarton struct {
	Sizes      []string       `json:"sizes"`
	Quantities map[string]int `json:"quantities"`
	TotalPcs   int            `json:"totalPcs"`
}

// Label joins the carton sizes with separator.
func (c CombinedCarton) Label(separator string) string {
	return strings.Join(c.Sizes, separator)
}

// IsFull reports whether the carton holds exactly itemsPerBox pieces.
func (c CombinedCarton) IsFull(itemsPerBox int) bool {
	return c.TotalPcs == itemsPerBox
}

// Result is the outcome of a full allocation run.
type Result struct {
	Allocations        map[string]SizeAllocation `json:"allocations"`
	CombinedCartons    []CombinedCarton          `json:"combinedCartons"`
	TotalFullBoxes     int                       `json:"totalFullBoxes"`
	TotalCombinedBoxes int                       `json:"totalCombinedBoxes"`
	ItemsPerBox        int                       `json:"itemsPerBox"`
}

// TotalBoxes is the number of full and combined cartons together.
func (r Result) TotalBoxes() int {
	return r.TotalFullBoxes + r.TotalCombinedBoxes
}

// SortedAllocations returns the allocations ordered by size.
func (r Result) SortedAllocations() []SizeAllocation {
	keys := make([]string, 0, len(r.Allocations))
	for size := range r.Allocations {
		keys = append(keys, size)
	}
	slices.Sort(keys)
	sizes.Sort(keys)

	out := make([]SizeAllocation, 0, len(keys))
	for _, size := range keys {
		out = append(out, r.Allocations[size])
	}
	return out
}
