// Package boxrange models contiguous carton number ranges and rebuilds
// combined-size ranges from per-size box data already present in a sheet.
package boxrange

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/carton-packer/internal/sizes"
)

// BoxRange is a run of carton numbers assigned to one size or to a group of
// sizes sharing the same cartons. TotalPcs and ItemsPerBox are zero when unknown.
type BoxRange struct {
	Sizes       []string
	BoxStart    int
	BoxEnd      int
	Column      int
	TotalPcs    int
	ItemsPerBox int
}

// IsValid reports whether the range is non-empty and starts at carton 1 or later.
func (b BoxRange) IsValid() bool {
	return b.BoxStart <= b.BoxEnd && b.BoxStart > 0
}

// IsCombined reports whether more than one size shares the range.
func (b BoxRange) IsCombined() bool {
	return len(b.Sizes) > 1
}

// IsPartial reports whether a single-size range holds fewer pieces than a
// full carton. Combined ranges are never partial.
func (b BoxRange) IsPartial() bool {
	if b.IsCombined() {
		return false
	}
	if b.TotalPcs <= 0 || b.ItemsPerBox <= 0 {
		return false
	}
	return b.TotalPcs < b.ItemsPerBox
}

// Label joins the formatted sizes with separator and marks partial ranges
// with their piece count, e.g. "044/045" or "046/90PCS".
func (b BoxRange) Label(separator string) string {
	formatted := make([]string, len(b.Sizes))
	for i, size := range b.Sizes {
		formatted[i] = sizes.Format(size)
	}
	label := strings.Join(formatted, separator)

	if b.IsPartial() {
		label = fmt.Sprintf("%s/%dPCS", label, b.TotalPcs)
	}
	return label
}

// BoxNumbers returns every carton number from BoxStart to BoxEnd inclusive.
func (b BoxRange) BoxNumbers() []int {
	if b.BoxEnd < b.BoxStart {
		return nil
	}
	out := make([]int, 0, b.BoxEnd-b.BoxStart+1)
	for n := b.BoxStart; n <= b.BoxEnd; n++ {
		out = append(out, n)
	}
	return out
}

// BoxCount is the number of cartons in the range.
func (b BoxRange) BoxCount() int {
	if b.BoxEnd < b.BoxStart {
		return 0
	}
	return b.BoxEnd - b.BoxStart + 1
}
