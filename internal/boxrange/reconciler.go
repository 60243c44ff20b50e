package boxrange

import (
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/eugenenazirov/carton-packer/internal/sizes"
)

// Entry is one box window read for a size: cartons BoxStart..BoxEnd in the
// given sheet column, holding Quantity pieces of that size.
type Entry struct {
	BoxStart int
	BoxEnd   int
	Column   int
	Quantity int
}

func (e Entry) window() BoxRange {
	return BoxRange{BoxStart: e.BoxStart, BoxEnd: e.BoxEnd}
}

// SizeEntries carries the entries read for one size.
type SizeEntries struct {
	Size    string
	Entries []Entry
}

// Options controls how ranges are reconciled.
type Options struct {
	// CombinedDetection merges sizes sharing an identical box window.
	CombinedDetection bool
	// SortCombinedSizes orders the sizes inside a merged range by size order.
	SortCombinedSizes bool
	// ItemsPerBox enables partial carton detection when positive.
	ItemsPerBox int
}

// Reconciler summarises per-size box windows into BoxRange values.
type Reconciler struct {
	opts   Options
	logger *zap.Logger
}

// NewReconciler creates a Reconciler. A nil logger disables logging.
func NewReconciler(opts Options, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{opts: opts, logger: logger}
}

type window struct {
	start int
	end   int
}

type contribution struct {
	size     string
	column   int
	quantity int
}

// Reconcile turns the entries of every size into ordered box ranges.
//
// With combined detection enabled, entries of different sizes with exactly
// the same window are merged; overlapping but unequal windows stay separate.
// The merged ranges are ordered with non-partial ranges first, then by
// starting carton. With detection disabled every entry becomes its own range
// in input order.
//
// Entries with a non-positive quantity or an invalid window are skipped.
func (r *Reconciler) Reconcile(input []SizeEntries) []BoxRange {
	if !r.opts.CombinedDetection {
		return r.singles(input)
	}

	var order []window
	groups := make(map[window][]contribution)
	for _, se := range input {
		for _, e := range se.Entries {
			if !r.usable(se.Size, e) {
				continue
			}
			key := window{start: e.BoxStart, end: e.BoxEnd}
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], contribution{size: se.Size, column: e.Column, quantity: e.Quantity})
		}
	}

	ranges := make([]BoxRange, 0, len(order))
	for _, key := range order {
		members := groups[key]

		var groupSizes []string
		total := 0
		for _, m := range members {
			if !slices.Contains(groupSizes, m.size) {
				groupSizes = append(groupSizes, m.size)
			}
			total = addCapped(total, m.quantity)
		}
		if r.opts.SortCombinedSizes {
			sizes.Sort(groupSizes)
		}

		ranges = append(ranges, BoxRange{
			Sizes:       groupSizes,
			BoxStart:    key.start,
			BoxEnd:      key.end,
			Column:      members[0].column,
			TotalPcs:    total,
			ItemsPerBox: r.opts.ItemsPerBox,
		})
	}

	slices.SortStableFunc(ranges, compareRanges)

	combined, partial := 0, 0
	for _, br := range ranges {
		if br.IsCombined() {
			combined++
		}
		if br.IsPartial() {
			partial++
		}
	}
	r.logger.Info("box ranges detected",
		zap.Int("ranges", len(ranges)),
		zap.Int("combined", combined),
		zap.Int("partial", partial),
	)
	return ranges
}

func (r *Reconciler) singles(input []SizeEntries) []BoxRange {
	var ranges []BoxRange
	for _, se := range input {
		for _, e := range se.Entries {
			if !r.usable(se.Size, e) {
				continue
			}
			ranges = append(ranges, BoxRange{
				Sizes:       []string{se.Size},
				BoxStart:    e.BoxStart,
				BoxEnd:      e.BoxEnd,
				Column:      e.Column,
				TotalPcs:    e.Quantity,
				ItemsPerBox: r.opts.ItemsPerBox,
			})
		}
	}
	r.logger.Info("box ranges collected", zap.Int("ranges", len(ranges)))
	return ranges
}

func (r *Reconciler) usable(size string, e Entry) bool {
	if e.Quantity <= 0 {
		return false
	}
	if !e.window().IsValid() {
		r.logger.Warn("skipping invalid box window",
			zap.String("size", size),
			zap.Int("column", e.Column),
			zap.Int("box_start", e.BoxStart),
			zap.Int("box_end", e.BoxEnd),
		)
		return false
	}
	return true
}

// addCapped adds two non-negative quantities, saturating at math.MaxInt.
func addCapped(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// partial ranges sort after full ones, then by starting carton
func compareRanges(a, b BoxRange) int {
	pa, pb := a.IsPartial(), b.IsPartial()
	switch {
	case pa == pb:
		return a.BoxStart - b.BoxStart
	case pa:
		return 1
	default:
		return -1
	}
}

// HasData reports whether any size carries at least one usable entry.
func HasData(input []SizeEntries) bool {
	for _, se := range input {
		for _, e := range se.Entries {
			if e.Quantity > 0 && e.window().IsValid() {
				return true
			}
		}
	}
	return false
}

// TotalBoxes sums the carton counts of all ranges.
func TotalBoxes(ranges []BoxRange) int {
	total := 0
	for _, br := range ranges {
		total += br.BoxCount()
	}
	return total
}
