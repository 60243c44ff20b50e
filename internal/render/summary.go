package render

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/carton-packer/internal/allocation"
	"github.com/eugenenazirov/carton-packer/internal/boxrange"
)

// AllocationSummary describes an allocation result line by line.
func AllocationSummary(result allocation.Result) string {
	var b strings.Builder
	for _, alloc := range result.SortedAllocations() {
		if alloc.Remainder > 0 {
			fmt.Fprintf(&b, "%s: %d pcs -> %d boxes + %d remainder\n",
				alloc.Size, alloc.TotalPcs, alloc.FullBoxes, alloc.Remainder)
			continue
		}
		fmt.Fprintf(&b, "%s: %d pcs -> %d boxes\n", alloc.Size, alloc.TotalPcs, alloc.FullBoxes)
	}

	if len(result.CombinedCartons) > 0 {
		b.WriteString("Combined cartons:\n")
		for i, carton := range result.CombinedCartons {
			parts := make([]string, len(carton.Sizes))
			for j, size := range carton.Sizes {
				parts[j] = fmt.Sprintf("%s(%d)", size, carton.Quantities[size])
			}
			fmt.Fprintf(&b, "  Carton %d: %s = %d pcs\n", i+1, strings.Join(parts, " + "), carton.TotalPcs)
		}
	}

	fmt.Fprintf(&b, "Total: %d boxes (%d full + %d combined)",
		result.TotalBoxes(), result.TotalFullBoxes, result.TotalCombinedBoxes)
	return b.String()
}

// ExportSummary describes an exported box list.
func ExportSummary(ranges []boxrange.BoxRange, totalColumns int) string {
	combined := 0
	for _, br := range ranges {
		if br.IsCombined() {
			combined++
		}
	}
	single := len(ranges) - combined

	var parts []string
	if single > 0 {
		parts = append(parts, fmt.Sprintf("%d single sizes", single))
	}
	if combined > 0 {
		parts = append(parts, fmt.Sprintf("%d combined sizes", combined))
	}
	summary := "0 sizes"
	if len(parts) > 0 {
		summary = strings.Join(parts, " and ")
	}

	columns := ""
	if totalColumns > 1 {
		columns = fmt.Sprintf(", %d columns", totalColumns)
	}
	return fmt.Sprintf("Exported %s, %d boxes total%s", summary, boxrange.TotalBoxes(ranges), columns)
}
