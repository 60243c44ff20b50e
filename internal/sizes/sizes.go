package sizes

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Tier groups size labels into the three ordering classes.
type Tier int

const (
	TierAlpha Tier = iota
	TierNumeric
	TierOther
)

var alphaRanks = map[string]int{
	"XS":   0,
	"S":    1,
	"M":    2,
	"L":    3,
	"XL":   4,
	"XXL":  5,
	"XXXL": 6,
}

// Key is the comparable sort key of a size label.
type Key struct {
	Tier  Tier
	Rank  int
	Value float64
	Text  string
}

// SortKey derives the ordering key for a size label.
func SortKey(size string) Key {
	if rank, ok := alphaRanks[strings.ToUpper(strings.TrimSpace(size))]; ok {
		return Key{Tier: TierAlpha, Rank: rank}
	}

	if isDigits(strings.NewReplacer(".", "", "-", "").Replace(size)) {
		if v, err := strconv.ParseFloat(size, 64); err == nil {
			return Key{Tier: TierNumeric, Value: v}
		}
	}

	return Key{Tier: TierOther, Text: size}
}

// CompareKeys orders keys by tier, then by the tier's own component.
func CompareKeys(a, b Key) int {
	if c := cmp.Compare(a.Tier, b.Tier); c != 0 {
		return c
	}
	switch a.Tier {
	case TierAlpha:
		return cmp.Compare(a.Rank, b.Rank)
	case TierNumeric:
		return cmp.Compare(a.Value, b.Value)
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// Compare orders two size labels.
func Compare(a, b string) int {
	return CompareKeys(SortKey(a), SortKey(b))
}

// Less reports whether size a sorts before size b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders sizes in place. Labels with equal keys keep their relative order.
func Sort(sizes []string) {
	slices.SortStableFunc(sizes, Compare)
}

// Sorted returns a sorted copy of sizes.
func Sorted(sizes []string) []string {
	out := slices.Clone(sizes)
	Sort(out)
	return out
}

// Format renders a size for labels. Numeric sizes written with an integral
// decimal part ("44.0") lose it; everything else is returned unchanged.
func Format(size string) string {
	if !strings.Contains(size, ".") {
		return size
	}
	v, err := strconv.ParseFloat(size, 64)
	if err != nil || v != float64(int64(v)) {
		return size
	}
	return strconv.FormatInt(int64(v), 10)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
