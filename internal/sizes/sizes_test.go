package sizes

import (
	"slices"
	"testing"
)

func TestSortKeyTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size string
		want Key
	}{
		{size: "XS", want: Key{Tier: TierAlpha, Rank: 0}},
		{size: " xl ", want: Key{Tier: TierAlpha, Rank: 4}},
		{size: "XXXL", want: Key{Tier: TierAlpha, Rank: 6}},
		{size: "044", want: Key{Tier: TierNumeric, Value: 44}},
		{size: "38.5", want: Key{Tier: TierNumeric, Value: 38.5}},
		{size: "-2", want: Key{Tier: TierNumeric, Value: -2}},
		{size: "1.2.3", want: Key{Tier: TierOther, Text: "1.2.3"}},
		{size: "10-12", want: Key{Tier: TierOther, Text: "10-12"}},
		{size: "ONE SIZE", want: Key{Tier: TierOther, Text: "ONE SIZE"}},
		{size: "", want: Key{Tier: TierOther, Text: ""}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.size, func(t *testing.T) {
			if got := SortKey(tc.size); got != tc.want {
				t.Fatalf("SortKey(%q) = %+v, want %+v", tc.size, got, tc.want)
			}
		})
	}
}

func TestSortMixedLabels(t *testing.T) {
	t.Parallel()

	got := Sorted([]string{"4XL", "046", "L", "044", "S", "XS", "2T", "045.5", "XXL"})
	want := []string{"XS", "S", "L", "XXL", "044", "045.5", "046", "2T", "4XL"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCompareIsTotal(t *testing.T) {
	t.Parallel()

	labels := []string{"XS", "s", "M", "044", "44", "44.0", "7", "abc", "ABC", "", "1-2", "XXXL"}
	for _, a := range labels {
		for _, b := range labels {
			ab, ba := Compare(a, b), Compare(b, a)
			if ab != -ba {
				t.Fatalf("Compare(%q,%q)=%d but Compare(%q,%q)=%d", a, b, ab, b, a, ba)
			}
		}
	}
	if Compare("044", "44.0") != 0 {
		t.Fatalf("expected numerically equal sizes to share a key")
	}
	if !Less("XXXL", "1") || !Less("999", "A") {
		t.Fatalf("expected alpha < numeric < other")
	}
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	t.Parallel()

	in := []string{"44.0", "044", "44"}
	Sort(in)
	if want := []string{"44.0", "044", "44"}; !slices.Equal(in, want) {
		t.Fatalf("expected %v, got %v", want, in)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"44.0":  "44",
		"044":   "044",
		"38.5":  "38.5",
		"M":     "M",
		"1.2.3": "1.2.3",
		"S.M":   "S.M",
	}
	for in, want := range cases {
		if got := Format(in); got != want {
			t.Fatalf("Format(%q) = %q, want %q", in, got, want)
		}
	}
}
