package boxrange

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"
)

func newTestReconciler(t *testing.T, opts Options) *Reconciler {
	t.Helper()
	return NewReconciler(opts, zaptest.NewLogger(t))
}

func detectAll(itemsPerBox int) Options {
	return Options{CombinedDetection: true, SortCombinedSizes: true, ItemsPerBox: itemsPerBox}
}

func TestReconcileMergesIdenticalWindows(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "045", Entries: []Entry{{BoxStart: 1, BoxEnd: 5, Column: 8, Quantity: 50}}},
		{Size: "044", Entries: []Entry{{BoxStart: 1, BoxEnd: 5, Column: 7, Quantity: 100}}},
	}

	got := newTestReconciler(t, detectAll(150)).Reconcile(input)
	if len(got) != 1 {
		t.Fatalf("expected one merged range, got %d: %+v", len(got), got)
	}
	br := got[0]
	if !slices.Equal(br.Sizes, []string{"044", "045"}) {
		t.Fatalf("expected sorted sizes [044 045], got %v", br.Sizes)
	}
	if br.TotalPcs != 150 || br.IsPartial() {
		t.Fatalf("expected full range of 150 pieces, got %+v", br)
	}
	if br.Column != 8 {
		t.Fatalf("expected column of first contributor (8), got %d", br.Column)
	}
	if got := br.Label("/"); got != "044/045" {
		t.Fatalf("expected label 044/045, got %s", got)
	}
}

func TestReconcileShortCombinedRangeIsNotPartial(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "044", Entries: []Entry{{BoxStart: 1, BoxEnd: 5, Column: 7, Quantity: 60}}},
		{Size: "045", Entries: []Entry{{BoxStart: 1, BoxEnd: 5, Column: 8, Quantity: 30}}},
	}

	got := newTestReconciler(t, detectAll(150)).Reconcile(input)
	if len(got) != 1 {
		t.Fatalf("expected one merged range, got %d", len(got))
	}
	if got[0].TotalPcs != 90 || got[0].IsPartial() {
		t.Fatalf("expected non-partial combined range of 90, got %+v", got[0])
	}
	if label := got[0].Label("/"); label != "044/045" {
		t.Fatalf("expected label 044/045, got %s", label)
	}
}

func TestReconcileKeepsDiscoveryOrderWithoutSorting(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "L", Entries: []Entry{{BoxStart: 4, BoxEnd: 4, Column: 9, Quantity: 3}}},
		{Size: "S", Entries: []Entry{{BoxStart: 4, BoxEnd: 4, Column: 7, Quantity: 4}}},
		{Size: "M", Entries: []Entry{{BoxStart: 4, BoxEnd: 4, Column: 8, Quantity: 3}}},
	}

	got := newTestReconciler(t, Options{CombinedDetection: true}).Reconcile(input)
	if len(got) != 1 || !slices.Equal(got[0].Sizes, []string{"L", "S", "M"}) {
		t.Fatalf("expected discovery order [L S M], got %+v", got)
	}

	sorted := newTestReconciler(t, detectAll(0)).Reconcile(input)
	if !slices.Equal(sorted[0].Sizes, []string{"S", "M", "L"}) {
		t.Fatalf("expected size order [S M L], got %v", sorted[0].Sizes)
	}
}

func TestReconcileDoesNotMergeOverlappingWindows(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "S", Entries: []Entry{{BoxStart: 1, BoxEnd: 4, Column: 7, Quantity: 80}}},
		{Size: "M", Entries: []Entry{{BoxStart: 3, BoxEnd: 6, Column: 8, Quantity: 80}}},
	}

	got := newTestReconciler(t, detectAll(20)).Reconcile(input)
	if len(got) != 2 {
		t.Fatalf("expected overlapping windows to stay separate, got %+v", got)
	}
	for _, br := range got {
		if br.IsCombined() {
			t.Fatalf("unexpected combined range %+v", br)
		}
	}
}

func TestReconcileOrdersPartialRangesLast(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "S", Entries: []Entry{
			{BoxStart: 1, BoxEnd: 2, Column: 7, Quantity: 40},
			{BoxStart: 3, BoxEnd: 3, Column: 8, Quantity: 5},
		}},
		{Size: "M", Entries: []Entry{
			{BoxStart: 4, BoxEnd: 6, Column: 9, Quantity: 60},
			{BoxStart: 7, BoxEnd: 7, Column: 10, Quantity: 13},
		}},
		{Size: "L", Entries: []Entry{
			{BoxStart: 8, BoxEnd: 8, Column: 11, Quantity: 7},
		}},
		{Size: "XL", Entries: []Entry{
			{BoxStart: 8, BoxEnd: 8, Column: 11, Quantity: 13},
		}},
	}

	got := newTestReconciler(t, detectAll(20)).Reconcile(input)

	var labels []string
	for _, br := range got {
		labels = append(labels, br.Label("/"))
	}
	want := []string{"S", "M", "L/XL", "S/5PCS", "M/13PCS"}
	if !slices.Equal(labels, want) {
		t.Fatalf("expected %v, got %v", want, labels)
	}
}

func TestReconcileSkipsUnusableEntries(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "S", Entries: []Entry{
			{BoxStart: 1, BoxEnd: 2, Column: 7, Quantity: 0},
			{BoxStart: 5, BoxEnd: 3, Column: 8, Quantity: 10},
			{BoxStart: 0, BoxEnd: 3, Column: 9, Quantity: 10},
			{BoxStart: 4, BoxEnd: 4, Column: 10, Quantity: 10},
		}},
		{Size: "M"},
	}

	for _, opts := range []Options{detectAll(10), {}} {
		got := newTestReconciler(t, opts).Reconcile(input)
		if len(got) != 1 || got[0].BoxStart != 4 {
			t.Fatalf("expected only the valid entry to survive (%+v), got %+v", opts, got)
		}
	}
	if !HasData(input) {
		t.Fatalf("expected HasData to find the valid entry")
	}
	if HasData([]SizeEntries{{Size: "S", Entries: []Entry{{BoxStart: 1, BoxEnd: 1}}}}) {
		t.Fatalf("expected zero-quantity entries to carry no data")
	}
}

func TestReconcileWithoutDetectionKeepsEntries(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "M", Entries: []Entry{{BoxStart: 3, BoxEnd: 3, Column: 8, Quantity: 5}}},
		{Size: "S", Entries: []Entry{
			{BoxStart: 3, BoxEnd: 3, Column: 7, Quantity: 5},
			{BoxStart: 1, BoxEnd: 2, Column: 9, Quantity: 20},
		}},
	}

	got := newTestReconciler(t, Options{ItemsPerBox: 10}).Reconcile(input)
	want := []BoxRange{
		{Sizes: []string{"M"}, BoxStart: 3, BoxEnd: 3, Column: 8, TotalPcs: 5, ItemsPerBox: 10},
		{Sizes: []string{"S"}, BoxStart: 3, BoxEnd: 3, Column: 7, TotalPcs: 5, ItemsPerBox: 10},
		{Sizes: []string{"S"}, BoxStart: 1, BoxEnd: 2, Column: 9, TotalPcs: 20, ItemsPerBox: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "046", Entries: []Entry{{BoxStart: 1, BoxEnd: 3, Column: 7, Quantity: 36}, {BoxStart: 9, BoxEnd: 9, Column: 12, Quantity: 4}}},
		{Size: "044", Entries: []Entry{{BoxStart: 4, BoxEnd: 6, Column: 8, Quantity: 36}, {BoxStart: 9, BoxEnd: 9, Column: 12, Quantity: 6}}},
		{Size: "048", Entries: []Entry{{BoxStart: 7, BoxEnd: 8, Column: 9, Quantity: 20}}},
	}

	rec := newTestReconciler(t, detectAll(12))
	first := rec.Reconcile(input)
	second := rec.Reconcile(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %+v and %+v", first, second)
	}
	if TotalBoxes(first) != 9 {
		t.Fatalf("expected 9 boxes, got %d", TotalBoxes(first))
	}
}

func TestReconcileCapsCombinedQuantity(t *testing.T) {
	t.Parallel()

	input := []SizeEntries{
		{Size: "S", Entries: []Entry{{BoxStart: 1, BoxEnd: 1, Column: 7, Quantity: math.MaxInt}}},
		{Size: "M", Entries: []Entry{{BoxStart: 1, BoxEnd: 1, Column: 8, Quantity: 5}}},
		{Size: "L", Entries: []Entry{{BoxStart: 2, BoxEnd: 2, Column: 9, Quantity: math.MaxInt - 1}}},
		{Size: "L", Entries: []Entry{{BoxStart: 2, BoxEnd: 2, Column: 9, Quantity: 1}}},
	}

	got := newTestReconciler(t, detectAll(20)).Reconcile(input)
	if len(got) != 2 {
		t.Fatalf("expected 2 ranges, got %+v", got)
	}
	if got[0].TotalPcs != math.MaxInt {
		t.Fatalf("expected combined total to saturate, got %d", got[0].TotalPcs)
	}
	if got[1].TotalPcs != math.MaxInt || got[1].IsPartial() {
		t.Fatalf("expected exact-limit total without partial flag, got %+v", got[1])
	}
}

func TestAddCapped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want int
	}{
		{1, 2, 3},
		{math.MaxInt - 1, 1, math.MaxInt},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt, math.MaxInt, math.MaxInt},
	}
	for _, tc := range tests {
		if got := addCapped(tc.a, tc.b); got != tc.want {
			t.Fatalf("addCapped(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
