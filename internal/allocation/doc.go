// Package allocation converts per-size piece counts into carton counts.
// Each size is split into full cartons plus a remainder, and the remainders
// of all sizes are packed into combined cartons with a greedy first-fit pass
// over the sizes in canonical size order. The packing is intentionally simple
// and reproducible; spreadsheet layouts downstream rely on its exact output.
package allocation
