// Package sizes provides the canonical ordering of garment size labels.
// Alpha sizes (XS through XXXL) sort first, numeric sizes follow in ascending
// numeric order, and every other label sorts last in lexical order.
package sizes
