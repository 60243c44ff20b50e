// Package colref converts between spreadsheet column letters and 1-based
// column numbers (A=1, Z=26, AA=27).
package colref

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidColumn is returned for empty or non-alphabetic column letters.
	ErrInvalidColumn = errors.New("column must be a non-empty string of letters A-Z")
	// ErrInvalidIndex is returned for column numbers below 1.
	ErrInvalidIndex = errors.New("column number must be positive")
)

// ToNumber converts column letters to a column number. Letters are case-insensitive.
func ToNumber(column string) (int, error) {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return 0, ErrInvalidColumn
	}

	n := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
		}
		d := int(r - 'A' + 1)
		if n > (math.MaxInt-d)/26 {
			return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidColumn, column)
		}
		n = n*26 + d
	}
	return n, nil
}

// ToLetters converts a column number to its letters.
func ToLetters(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}

	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// CellRef formats a cell reference such as "B12".
func CellRef(column, row int) (string, error) {
	letters, err := ToLetters(column)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", letters, row), nil
}
