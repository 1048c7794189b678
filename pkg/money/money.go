// Package money represents rupee amounts as integer paise.
//
// All arithmetic stays in int64 minor units so repeated multiply/sum over
// line items never accumulates floating point error. Formatting divides by
// 100 only at the display boundary.
package money

import (
	"errors"
	"strconv"
)

// Paise is a currency amount in minor units (100 paise = 1 rupee).
type Paise int64

// ErrInvalidQuantity is returned when a line quantity is negative.
var ErrInvalidQuantity = errors.New("invalid_quantity")

// Multiply computes rate * quantity for a line item.
func Multiply(rate Paise, quantity int64) (Paise, error) {
	if quantity < 0 {
		return 0, ErrInvalidQuantity
	}
	return rate * Paise(quantity), nil
}

// Sum adds up a sequence of amounts.
func Sum(amounts ...Paise) Paise {
	var total Paise
	for _, a := range amounts {
		total += a
	}
	return total
}

// Display formats the amount in major units with fixed two decimals and no
// separators or currency symbol. 37035 paise renders as "370.35".
func (p Paise) Display() string {
	return strconv.FormatFloat(float64(p)/100, 'f', 2, 64)
}

// Split breaks the amount into whole rupees and the paise remainder.
func (p Paise) Split() (rupees int64, paise int64) {
	return int64(p) / 100, int64(p) % 100
}
