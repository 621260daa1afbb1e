package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ToAtomicUnits converts a display-unit amount to atomic units, flooring
// any remainder below one atomic unit. Non-numeric input is a validation
// error.
func (c *Client) ToAtomicUnits(display string) (int64, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return 0, &ValidationError{
			Param:  "amount",
			Reason: fmt.Sprintf("%q is not a number", display),
		}
	}
	return c.atomicFromDecimal(d), nil
}

func (c *Client) atomicFromDecimal(d decimal.Decimal) int64 {
	return d.Mul(c.divisor).Floor().IntPart()
}

// FromAtomicUnits converts an atomic amount from the wire to display units.
// A value that already carries a fractional part is returned unchanged: the
// daemon never sends fractional atomic amounts, so such a value has already
// been converted.
func (c *Client) FromAtomicUnits(v json.Number) (decimal.Decimal, error) {
	s := v.String()
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{
			Param:  "amount",
			Reason: fmt.Sprintf("%q is not a number", s),
		}
	}
	if strings.Contains(s, ".") {
		return d, nil
	}
	return d.Div(c.divisor), nil
}

// NewDestination builds a transfer destination, converting the display-unit
// amount to atomic units.
func (c *Client) NewDestination(address string, display decimal.Decimal) Destination {
	return Destination{
		Address: address,
		Amount:  c.atomicFromDecimal(display),
	}
}
