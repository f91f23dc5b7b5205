package allocconfig

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Split maps each category to its share of a total.
type Split map[Category]decimal.Decimal

// Total sums the split amounts.
func (s Split) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range s {
		total = total.Add(amount)
	}
	return total
}

// centPlaces is the precision every amount is stored and audited at
const centPlaces = 2

// ParseAmount parses a non-negative decimal string with at most two
// significant decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := checkAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func checkAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d)
	}
	if !d.Equal(d.Truncate(centPlaces)) {
		return fmt.Errorf("%w: %s has sub-cent precision", ErrInvalidAmount, d)
	}
	return nil
}

// CalculateSplit divides total by the configured percentages. Each share is
// floored to cents and whatever is left over goes to the treasury, so the
// shares always add up to exactly total. Totals below zero or with sub-cent
// precision are rejected, since their shares could not be stored exactly.
func (c *Config) CalculateSplit(total decimal.Decimal) (Split, error) {
	if err := checkAmount(total); err != nil {
		return nil, err
	}

	split := make(Split, len(c.percentages))
	allocated := decimal.Zero
	for _, cat := range Categories() {
		share := total.Mul(decimal.NewFromInt(int64(c.percentages[cat]))).Shift(-2).RoundFloor(centPlaces)
		split[cat] = share
		allocated = allocated.Add(share)
	}

	remainder := total.Sub(allocated)
	split[Treasury] = split[Treasury].Add(remainder)
	return split, nil
}
