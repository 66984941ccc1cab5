package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
)

// BracketSegment is the portion of taxable income falling inside one
// marginal bracket, with the tax it generates. The engine total is always
// the exact sum of its segments.
type BracketSegment struct {
	Lower  decimal.Decimal
	Upper  decimal.Decimal
	Rate   decimal.Decimal
	Amount decimal.Decimal
	Tax    decimal.Decimal
}

// BracketSegments splits taxable income across a lower-bound bracket table.
// Brackets must be sorted ascending by Lower; the last bracket is open-ended.
// Zero or negative taxable income yields no segments.
func BracketSegments(taxable decimal.Decimal, brackets []domain.TaxBracket) []BracketSegment {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	var segments []BracketSegment
	for i, b := range brackets {
		if taxable.LessThanOrEqual(b.Lower) {
			break
		}
		upper := taxable
		if i+1 < len(brackets) {
			upper = decimal.Min(taxable, brackets[i+1].Lower)
		}
		amount := upper.Sub(b.Lower)
		segments = append(segments, BracketSegment{
			Lower:  b.Lower,
			Upper:  upper,
			Rate:   b.Rate,
			Amount: amount,
			Tax:    amount.Mul(b.Rate),
		})
	}
	return segments
}

// TaxFromBrackets computes progressive tax via cumulative marginal-rate
// summation. Continuity at every bracket boundary follows from the
// lower-bound representation: each segment's ceiling is the next segment's
// floor.
func TaxFromBrackets(taxable decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	tax := decimal.Zero
	for _, seg := range BracketSegments(taxable, brackets) {
		tax = tax.Add(seg.Tax)
	}
	return tax
}

// MarginalRate returns the rate of the bracket the last dollar of taxable
// income falls in, zero when there is no taxable income.
func MarginalRate(taxable decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := decimal.Zero
	for _, b := range brackets {
		if taxable.GreaterThan(b.Lower) {
			rate = b.Rate
		}
	}
	return rate
}
