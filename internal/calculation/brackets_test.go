package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxFromBrackets(t *testing.T) {
	brackets := testSingleBrackets()

	// 11925 x 10% + 23075 x 12% for $35,000 taxable.
	assertDec(t, "3961.5", TaxFromBrackets(dec("35000"), brackets))

	// Entirely inside the first bracket.
	assertDec(t, "500", TaxFromBrackets(dec("5000"), brackets))

	// Top bracket: fixed tax through 626350 plus 37% of the excess.
	// 1192.50 + 4386 + 12072.50 + 22548 + 17032 + 131538.75 + 27250.50.
	assertDec(t, "216020.25", TaxFromBrackets(dec("700000"), brackets))
}

func TestTaxFromBracketsZeroAndNegative(t *testing.T) {
	brackets := testSingleBrackets()
	assert.True(t, TaxFromBrackets(decimal.Zero, brackets).IsZero())
	assert.True(t, TaxFromBrackets(dec("-1500"), brackets).IsZero())
}

func TestBracketContinuityAtBoundaries(t *testing.T) {
	brackets := testSingleBrackets()
	cent := dec("0.01")

	for _, b := range brackets[1:] {
		below := TaxFromBrackets(b.Lower.Sub(cent), brackets)
		at := TaxFromBrackets(b.Lower, brackets)
		diff := at.Sub(below)

		assert.True(t, diff.GreaterThanOrEqual(decimal.Zero),
			"tax must not decrease crossing into the %s bracket", b.Rate)
		assert.True(t, diff.LessThanOrEqual(cent.Mul(b.Rate)),
			"one cent of income at the %s boundary changed tax by %s", b.Lower, diff)
	}
}

func TestBracketSegmentsSumToTotal(t *testing.T) {
	brackets := testSingleBrackets()
	taxable := dec("123456.78")

	segments := BracketSegments(taxable, brackets)
	require.NotEmpty(t, segments)

	amountSum := decimal.Zero
	taxSum := decimal.Zero
	for _, seg := range segments {
		amountSum = amountSum.Add(seg.Amount)
		taxSum = taxSum.Add(seg.Tax)
	}
	assert.True(t, amountSum.Equal(taxable), "segment amounts must partition taxable income")
	assert.True(t, taxSum.Equal(TaxFromBrackets(taxable, brackets)))

	for i := 1; i < len(segments); i++ {
		assert.True(t, segments[i].Lower.Equal(segments[i-1].Upper),
			"segment %d floor must equal previous segment ceiling", i)
	}
}

func TestMarginalRate(t *testing.T) {
	brackets := testSingleBrackets()

	assertDec(t, "0.12", MarginalRate(dec("35000"), brackets))
	assertDec(t, "0.10", MarginalRate(dec("11925"), brackets), "boundary dollar stays in the lower bracket")
	assertDec(t, "0.37", MarginalRate(dec("700000"), brackets))
	assert.True(t, MarginalRate(decimal.Zero, brackets).IsZero())
}
