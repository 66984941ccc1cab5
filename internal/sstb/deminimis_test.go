package sstb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxfolio/taxengine/internal/domain"
)

func testDeMinimisRules() domain.DeMinimisRules {
	return domain.DeMinimisRules{
		ReceiptsPctBelowBreak: decimal.RequireFromString("0.10"),
		ReceiptsPctAboveBreak: decimal.RequireFromString("0.05"),
		TaxableIncomeBreak:    decimal.NewFromInt(500000),
	}
}

func sstbResult() Result {
	return Result{Category: CategoryConsulting, IsSSTB: true, Method: MethodNameKeyword}
}

func TestDeMinimisThresholdInclusive(t *testing.T) {
	rules := testDeMinimisRules()
	ti := decimal.NewFromInt(500000)
	total := decimal.NewFromInt(100000)

	// Exactly 10% of receipts, taxable income exactly at the break: the
	// lower-income 10% threshold applies and the boundary is inclusive.
	res := ApplyDeMinimis(sstbResult(), decimal.NewFromInt(10000), total, ti, rules)
	assert.False(t, res.IsSSTB)
	assert.Equal(t, MethodDeMinimis, res.Method)
	assert.Equal(t, CategoryNone, res.Category)

	// One cent over the line keeps the SSTB classification.
	res = ApplyDeMinimis(sstbResult(), decimal.RequireFromString("10000.01"), total, ti, rules)
	assert.True(t, res.IsSSTB)
	assert.Equal(t, MethodNameKeyword, res.Method)
}

func TestDeMinimisTighterThresholdAboveBreak(t *testing.T) {
	rules := testDeMinimisRules()
	ti := decimal.NewFromInt(600000)
	total := decimal.NewFromInt(100000)

	// 8% of receipts clears the 10% threshold but not the 5% one.
	res := ApplyDeMinimis(sstbResult(), decimal.NewFromInt(8000), total, ti, rules)
	assert.True(t, res.IsSSTB)

	res = ApplyDeMinimis(sstbResult(), decimal.NewFromInt(5000), total, ti, rules)
	assert.False(t, res.IsSSTB)
}

func TestDeMinimisSmallServiceShare(t *testing.T) {
	rules := testDeMinimisRules()

	// A business with an 8% SSTB receipt share at $150k taxable income is
	// treated as non-SSTB.
	res := ApplyDeMinimis(sstbResult(), decimal.NewFromInt(8000), decimal.NewFromInt(100000),
		decimal.NewFromInt(150000), rules)
	assert.False(t, res.IsSSTB)
	assert.Equal(t, MethodDeMinimis, res.Method)
}

func TestDeMinimisZeroReceiptsKeepsClassification(t *testing.T) {
	rules := testDeMinimisRules()
	res := ApplyDeMinimis(sstbResult(), decimal.Zero, decimal.Zero,
		decimal.NewFromInt(150000), rules)
	assert.True(t, res.IsSSTB, "undefined ratio must not flip the classification")
	assert.Equal(t, MethodNameKeyword, res.Method)
}

func TestDeMinimisNonSSTBUntouched(t *testing.T) {
	res := Result{Category: CategoryNone, IsSSTB: false, Method: MethodDefault}
	got := ApplyDeMinimis(res, decimal.NewFromInt(1000), decimal.NewFromInt(100000),
		decimal.NewFromInt(150000), testDeMinimisRules())
	assert.Equal(t, res, got)
}
