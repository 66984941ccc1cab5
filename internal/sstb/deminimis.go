package sstb

import (
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/money"
)

// ApplyDeMinimis applies the de-minimis exception to a classified business:
// when SSTB-derived gross receipts are at or below the applicable percentage
// of total gross receipts, the business is treated as non-SSTB regardless of
// its classification. The percentage depends on taxable income relative to
// the configured break, and the boundary is inclusive on the threshold side.
//
// A business with zero total receipts keeps its classification; the ratio is
// undefined and the exception cannot apply.
func ApplyDeMinimis(res Result, sstbReceipts, totalReceipts, taxableIncome decimal.Decimal, rules domain.DeMinimisRules) Result {
	if !res.IsSSTB {
		return res
	}
	if totalReceipts.LessThanOrEqual(decimal.Zero) {
		return res
	}

	threshold := rules.ReceiptsPctBelowBreak
	if taxableIncome.GreaterThan(rules.TaxableIncomeBreak) {
		threshold = rules.ReceiptsPctAboveBreak
	}

	ratio, err := money.Div(sstbReceipts, totalReceipts)
	if err != nil {
		return res
	}
	if ratio.LessThanOrEqual(threshold) {
		return Result{Category: CategoryNone, IsSSTB: false, Method: MethodDeMinimis}
	}
	return res
}
