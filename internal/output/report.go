// Package output renders calculation results for the CLI. The engine owns
// the numbers; this package only formats them.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
)

// ReportFormatter renders a single return's breakdown as a plain-text
// report.
type ReportFormatter struct{}

// Format renders the federal breakdown and, when present, the state
// breakdown.
func (rf *ReportFormatter) Format(federal *domain.TaxBreakdown, state *domain.StateBreakdown) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("FEDERAL TAX BREAKDOWN - %d (%s)\n", federal.TaxYear, federal.FilingStatus))
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	writeLine(&sb, "Gross income", federal.GrossIncome)
	writeLine(&sb, "Deduction applied", federal.DeductionApplied)
	writeLine(&sb, "QBI deduction", federal.QBIDeduction)
	writeLine(&sb, "Taxable income", federal.TaxableIncome)
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	writeLine(&sb, "Regular tax", federal.RegularTax)
	writeLine(&sb, "AMT add-on", federal.AMTAddOn)
	writeLine(&sb, "Tax before credits", federal.TaxBeforeCredits)

	if len(federal.CreditsApplied) > 0 {
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString("Credits applied:\n")
		for _, c := range federal.CreditsApplied {
			label := "  " + c.Code
			if c.Refundable {
				label += " (refundable)"
			}
			writeLine(&sb, label, c.Amount.Neg())
		}
	}

	sb.WriteString(strings.Repeat("-", 60) + "\n")
	writeLine(&sb, "Final federal liability", federal.FinalLiability)
	writeLine(&sb, "Withholding", federal.Withholding)
	if federal.RefundOrOwed.IsNegative() {
		writeLine(&sb, "Refund", federal.RefundOrOwed.Abs())
	} else {
		writeLine(&sb, "Amount owed", federal.RefundOrOwed)
	}
	sb.WriteString(fmt.Sprintf("%-38s %20s\n", "Effective rate",
		federal.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%"))
	sb.WriteString(fmt.Sprintf("%-38s %20s\n", "Marginal rate",
		federal.MarginalRate.Mul(decimal.NewFromInt(100)).StringFixed(0)+"%"))

	if state != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("STATE TAX BREAKDOWN - %s (%s)\n", state.State, state.RuleType))
		sb.WriteString(strings.Repeat("=", 60) + "\n")
		writeLine(&sb, "State taxable income", state.TaxableIncome)
		writeLine(&sb, "Base tax", state.BaseTax)
		writeLine(&sb, "Surtax", state.Surtax)
		writeLine(&sb, "Local tax", state.LocalTax)
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		writeLine(&sb, "Total state tax", state.TotalTax)
	}

	return sb.String()
}

func writeLine(sb *strings.Builder, label string, amount decimal.Decimal) {
	sb.WriteString(fmt.Sprintf("%-38s %20s\n", label, "$"+amount.StringFixed(2)))
}
