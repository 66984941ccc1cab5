package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", set.BaseName))
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Federal Tax",
		numWidth, "State Tax",
		numWidth, "Total Tax",
		numWidth, "Eff. Rate"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(&set.Base, nameWidth, numWidth))
	if len(set.Alternatives) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range set.Alternatives {
			sb.WriteString(tf.formatRow(&set.Alternatives[i], nameWidth, numWidth))
		}
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(set.Alternatives) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range set.Alternatives {
			symbol := "+"
			if alt.TotalTaxDiff.IsNegative() {
				symbol = "-"
			}
			sb.WriteString(fmt.Sprintf("%-*s %s$%s total tax vs base\n",
				nameWidth, alt.Name, symbol, formatAmount(alt.TotalTaxDiff.Abs())))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *Result, nameWidth, numWidth int) string {
	stateTax := decimal.Zero
	if r.State != nil {
		stateTax = r.State.TotalTax
	}
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, r.Name,
		numWidth, "$"+formatAmount(r.Federal.FinalLiability),
		numWidth, "$"+formatAmount(stateTax),
		numWidth, "$"+formatAmount(r.TotalTax),
		numWidth, r.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%")
}

// formatAmount renders a decimal with thousands separators and two decimal
// places.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteRune(',')
		}
		sb.WriteRune(r)
	}

	out := sb.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}
