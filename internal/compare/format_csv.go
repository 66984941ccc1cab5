package compare

import (
	"encoding/csv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison results as CSV for spreadsheet import.
type CSVFormatter struct{}

// Format renders the comparison set with one row per scenario.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"scenario", "federal_tax", "amt_add_on", "qbi_deduction",
		"state_tax", "total_tax", "effective_rate", "total_tax_diff",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	rows := append([]Result{set.Base}, set.Alternatives...)
	for _, r := range rows {
		stateTax := decimal.Zero
		if r.State != nil {
			stateTax = r.State.TotalTax
		}
		record := []string{
			r.Name,
			r.Federal.FinalLiability.StringFixed(2),
			r.Federal.AMTAddOn.StringFixed(2),
			r.Federal.QBIDeduction.StringFixed(2),
			stateTax.StringFixed(2),
			r.TotalTax.StringFixed(2),
			r.EffectiveRate.StringFixed(4),
			r.TotalTaxDiff.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
