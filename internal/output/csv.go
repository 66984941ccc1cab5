package output

import (
	"encoding/csv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
)

// CSVFormatter renders one breakdown as a two-column CSV of line items.
type CSVFormatter struct{}

// Format writes label/amount rows for the federal and optional state
// breakdowns.
func (cf *CSVFormatter) Format(federal *domain.TaxBreakdown, state *domain.StateBreakdown) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][2]interface{}{
		{"gross_income", federal.GrossIncome},
		{"deduction_applied", federal.DeductionApplied},
		{"qbi_deduction", federal.QBIDeduction},
		{"taxable_income", federal.TaxableIncome},
		{"regular_tax", federal.RegularTax},
		{"amt_add_on", federal.AMTAddOn},
		{"tax_before_credits", federal.TaxBeforeCredits},
		{"total_credits", federal.TotalCredits},
		{"refundable_credits", federal.RefundableCredits},
		{"final_liability", federal.FinalLiability},
		{"withholding", federal.Withholding},
		{"refund_or_owed", federal.RefundOrOwed},
	}

	if err := w.Write([]string{"line", "amount"}); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write([]string{row[0].(string), row[1].(decimal.Decimal).StringFixed(2)}); err != nil {
			return "", err
		}
	}
	for _, c := range federal.CreditsApplied {
		if err := w.Write([]string{"credit_" + c.Code, c.Amount.StringFixed(2)}); err != nil {
			return "", err
		}
	}
	if state != nil {
		stateRows := [][2]interface{}{
			{"state_taxable_income", state.TaxableIncome},
			{"state_base_tax", state.BaseTax},
			{"state_surtax", state.Surtax},
			{"state_local_tax", state.LocalTax},
			{"state_total_tax", state.TotalTax},
		}
		for _, row := range stateRows {
			if err := w.Write([]string{row[0].(string), row[1].(decimal.Decimal).StringFixed(2)}); err != nil {
				return "", err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
