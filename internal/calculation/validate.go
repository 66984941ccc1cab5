package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
)

// ValidateReturn checks a TaxReturn for malformed or missing required
// fields. The first problem found is returned as a *domain.ValidationError;
// the engine never defaults a bad input.
func ValidateReturn(ret *domain.TaxReturn) error {
	if ret == nil {
		return &domain.ValidationError{Field: "tax_return", Reason: "is required"}
	}
	if ret.TaxYear <= 0 {
		return &domain.ValidationError{Field: "tax_year", Reason: "must be a positive year"}
	}
	if !validFilingStatus(ret.FilingStatus) {
		return &domain.ValidationError{Field: "filing_status", Reason: fmt.Sprintf("unknown value %q", ret.FilingStatus)}
	}

	for i, w := range ret.Wages {
		if w.Amount.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("wages[%d].amount", i), Reason: "cannot be negative"}
		}
		if w.Withholding.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("wages[%d].withholding", i), Reason: "cannot be negative"}
		}
	}

	for i, b := range ret.Businesses {
		if b.Name == "" {
			return &domain.ValidationError{Field: fmt.Sprintf("businesses[%d].name", i), Reason: "is required"}
		}
		if b.W2WagesPaid.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("businesses[%d].w2_wages_paid", i), Reason: "cannot be negative"}
		}
		if b.UBIA.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("businesses[%d].ubia", i), Reason: "cannot be negative"}
		}
		if b.GrossReceipts.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("businesses[%d].gross_receipts", i), Reason: "cannot be negative"}
		}
		if b.SSTBGrossReceipts.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("businesses[%d].sstb_gross_receipts", i), Reason: "cannot be negative"}
		}
		if b.SSTBGrossReceipts.GreaterThan(b.GrossReceipts) {
			return &domain.ValidationError{Field: fmt.Sprintf("businesses[%d].sstb_gross_receipts", i), Reason: "cannot exceed gross receipts"}
		}
	}

	for i, p := range ret.Passthroughs {
		if p.EntityName == "" {
			return &domain.ValidationError{Field: fmt.Sprintf("passthroughs[%d].entity_name", i), Reason: "is required"}
		}
		if p.W2WagesShare.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("passthroughs[%d].w2_wages_share", i), Reason: "cannot be negative"}
		}
		if p.UBIAShare.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("passthroughs[%d].ubia_share", i), Reason: "cannot be negative"}
		}
	}

	for i, pref := range ret.AMTPreferences {
		if pref.Code == "" {
			return &domain.ValidationError{Field: fmt.Sprintf("amt_preferences[%d].code", i), Reason: "is required"}
		}
		if pref.Amount.LessThan(decimal.Zero) {
			return &domain.ValidationError{Field: fmt.Sprintf("amt_preferences[%d].amount", i), Reason: "cannot be negative"}
		}
	}

	if ret.Credits.QualifyingChildren < 0 {
		return &domain.ValidationError{Field: "credits.qualifying_children", Reason: "cannot be negative"}
	}
	if ret.Credits.OtherDependents < 0 {
		return &domain.ValidationError{Field: "credits.other_dependents", Reason: "cannot be negative"}
	}
	if ret.Credits.ForeignTaxPaid.LessThan(decimal.Zero) {
		return &domain.ValidationError{Field: "credits.foreign_tax_paid", Reason: "cannot be negative"}
	}

	return nil
}

func validFilingStatus(fs domain.FilingStatus) bool {
	for _, v := range domain.ValidFilingStatuses {
		if fs == v {
			return true
		}
	}
	return false
}
