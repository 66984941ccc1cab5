package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/taxengine/internal/domain"
)

func validReturn() *domain.TaxReturn {
	return &domain.TaxReturn{
		TaxpayerName: "Jordan Avery",
		FilingStatus: domain.FilingSingle,
		TaxYear:      2025,
		Wages:        []domain.WageIncome{{Employer: "Acme", Amount: dec("50000"), Withholding: dec("6000")}},
	}
}

func TestValidateReturnAccepts(t *testing.T) {
	assert.NoError(t, ValidateReturn(validReturn()))
}

func TestValidateReturnRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.TaxReturn)
		field  string
	}{
		{"missing tax year", func(r *domain.TaxReturn) { r.TaxYear = 0 }, "tax_year"},
		{"unknown filing status", func(r *domain.TaxReturn) { r.FilingStatus = "quadruple" }, "filing_status"},
		{"negative wages", func(r *domain.TaxReturn) { r.Wages[0].Amount = dec("-1") }, "wages[0].amount"},
		{"negative withholding", func(r *domain.TaxReturn) { r.Wages[0].Withholding = dec("-1") }, "wages[0].withholding"},
		{"business missing name", func(r *domain.TaxReturn) {
			r.Businesses = []domain.BusinessIncome{{NetIncome: dec("100")}}
		}, "businesses[0].name"},
		{"sstb receipts exceed gross", func(r *domain.TaxReturn) {
			r.Businesses = []domain.BusinessIncome{{
				Name: "Acme", GrossReceipts: dec("100"), SSTBGrossReceipts: dec("200"),
			}}
		}, "businesses[0].sstb_gross_receipts"},
		{"passthrough missing name", func(r *domain.TaxReturn) {
			r.Passthroughs = []domain.PassthroughIncome{{OrdinaryIncome: dec("100")}}
		}, "passthroughs[0].entity_name"},
		{"preference missing code", func(r *domain.TaxReturn) {
			r.AMTPreferences = []domain.PreferenceItem{{Amount: dec("100")}}
		}, "amt_preferences[0].code"},
		{"negative preference amount", func(r *domain.TaxReturn) {
			r.AMTPreferences = []domain.PreferenceItem{{Code: domain.PrefISOExercise, Amount: dec("-5")}}
		}, "amt_preferences[0].amount"},
		{"negative children", func(r *domain.TaxReturn) { r.Credits.QualifyingChildren = -1 }, "credits.qualifying_children"},
		{"negative foreign tax", func(r *domain.TaxReturn) { r.Credits.ForeignTaxPaid = dec("-10") }, "credits.foreign_tax_paid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ret := validReturn()
			tt.mutate(ret)

			err := ValidateReturn(ret)
			require.Error(t, err)

			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}

func TestValidateReturnNil(t *testing.T) {
	var valErr *domain.ValidationError
	require.ErrorAs(t, ValidateReturn(nil), &valErr)
}
