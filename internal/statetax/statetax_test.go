package statetax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/taxengine/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func stateReturn(status domain.FilingStatus, wages, state string) *domain.TaxReturn {
	return &domain.TaxReturn{
		TaxpayerName: "Morgan Reyes",
		FilingStatus: status,
		TaxYear:      2025,
		State:        state,
		Wages:        []domain.WageIncome{{Employer: "Acme", Amount: dec(wages)}},
	}
}

func testStateConfigs() []domain.StateConfig {
	return []domain.StateConfig{
		{Code: "TX", Name: "Texas", RuleType: domain.StateRuleNone},
		{Code: "PA", Name: "Pennsylvania", RuleType: domain.StateRuleFlat, FlatRate: dec("0.0307")},
		{
			Code: "IL", Name: "Illinois", RuleType: domain.StateRuleFlat,
			FlatRate: dec("0.0495"), StandardDeduction: dec("2775"),
		},
		{
			Code: "MD", Name: "Maryland", RuleType: domain.StateRuleFlat,
			FlatRate: dec("0.0475"), StandardDeduction: dec("2550"), LocalRate: dec("0.032"),
		},
		{
			Code: "OH", Name: "Ohio", RuleType: domain.StateRuleProgressive,
			SharedBrackets: []domain.TaxBracket{
				{Lower: dec("0"), Rate: dec("0")},
				{Lower: dec("26050"), Rate: dec("0.0275")},
				{Lower: dec("100000"), Rate: dec("0.035")},
			},
		},
		{
			Code: "CA", Name: "California", RuleType: domain.StateRuleProgressive,
			SharedBrackets: []domain.TaxBracket{
				{Lower: dec("0"), Rate: dec("0.01")},
				{Lower: dec("10756"), Rate: dec("0.02")},
			},
			Surtax: &domain.SurtaxRule{Threshold: dec("1000000"), Rate: dec("0.01")},
		},
	}
}

func TestNoIncomeTaxState(t *testing.T) {
	r := NewRegistry(testStateConfigs())

	bd, err := r.CalculateFor(stateReturn(domain.FilingMarriedJointly, "250000", "TX"))
	require.NoError(t, err)
	assert.Equal(t, "TX", bd.State)
	assert.Equal(t, domain.StateRuleNone, bd.RuleType)
	assert.True(t, bd.TotalTax.IsZero())
	assert.True(t, bd.BaseTax.IsZero())
}

func TestFlatRateState(t *testing.T) {
	r := NewRegistry(testStateConfigs())

	bd, err := r.CalculateFor(stateReturn(domain.FilingSingle, "100000", "PA"))
	require.NoError(t, err)
	assertDec(t, "100000", bd.TaxableIncome)
	assertDec(t, "3070", bd.BaseTax)
	assertDec(t, "3070", bd.TotalTax)
}

func TestFlatRateStateWithDeduction(t *testing.T) {
	r := NewRegistry(testStateConfigs())

	bd, err := r.CalculateFor(stateReturn(domain.FilingSingle, "100000", "IL"))
	require.NoError(t, err)
	assertDec(t, "97225", bd.TaxableIncome)
	assertDec(t, "4812.64", bd.BaseTax)
}

func TestLocalRateAddOn(t *testing.T) {
	r := NewRegistry(testStateConfigs())

	bd, err := r.CalculateFor(stateReturn(domain.FilingSingle, "100000", "MD"))
	require.NoError(t, err)
	assertDec(t, "97450", bd.TaxableIncome)
	assertDec(t, "4628.88", bd.BaseTax)
	assertDec(t, "3118.4", bd.LocalTax)
	assertDec(t, "7747.28", bd.TotalTax)
}

func TestProgressiveState(t *testing.T) {
	r := NewRegistry(testStateConfigs())

	// Zero-rate first bracket, then 2.75% on the excess over 26050.
	bd, err := r.CalculateFor(stateReturn(domain.FilingSingle, "50000", "OH"))
	require.NoError(t, err)
	assertDec(t, "658.63", bd.BaseTax)
}

func TestSurtaxAboveThreshold(t *testing.T) {
	r := NewRegistry(testStateConfigs())

	bd, err := r.CalculateFor(stateReturn(domain.FilingSingle, "1200000", "CA"))
	require.NoError(t, err)
	assertDec(t, "2000", bd.Surtax, "1% of the 200000 excess over one million")

	bd, err = r.CalculateFor(stateReturn(domain.FilingSingle, "500000", "CA"))
	require.NoError(t, err)
	assert.True(t, bd.Surtax.IsZero())
}

func TestUnknownJurisdiction(t *testing.T) {
	r := NewRegistry(testStateConfigs())

	_, err := r.CalculateFor(stateReturn(domain.FilingSingle, "50000", "ZZ"))
	require.Error(t, err)

	var jErr *domain.UnsupportedJurisdictionError
	require.ErrorAs(t, err, &jErr)
	assert.Equal(t, "ZZ", jErr.Code)
}

func TestUnknownRuleType(t *testing.T) {
	cfg := domain.StateConfig{Code: "XX", RuleType: "lump_sum"}

	_, err := Calculate(stateReturn(domain.FilingSingle, "50000", "XX"), &cfg)
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestProgressiveStateMissingBrackets(t *testing.T) {
	cfg := domain.StateConfig{Code: "XX", RuleType: domain.StateRuleProgressive}

	_, err := Calculate(stateReturn(domain.FilingSingle, "50000", "XX"), &cfg)
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRegistryCodesSorted(t *testing.T) {
	r := NewRegistry(testStateConfigs())
	assert.Equal(t, []string{"CA", "IL", "MD", "OH", "PA", "TX"}, r.Codes())
}

func TestCalculateRejectsInvalidReturn(t *testing.T) {
	r := NewRegistry(testStateConfigs())
	ret := stateReturn(domain.FilingSingle, "50000", "PA")
	ret.FilingStatus = "quadruple"

	_, err := r.CalculateFor(ret)
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
}
