package compare

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/taxengine/internal/calculation"
	"github.com/taxfolio/taxengine/internal/config"
	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/statetax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testEngine() *Engine {
	cfg := &domain.TaxYearConfig{
		Year: 2025,
		FederalTax: domain.FederalTaxRules{
			StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle: dec("15000"),
			},
			Brackets: map[domain.FilingStatus][]domain.TaxBracket{
				domain.FilingSingle: {
					{Lower: dec("0"), Rate: dec("0.10")},
					{Lower: dec("11925"), Rate: dec("0.12")},
				},
			},
		},
		QBI: domain.QBIRules{
			DeductionRate: dec("0.20"),
			LowerThreshold: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle: dec("197300"),
			},
			UpperThreshold: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle: dec("247300"),
			},
		},
		AMT: domain.AMTRules{
			Exemption: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle: dec("88100"),
			},
			PhaseOutThreshold: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle: dec("626350"),
			},
			PhaseOutRate: dec("0.25"),
			TierThreshold: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle: dec("239100"),
			},
			LowRate:  dec("0.26"),
			HighRate: dec("0.28"),
		},
	}
	states := statetax.NewRegistry([]domain.StateConfig{
		{Code: "TX", Name: "Texas", RuleType: domain.StateRuleNone},
		{Code: "PA", Name: "Pennsylvania", RuleType: domain.StateRuleFlat, FlatRate: dec("0.0307")},
	})
	return NewEngine(calculation.NewCalculationEngine(), config.NewTaxYearStore(cfg), states)
}

func scenario(name, wages, state string) Scenario {
	return Scenario{
		Name: name,
		Return: &domain.TaxReturn{
			TaxpayerName: "Jordan Avery",
			FilingStatus: domain.FilingSingle,
			TaxYear:      2025,
			State:        state,
			Wages:        []domain.WageIncome{{Employer: "Acme", Amount: dec(wages)}},
		},
	}
}

func TestCompare(t *testing.T) {
	engine := testEngine()
	scenarios := []Scenario{
		scenario("base", "50000", "PA"),
		scenario("raise", "60000", "PA"),
		scenario("move_to_texas", "50000", "TX"),
	}

	set, err := engine.Compare(context.Background(), scenarios)
	require.NoError(t, err)
	assert.Equal(t, "base", set.BaseName)
	require.Len(t, set.Alternatives, 2)

	// Base: federal 3961.50 on 35000 taxable plus 3.07% of 50000 gross.
	assert.True(t, set.Base.TotalTax.Equal(dec("5496.5")), "got %s", set.Base.TotalTax)

	raise := set.Alternatives[0]
	assert.Equal(t, "raise", raise.Name)
	assert.True(t, raise.TotalTax.GreaterThan(set.Base.TotalTax))
	assert.True(t, raise.TotalTaxDiff.Equal(raise.TotalTax.Sub(set.Base.TotalTax)))

	// Dropping the state tax is the only change in the relocation scenario.
	texas := set.Alternatives[1]
	assert.Equal(t, "move_to_texas", texas.Name)
	assert.True(t, texas.TotalTaxDiff.Equal(dec("-1535")), "got %s", texas.TotalTaxDiff)
	require.NotNil(t, texas.State)
	assert.True(t, texas.State.TotalTax.IsZero())
}

func TestCompareDeterministicOrder(t *testing.T) {
	engine := testEngine()
	scenarios := []Scenario{
		scenario("base", "50000", ""),
		scenario("a", "51000", ""),
		scenario("b", "52000", ""),
		scenario("c", "53000", ""),
	}

	for i := 0; i < 5; i++ {
		set, err := engine.Compare(context.Background(), scenarios)
		require.NoError(t, err)
		require.Len(t, set.Alternatives, 3)
		assert.Equal(t, "a", set.Alternatives[0].Name)
		assert.Equal(t, "b", set.Alternatives[1].Name)
		assert.Equal(t, "c", set.Alternatives[2].Name)
	}
}

func TestCompareNoScenarios(t *testing.T) {
	_, err := testEngine().Compare(context.Background(), nil)
	assert.Error(t, err)
}

func TestCompareFailureNamesScenario(t *testing.T) {
	engine := testEngine()
	bad := scenario("future", "50000", "")
	bad.Return.TaxYear = 2042

	_, err := engine.Compare(context.Background(), []Scenario{scenario("base", "50000", ""), bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "future")

	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestCompareCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testEngine().Compare(ctx, []Scenario{scenario("base", "50000", "")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - name: base
    return:
      taxpayer_name: Jordan Avery
      filing_status: single
      tax_year: 2025
      wages:
        - employer: Acme
          amount: "50000"
  - name: raise
    return:
      taxpayer_name: Jordan Avery
      filing_status: single
      tax_year: 2025
      wages:
        - employer: Acme
          amount: "60000"
`), 0o644))

	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "base", scenarios[0].Name)
	require.NotNil(t, scenarios[1].Return)
	assert.True(t, scenarios[1].Return.TotalWages().Equal(dec("60000")))
}

func TestLoadScenariosRejectsNameless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - return:
      filing_status: single
      tax_year: 2025
`), 0o644))

	_, err := LoadScenarios(path)
	assert.Error(t, err)
}
