package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxfolio/taxengine/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testSingleBrackets is the 2025 single schedule used across the package
// tests.
func testSingleBrackets() []domain.TaxBracket {
	return []domain.TaxBracket{
		{Lower: dec("0"), Rate: dec("0.10")},
		{Lower: dec("11925"), Rate: dec("0.12")},
		{Lower: dec("48475"), Rate: dec("0.22")},
		{Lower: dec("103350"), Rate: dec("0.24")},
		{Lower: dec("197300"), Rate: dec("0.32")},
		{Lower: dec("250525"), Rate: dec("0.35")},
		{Lower: dec("626350"), Rate: dec("0.37")},
	}
}

func testJointBrackets() []domain.TaxBracket {
	return []domain.TaxBracket{
		{Lower: dec("0"), Rate: dec("0.10")},
		{Lower: dec("23850"), Rate: dec("0.12")},
		{Lower: dec("96950"), Rate: dec("0.22")},
		{Lower: dec("206700"), Rate: dec("0.24")},
		{Lower: dec("394600"), Rate: dec("0.32")},
		{Lower: dec("501050"), Rate: dec("0.35")},
		{Lower: dec("751600"), Rate: dec("0.37")},
	}
}

func testQBIRules() domain.QBIRules {
	return domain.QBIRules{
		DeductionRate:     dec("0.20"),
		WageLimitRate:     dec("0.50"),
		WageUBIALimitRate: dec("0.25"),
		UBIALimitRate:     dec("0.025"),
		LowerThreshold: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:         dec("197300"),
			domain.FilingMarriedJointly: dec("394600"),
		},
		UpperThreshold: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:         dec("247300"),
			domain.FilingMarriedJointly: dec("494600"),
		},
		DeMinimis: domain.DeMinimisRules{
			ReceiptsPctBelowBreak: dec("0.10"),
			ReceiptsPctAboveBreak: dec("0.05"),
			TaxableIncomeBreak:    dec("500000"),
		},
	}
}

func testAMTRules() domain.AMTRules {
	return domain.AMTRules{
		Exemption: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:         dec("88100"),
			domain.FilingMarriedJointly: dec("137000"),
		},
		PhaseOutThreshold: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:         dec("626350"),
			domain.FilingMarriedJointly: dec("1252700"),
		},
		PhaseOutRate: dec("0.25"),
		TierThreshold: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:         dec("239100"),
			domain.FilingMarriedJointly: dec("239100"),
		},
		LowRate:  dec("0.26"),
		HighRate: dec("0.28"),
	}
}

func testCreditRules() domain.CreditRules {
	return domain.CreditRules{
		NonrefundableOrder: []string{CreditForeignTax, CreditChildTax, CreditEducation, CreditSaver},
		RefundableOrder:    []string{CreditEITC, CreditAdditionalChildTax},
		ChildTaxCredit: domain.ChildTaxCreditRules{
			PerChild:          dec("2000"),
			PerOtherDependent: dec("500"),
			PhaseOutThreshold: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle:         dec("200000"),
				domain.FilingMarriedJointly: dec("400000"),
			},
			PhaseOutRate:       dec("0.05"),
			RefundablePerChild: dec("1700"),
			EarnedIncomeFloor:  dec("2500"),
			EarnedIncomeRate:   dec("0.15"),
		},
		Education: domain.EducationRules{
			Rate:           dec("0.20"),
			ExpenseCeiling: dec("10000"),
		},
		Saver: domain.SaverRules{
			Rate:                dec("0.10"),
			ContributionCeiling: dec("2000"),
			AGILimit: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle:         dec("39500"),
				domain.FilingMarriedJointly: dec("79000"),
			},
		},
		EITC: domain.EITCRules{
			ByChildren: map[int]domain.EITCParams{
				0: {PhaseInRate: dec("0.0765"), MaxCredit: dec("649"), PhaseOutThreshold: dec("10620"), PhaseOutRate: dec("0.0765")},
				1: {PhaseInRate: dec("0.34"), MaxCredit: dec("4328"), PhaseOutThreshold: dec("23350"), PhaseOutRate: dec("0.1598")},
				2: {PhaseInRate: dec("0.40"), MaxCredit: dec("7152"), PhaseOutThreshold: dec("23350"), PhaseOutRate: dec("0.2106")},
				3: {PhaseInRate: dec("0.45"), MaxCredit: dec("8046"), PhaseOutThreshold: dec("23350"), PhaseOutRate: dec("0.2106")},
			},
		},
	}
}

func testTaxYearConfig() *domain.TaxYearConfig {
	return &domain.TaxYearConfig{
		Year: 2025,
		FederalTax: domain.FederalTaxRules{
			StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle:         dec("15000"),
				domain.FilingMarriedJointly: dec("30000"),
			},
			Brackets: map[domain.FilingStatus][]domain.TaxBracket{
				domain.FilingSingle:         testSingleBrackets(),
				domain.FilingMarriedJointly: testJointBrackets(),
			},
		},
		QBI:     testQBIRules(),
		AMT:     testAMTRules(),
		Credits: testCreditRules(),
	}
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}
