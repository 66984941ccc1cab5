// Package calculation implements the federal tax computation core: the
// progressive bracket engine, the section 199A QBI resolver, the AMT
// worksheet, the credit ordering engine, and the orchestrator that composes
// them into a TaxBreakdown. Every computation is a pure function of the
// return and the tax-year config; nothing here performs I/O or holds state
// between invocations, so the engine is safe to call concurrently.
package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/money"
)

// CalculationEngine orchestrates the federal calculation pipeline.
type CalculationEngine struct {
	Credits *OrderingEngine
	Logger  Logger
}

// NewCalculationEngine creates an engine with the standard credit set and a
// no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Credits: NewOrderingEngine(),
		Logger:  NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CalculateFederal computes the complete federal breakdown for one return.
// It validates the input, derives taxable income, runs the bracket engine,
// the QBI resolver and the AMT worksheet, sequences credits, and assembles
// the rounded TaxBreakdown. Identical inputs always produce identical
// output.
func (ce *CalculationEngine) CalculateFederal(ret *domain.TaxReturn, cfg *domain.TaxYearConfig) (*domain.TaxBreakdown, error) {
	if err := ValidateReturn(ret); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, &domain.ConfigurationError{Detail: "tax year config is required"}
	}
	if cfg.Year != ret.TaxYear {
		return nil, &domain.ConfigurationError{Detail: fmt.Sprintf("config is for tax year %d, return is for %d", cfg.Year, ret.TaxYear)}
	}

	standardDeduction, ok := cfg.FederalTax.StandardDeduction[ret.FilingStatus]
	if !ok {
		return nil, &domain.ConfigurationError{Detail: "standard deduction missing for filing status " + string(ret.FilingStatus)}
	}
	brackets, ok := cfg.FederalTax.Brackets[ret.FilingStatus]
	if !ok || len(brackets) == 0 {
		return nil, &domain.ConfigurationError{Detail: "bracket table missing for filing status " + string(ret.FilingStatus)}
	}

	grossIncome := ret.GrossIncome()
	agi := grossIncome

	deduction := standardDeduction
	if ret.Deductions.Itemize {
		deduction = ret.Deductions.Itemized.Total()
	}
	taxableBeforeQBI := money.ZeroFloor(agi.Sub(deduction))

	qbiRes, err := NewQBICalculator(cfg.QBI).Compute(ret, taxableBeforeQBI)
	if err != nil {
		return nil, err
	}
	taxableIncome := money.ZeroFloor(taxableBeforeQBI.Sub(qbiRes.Deduction))
	ce.Logger.Debugf("taxable income %s after QBI deduction %s", taxableIncome, qbiRes.Deduction)

	regularTax := TaxFromBrackets(taxableIncome, brackets)

	amtRes, err := NewAMTCalculator(cfg.AMT).Compute(ret, taxableIncome, regularTax)
	if err != nil {
		return nil, err
	}
	taxBeforeCredits := regularTax.Add(amtRes.AddOn)

	creditOutcome, err := ce.Credits.Apply(CreditContext{
		Return:        ret,
		Rules:         cfg.Credits,
		AGI:           agi,
		TaxableIncome: taxableIncome,
		EarnedIncome:  ret.EarnedIncome(),
	}, taxBeforeCredits)
	if err != nil {
		return nil, err
	}

	finalLiability := money.ZeroFloor(taxBeforeCredits.Sub(creditOutcome.Nonrefundable))
	withholding := ret.TotalWithholding()
	refundOrOwed := finalLiability.Sub(creditOutcome.Refundable).Sub(withholding)

	effectiveRate := decimal.Zero
	if grossIncome.GreaterThan(decimal.Zero) {
		effectiveRate, err = money.Div(taxBeforeCredits, grossIncome)
		if err != nil {
			return nil, err
		}
	}

	breakdown := &domain.TaxBreakdown{
		TaxYear:      ret.TaxYear,
		FilingStatus: ret.FilingStatus,

		GrossIncome:      money.RoundCents(grossIncome),
		DeductionApplied: money.RoundCents(deduction),
		QBIDeduction:     money.RoundCents(qbiRes.Deduction),
		TaxableIncome:    money.RoundCents(taxableIncome),

		RegularTax:       money.RoundCents(regularTax),
		AMTAddOn:         money.RoundCents(amtRes.AddOn),
		TaxBeforeCredits: money.RoundCents(taxBeforeCredits),

		TotalCredits:      money.RoundCents(creditOutcome.Nonrefundable),
		RefundableCredits: money.RoundCents(creditOutcome.Refundable),

		FinalLiability: money.RoundCents(finalLiability),
		Withholding:    money.RoundCents(withholding),
		RefundOrOwed:   money.RoundCents(refundOrOwed),

		EffectiveRate: effectiveRate.Round(4),
		MarginalRate:  MarginalRate(taxableIncome, brackets),
	}
	for _, line := range creditOutcome.Lines {
		breakdown.CreditsApplied = append(breakdown.CreditsApplied, domain.CreditApplied{
			Code:       line.Code,
			Amount:     money.RoundCents(line.Amount),
			Refundable: line.Refundable,
		})
	}

	return breakdown, nil
}
