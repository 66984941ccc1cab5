package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/money"
)

// AMTCalculator runs the alternative minimum tax worksheet: AMTI from
// configurable preference addbacks, exemption with phase-out, and the
// two-tier tentative minimum tax. Intermediates stay unrounded; the caller
// rounds once at the output boundary.
type AMTCalculator struct {
	Rules domain.AMTRules
}

// NewAMTCalculator creates an AMT calculator for one tax year's rules.
func NewAMTCalculator(rules domain.AMTRules) *AMTCalculator {
	return &AMTCalculator{Rules: rules}
}

// AMTResult carries every worksheet line so callers can audit the add-on.
type AMTResult struct {
	AMTI                decimal.Decimal
	PreferenceLines     []domain.PreferenceItem
	Exemption           decimal.Decimal
	ExemptionReduction  decimal.Decimal
	NetExemption        decimal.Decimal
	Base                decimal.Decimal
	TentativeMinimumTax decimal.Decimal
	AddOn               decimal.Decimal
}

// Compute evaluates the AMT track against the regular tax track. The add-on
// is max(0, tentative minimum tax - regular tax), never negative.
func (ac *AMTCalculator) Compute(ret *domain.TaxReturn, taxableIncome, regularTax decimal.Decimal) (AMTResult, error) {
	exemption, ok := ac.Rules.Exemption[ret.FilingStatus]
	if !ok {
		return AMTResult{}, &domain.ConfigurationError{Detail: "amt exemption missing for filing status " + string(ret.FilingStatus)}
	}
	phaseOutThreshold, ok := ac.Rules.PhaseOutThreshold[ret.FilingStatus]
	if !ok {
		return AMTResult{}, &domain.ConfigurationError{Detail: "amt phase-out threshold missing for filing status " + string(ret.FilingStatus)}
	}
	tierThreshold, ok := ac.Rules.TierThreshold[ret.FilingStatus]
	if !ok {
		return AMTResult{}, &domain.ConfigurationError{Detail: "amt tier threshold missing for filing status " + string(ret.FilingStatus)}
	}

	lines := preferenceLines(ret)
	amti := taxableIncome
	for _, line := range lines {
		amti = amti.Add(line.Amount)
	}

	reduction := money.Min(
		exemption,
		ac.Rules.PhaseOutRate.Mul(money.ZeroFloor(amti.Sub(phaseOutThreshold))),
	)
	netExemption := money.ZeroFloor(exemption.Sub(reduction))
	base := money.ZeroFloor(amti.Sub(netExemption))

	var tmt decimal.Decimal
	if base.GreaterThan(tierThreshold) {
		tmt = tierThreshold.Mul(ac.Rules.LowRate).
			Add(base.Sub(tierThreshold).Mul(ac.Rules.HighRate))
	} else {
		tmt = base.Mul(ac.Rules.LowRate)
	}

	return AMTResult{
		AMTI:                amti,
		PreferenceLines:     lines,
		Exemption:           exemption,
		ExemptionReduction:  reduction,
		NetExemption:        netExemption,
		Base:                base,
		TentativeMinimumTax: tmt,
		AddOn:               money.ZeroFloor(tmt.Sub(regularTax)),
	}, nil
}

// preferenceLines assembles the AMTI addback list: the state/local tax
// addback is derived from the deduction election, every other preference is
// a data line supplied on the return. New preference kinds need no engine
// change.
func preferenceLines(ret *domain.TaxReturn) []domain.PreferenceItem {
	var lines []domain.PreferenceItem
	if ret.Deductions.Itemize && ret.Deductions.Itemized.StateLocalTaxes.GreaterThan(decimal.Zero) {
		lines = append(lines, domain.PreferenceItem{
			Code:        domain.PrefStateLocalTaxes,
			Description: "state and local taxes deducted on Schedule A",
			Amount:      ret.Deductions.Itemized.StateLocalTaxes,
		})
	}
	lines = append(lines, ret.AMTPreferences...)
	return lines
}
