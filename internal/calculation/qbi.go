package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/money"
	"github.com/taxfolio/taxengine/internal/sstb"
)

// QBICalculator computes the section 199A qualified business income
// deduction. All thresholds come from the tax-year config; every
// intermediate value, including the phase-in ratio, stays in fixed-point
// decimal.
type QBICalculator struct {
	Rules domain.QBIRules
}

// NewQBICalculator creates a QBI calculator for one tax year's rules.
func NewQBICalculator(rules domain.QBIRules) *QBICalculator {
	return &QBICalculator{Rules: rules}
}

// QBIComponent is the deduction component contributed by one business.
type QBIComponent struct {
	Name           string
	Classification sstb.Result
	Component      decimal.Decimal
}

// QBIResult is the resolved deduction with its per-business components.
type QBIResult struct {
	Deduction  decimal.Decimal
	Components []QBIComponent
}

// qbiBusiness is the common shape of a Schedule C business and a K-1 share
// for deduction purposes.
type qbiBusiness struct {
	name   string
	qbi    decimal.Decimal
	w2     decimal.Decimal
	ubia   decimal.Decimal
	result sstb.Result
}

// Compute resolves the deduction for a return given taxable income before
// the QBI deduction. The overall cap is
// DeductionRate x (taxable income - net capital gain).
func (qc *QBICalculator) Compute(ret *domain.TaxReturn, taxableIncome decimal.Decimal) (QBIResult, error) {
	lower, ok := qc.Rules.LowerThreshold[ret.FilingStatus]
	if !ok {
		return QBIResult{}, &domain.ConfigurationError{Detail: "qbi lower threshold missing for filing status " + string(ret.FilingStatus)}
	}
	upper, ok := qc.Rules.UpperThreshold[ret.FilingStatus]
	if !ok {
		return QBIResult{}, &domain.ConfigurationError{Detail: "qbi upper threshold missing for filing status " + string(ret.FilingStatus)}
	}
	if upper.LessThanOrEqual(lower) {
		return QBIResult{}, &domain.ConfigurationError{Detail: "qbi upper threshold must exceed lower threshold"}
	}

	ratio, err := qc.phaseInRatio(taxableIncome, lower, upper)
	if err != nil {
		return QBIResult{}, err
	}

	result := QBIResult{Deduction: decimal.Zero}
	aggregate := decimal.Zero

	for _, biz := range qc.collectBusinesses(ret, taxableIncome) {
		component := qc.businessComponent(biz, ratio)
		aggregate = aggregate.Add(component)
		result.Components = append(result.Components, QBIComponent{
			Name:           biz.name,
			Classification: biz.result,
			Component:      component,
		})
	}

	ceiling := qc.Rules.DeductionRate.Mul(money.ZeroFloor(taxableIncome.Sub(ret.Investment.NetCapitalGain)))
	result.Deduction = money.ZeroFloor(money.Min(aggregate, ceiling))
	return result, nil
}

// collectBusinesses classifies every qualifying business on the return.
// Schedule C businesses get the de-minimis exception applied from their
// receipts; K-1 shares carry no receipts detail, so their classification
// stands as-is.
func (qc *QBICalculator) collectBusinesses(ret *domain.TaxReturn, taxableIncome decimal.Decimal) []qbiBusiness {
	var all []qbiBusiness
	for _, b := range ret.Businesses {
		res := sstb.Classify(sstb.Input{
			Name:        b.Name,
			Description: b.PrincipalActivity,
			NAICSCode:   b.NAICSCode,
			Override:    b.SSTBOverride,
		})
		res = sstb.ApplyDeMinimis(res, b.SSTBGrossReceipts, b.GrossReceipts, taxableIncome, qc.Rules.DeMinimis)
		all = append(all, qbiBusiness{name: b.Name, qbi: b.NetIncome, w2: b.W2WagesPaid, ubia: b.UBIA, result: res})
	}
	for _, p := range ret.Passthroughs {
		res := sstb.Classify(sstb.Input{
			Name:        p.EntityName,
			Description: p.PrincipalActivity,
			NAICSCode:   p.NAICSCode,
			Override:    p.SSTBOverride,
		})
		all = append(all, qbiBusiness{name: p.EntityName, qbi: p.OrdinaryIncome, w2: p.W2WagesShare, ubia: p.UBIAShare, result: res})
	}
	return all
}

// phaseInRatio is 0 at or below the lower threshold, 1 at or above the upper
// threshold, and linearly interpolated (clamped) in between.
func (qc *QBICalculator) phaseInRatio(taxableIncome, lower, upper decimal.Decimal) (decimal.Decimal, error) {
	if taxableIncome.LessThanOrEqual(lower) {
		return decimal.Zero, nil
	}
	if taxableIncome.GreaterThanOrEqual(upper) {
		return decimal.NewFromInt(1), nil
	}
	raw, err := money.Div(taxableIncome.Sub(lower), upper.Sub(lower))
	if err != nil {
		return decimal.Zero, err
	}
	return money.Clamp(raw, decimal.Zero, decimal.NewFromInt(1)), nil
}

// businessComponent computes one business's contribution to the aggregate
// deduction. For SSTBs the applicable percentage (1 - ratio) scales QBI,
// wages and UBIA before the limitation, so an SSTB is included in full below
// the lower threshold and excluded entirely above the upper one. For every
// business the wage/UBIA limitation itself phases in with the ratio.
func (qc *QBICalculator) businessComponent(biz qbiBusiness, ratio decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)

	qbi, w2, ubia := biz.qbi, biz.w2, biz.ubia
	if biz.result.IsSSTB {
		applicable := one.Sub(ratio)
		if applicable.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero
		}
		qbi = qbi.Mul(applicable)
		w2 = w2.Mul(applicable)
		ubia = ubia.Mul(applicable)
	}

	unlimited := qc.Rules.DeductionRate.Mul(qbi)
	wageLimit := money.Max(
		qc.Rules.WageLimitRate.Mul(w2),
		qc.Rules.WageUBIALimitRate.Mul(w2).Add(qc.Rules.UBIALimitRate.Mul(ubia)),
	)

	if unlimited.LessThanOrEqual(wageLimit) {
		return unlimited
	}
	// The limitation binds; phase it in across the threshold range.
	return unlimited.Sub(ratio.Mul(unlimited.Sub(wageLimit)))
}
