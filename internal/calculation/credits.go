package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/money"
)

// Credit codes referenced by the ordering lists in CreditRules.
const (
	CreditForeignTax         = "foreign_tax"
	CreditChildTax           = "child_tax"
	CreditEducation          = "education"
	CreditSaver              = "retirement_saver"
	CreditEITC               = "eitc"
	CreditAdditionalChildTax = "additional_child_tax"
)

// CreditContext is the input a per-credit calculator sees. Applied holds
// the amounts already allowed for earlier credits in the sequence, so
// refundable remainders (additional CTC) can avoid double counting.
type CreditContext struct {
	Return        *domain.TaxReturn
	Rules         domain.CreditRules
	AGI           decimal.Decimal
	TaxableIncome decimal.Decimal
	EarnedIncome  decimal.Decimal
	Applied       map[string]decimal.Decimal
}

// CreditCalculator computes one credit's amount. Eligibility lives here;
// sequencing and liability capping live in the ordering engine.
type CreditCalculator interface {
	Code() string
	Refundable() bool
	Compute(ctx CreditContext) decimal.Decimal
}

// CreditOutcome is the result of applying all credits in statutory order.
type CreditOutcome struct {
	Lines         []domain.CreditApplied
	Nonrefundable decimal.Decimal
	Refundable    decimal.Decimal
}

// OrderingEngine applies nonrefundable credits against liability in the
// configured order, each capped at remaining liability, then refundable
// credits without a floor.
type OrderingEngine struct {
	calculators map[string]CreditCalculator
}

// NewOrderingEngine builds an ordering engine with the standard calculator
// set registered.
func NewOrderingEngine() *OrderingEngine {
	oe := &OrderingEngine{calculators: make(map[string]CreditCalculator)}
	for _, c := range []CreditCalculator{
		foreignTaxCredit{},
		childTaxCredit{},
		educationCredit{},
		saverCredit{},
		earnedIncomeCredit{},
		additionalChildTaxCredit{},
	} {
		oe.Register(c)
	}
	return oe
}

// Register adds or replaces a credit calculator by code.
func (oe *OrderingEngine) Register(c CreditCalculator) {
	oe.calculators[c.Code()] = c
}

// Apply sequences the configured credits against tax before credits.
// Unknown codes in the ordering lists are configuration errors, not
// silently skipped lines.
func (oe *OrderingEngine) Apply(ctx CreditContext, taxBeforeCredits decimal.Decimal) (CreditOutcome, error) {
	if ctx.Applied == nil {
		ctx.Applied = make(map[string]decimal.Decimal)
	}
	outcome := CreditOutcome{Nonrefundable: decimal.Zero, Refundable: decimal.Zero}
	remaining := money.ZeroFloor(taxBeforeCredits)

	for _, code := range ctx.Rules.NonrefundableOrder {
		calc, ok := oe.calculators[code]
		if !ok {
			return CreditOutcome{}, &domain.ConfigurationError{Detail: "unknown credit code in nonrefundable order: " + code}
		}
		amount := money.ZeroFloor(calc.Compute(ctx))
		allowed := money.Min(amount, remaining)
		ctx.Applied[code] = allowed
		if allowed.IsZero() {
			continue
		}
		remaining = remaining.Sub(allowed)
		outcome.Nonrefundable = outcome.Nonrefundable.Add(allowed)
		outcome.Lines = append(outcome.Lines, domain.CreditApplied{Code: code, Amount: allowed})
	}

	for _, code := range ctx.Rules.RefundableOrder {
		calc, ok := oe.calculators[code]
		if !ok {
			return CreditOutcome{}, &domain.ConfigurationError{Detail: "unknown credit code in refundable order: " + code}
		}
		amount := money.ZeroFloor(calc.Compute(ctx))
		ctx.Applied[code] = amount
		if amount.IsZero() {
			continue
		}
		outcome.Refundable = outcome.Refundable.Add(amount)
		outcome.Lines = append(outcome.Lines, domain.CreditApplied{Code: code, Amount: amount, Refundable: true})
	}

	return outcome, nil
}

// foreignTaxCredit allows foreign income tax paid, capped by the sequencer.
type foreignTaxCredit struct{}

func (foreignTaxCredit) Code() string     { return CreditForeignTax }
func (foreignTaxCredit) Refundable() bool { return false }
func (foreignTaxCredit) Compute(ctx CreditContext) decimal.Decimal {
	return ctx.Return.Credits.ForeignTaxPaid
}

// childTaxCredit is the nonrefundable child tax credit plus the other
// dependent credit, phased out above the AGI threshold.
type childTaxCredit struct{}

func (childTaxCredit) Code() string     { return CreditChildTax }
func (childTaxCredit) Refundable() bool { return false }
func (childTaxCredit) Compute(ctx CreditContext) decimal.Decimal {
	rules := ctx.Rules.ChildTaxCredit
	base := rules.PerChild.Mul(decimal.NewFromInt(int64(ctx.Return.Credits.QualifyingChildren))).
		Add(rules.PerOtherDependent.Mul(decimal.NewFromInt(int64(ctx.Return.Credits.OtherDependents))))
	if base.IsZero() {
		return decimal.Zero
	}
	threshold, ok := rules.PhaseOutThreshold[ctx.Return.FilingStatus]
	if !ok {
		return base
	}
	reduction := rules.PhaseOutRate.Mul(money.ZeroFloor(ctx.AGI.Sub(threshold)))
	return money.ZeroFloor(base.Sub(reduction))
}

// educationCredit is a rate-times-capped-expenses education credit.
type educationCredit struct{}

func (educationCredit) Code() string     { return CreditEducation }
func (educationCredit) Refundable() bool { return false }
func (educationCredit) Compute(ctx CreditContext) decimal.Decimal {
	rules := ctx.Rules.Education
	return rules.Rate.Mul(money.Min(ctx.Return.Credits.EducationExpenses, rules.ExpenseCeiling))
}

// saverCredit is the retirement savings contributions credit, gated on AGI.
type saverCredit struct{}

func (saverCredit) Code() string     { return CreditSaver }
func (saverCredit) Refundable() bool { return false }
func (saverCredit) Compute(ctx CreditContext) decimal.Decimal {
	rules := ctx.Rules.Saver
	limit, ok := rules.AGILimit[ctx.Return.FilingStatus]
	if !ok || ctx.AGI.GreaterThan(limit) {
		return decimal.Zero
	}
	return rules.Rate.Mul(money.Min(ctx.Return.Credits.RetirementContributions, rules.ContributionCeiling))
}

// earnedIncomeCredit is the refundable EITC: phase in on earned income up to
// the maximum, then phase out on the greater of AGI and earned income.
type earnedIncomeCredit struct{}

func (earnedIncomeCredit) Code() string     { return CreditEITC }
func (earnedIncomeCredit) Refundable() bool { return true }
func (earnedIncomeCredit) Compute(ctx CreditContext) decimal.Decimal {
	if !ctx.Return.Credits.EITCEligible {
		return decimal.Zero
	}
	children := ctx.Return.Credits.QualifyingChildren
	params, ok := eitcParamsFor(ctx.Rules.EITC, children)
	if !ok {
		return decimal.Zero
	}
	credit := money.Min(params.MaxCredit, params.PhaseInRate.Mul(ctx.EarnedIncome))
	phaseOutBase := money.Max(ctx.AGI, ctx.EarnedIncome)
	reduction := params.PhaseOutRate.Mul(money.ZeroFloor(phaseOutBase.Sub(params.PhaseOutThreshold)))
	return money.ZeroFloor(credit.Sub(reduction))
}

// eitcParamsFor resolves the schedule row, treating families larger than the
// largest configured row as that row.
func eitcParamsFor(rules domain.EITCRules, children int) (domain.EITCParams, bool) {
	if p, ok := rules.ByChildren[children]; ok {
		return p, true
	}
	best := -1
	var params domain.EITCParams
	for n, p := range rules.ByChildren {
		if n <= children && n > best {
			best = n
			params = p
		}
	}
	return params, best >= 0
}

// additionalChildTaxCredit is the refundable remainder of the child tax
// credit: limited per child, by the earned-income formula, and by the CTC
// entitlement not already allowed against liability.
type additionalChildTaxCredit struct{}

func (additionalChildTaxCredit) Code() string     { return CreditAdditionalChildTax }
func (additionalChildTaxCredit) Refundable() bool { return true }
func (additionalChildTaxCredit) Compute(ctx CreditContext) decimal.Decimal {
	children := int64(ctx.Return.Credits.QualifyingChildren)
	if children == 0 {
		return decimal.Zero
	}
	rules := ctx.Rules.ChildTaxCredit

	entitlement := childTaxCredit{}.Compute(ctx)
	unused := money.ZeroFloor(entitlement.Sub(ctx.Applied[CreditChildTax]))
	perChildCap := rules.RefundablePerChild.Mul(decimal.NewFromInt(children))
	earnedFormula := rules.EarnedIncomeRate.Mul(money.ZeroFloor(ctx.EarnedIncome.Sub(rules.EarnedIncomeFloor)))

	return money.ZeroFloor(money.Min(unused, money.Min(perChildCap, earnedFormula)))
}
