package domain

import (
	"github.com/shopspring/decimal"
)

// TaxYearConfig is the versioned, read-only rule table for one tax year.
// It is loaded once at startup from regulatory YAML and passed by reference
// into every computation; the engine never hardcodes year-specific numbers.
type TaxYearConfig struct {
	Year        int             `yaml:"year" json:"year"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	LastUpdated string          `yaml:"last_updated,omitempty" json:"last_updated,omitempty"`
	FederalTax  FederalTaxRules `yaml:"federal_tax" json:"federal_tax"`
	QBI         QBIRules        `yaml:"qbi" json:"qbi"`
	AMT         AMTRules        `yaml:"amt" json:"amt"`
	Credits     CreditRules     `yaml:"credits" json:"credits"`
}

// FederalTaxRules contains the ordinary-income bracket tables and standard
// deductions, keyed by filing status.
type FederalTaxRules struct {
	StandardDeduction map[FilingStatus]decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	Brackets          map[FilingStatus][]TaxBracket    `yaml:"brackets" json:"brackets"`
}

// TaxBracket is one marginal-rate segment. Lower is the inclusive floor of
// the segment; its ceiling is the next bracket's Lower, and the last bracket
// is open-ended. Representing only the floor makes the schedule continuous
// by construction.
type TaxBracket struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// QBIRules parameterizes the section 199A deduction.
type QBIRules struct {
	DeductionRate     decimal.Decimal                  `yaml:"deduction_rate" json:"deduction_rate"`
	WageLimitRate     decimal.Decimal                  `yaml:"wage_limit_rate" json:"wage_limit_rate"`
	WageUBIALimitRate decimal.Decimal                  `yaml:"wage_ubia_limit_rate" json:"wage_ubia_limit_rate"`
	UBIALimitRate     decimal.Decimal                  `yaml:"ubia_limit_rate" json:"ubia_limit_rate"`
	LowerThreshold    map[FilingStatus]decimal.Decimal `yaml:"lower_threshold" json:"lower_threshold"`
	UpperThreshold    map[FilingStatus]decimal.Decimal `yaml:"upper_threshold" json:"upper_threshold"`
	DeMinimis         DeMinimisRules                   `yaml:"de_minimis" json:"de_minimis"`
}

// DeMinimisRules is the SSTB de-minimis carve-out: a business whose SSTB
// receipts stay at or under the applicable percentage of total receipts is
// treated as non-SSTB.
type DeMinimisRules struct {
	ReceiptsPctBelowBreak decimal.Decimal `yaml:"receipts_pct_below_break" json:"receipts_pct_below_break"`
	ReceiptsPctAboveBreak decimal.Decimal `yaml:"receipts_pct_above_break" json:"receipts_pct_above_break"`
	TaxableIncomeBreak    decimal.Decimal `yaml:"taxable_income_break" json:"taxable_income_break"`
}

// AMTRules parameterizes the alternative minimum tax worksheet.
type AMTRules struct {
	Exemption         map[FilingStatus]decimal.Decimal `yaml:"exemption" json:"exemption"`
	PhaseOutThreshold map[FilingStatus]decimal.Decimal `yaml:"phase_out_threshold" json:"phase_out_threshold"`
	PhaseOutRate      decimal.Decimal                  `yaml:"phase_out_rate" json:"phase_out_rate"`
	TierThreshold     map[FilingStatus]decimal.Decimal `yaml:"tier_threshold" json:"tier_threshold"`
	LowRate           decimal.Decimal                  `yaml:"low_rate" json:"low_rate"`
	HighRate          decimal.Decimal                  `yaml:"high_rate" json:"high_rate"`
}

// CreditRules parameterizes every credit calculator plus the statutory
// application order. The order lists hold credit codes; sequencing is data,
// not engine branches.
type CreditRules struct {
	NonrefundableOrder []string `yaml:"nonrefundable_order" json:"nonrefundable_order"`
	RefundableOrder    []string `yaml:"refundable_order" json:"refundable_order"`

	ChildTaxCredit ChildTaxCreditRules `yaml:"child_tax_credit" json:"child_tax_credit"`
	Education      EducationRules      `yaml:"education" json:"education"`
	Saver          SaverRules          `yaml:"saver" json:"saver"`
	EITC           EITCRules           `yaml:"eitc" json:"eitc"`
}

// ChildTaxCreditRules covers both the nonrefundable CTC/ODC and the
// refundable additional child tax credit.
type ChildTaxCreditRules struct {
	PerChild           decimal.Decimal                  `yaml:"per_child" json:"per_child"`
	PerOtherDependent  decimal.Decimal                  `yaml:"per_other_dependent" json:"per_other_dependent"`
	PhaseOutThreshold  map[FilingStatus]decimal.Decimal `yaml:"phase_out_threshold" json:"phase_out_threshold"`
	PhaseOutRate       decimal.Decimal                  `yaml:"phase_out_rate" json:"phase_out_rate"`
	RefundablePerChild decimal.Decimal                  `yaml:"refundable_per_child" json:"refundable_per_child"`
	EarnedIncomeFloor  decimal.Decimal                  `yaml:"earned_income_floor" json:"earned_income_floor"`
	EarnedIncomeRate   decimal.Decimal                  `yaml:"earned_income_rate" json:"earned_income_rate"`
}

// EducationRules parameterizes the lifetime learning style education credit.
type EducationRules struct {
	Rate           decimal.Decimal `yaml:"rate" json:"rate"`
	ExpenseCeiling decimal.Decimal `yaml:"expense_ceiling" json:"expense_ceiling"`
}

// SaverRules parameterizes the retirement savings contributions credit.
type SaverRules struct {
	Rate                decimal.Decimal                  `yaml:"rate" json:"rate"`
	ContributionCeiling decimal.Decimal                  `yaml:"contribution_ceiling" json:"contribution_ceiling"`
	AGILimit            map[FilingStatus]decimal.Decimal `yaml:"agi_limit" json:"agi_limit"`
}

// EITCRules is a simplified earned income credit schedule: phase in at
// PhaseInRate up to MaxCredit, hold, then phase out above the threshold.
// Parameters vary by number of qualifying children.
type EITCRules struct {
	ByChildren map[int]EITCParams `yaml:"by_children" json:"by_children"`
}

// EITCParams is one row of the EITC schedule.
type EITCParams struct {
	PhaseInRate       decimal.Decimal `yaml:"phase_in_rate" json:"phase_in_rate"`
	MaxCredit         decimal.Decimal `yaml:"max_credit" json:"max_credit"`
	PhaseOutThreshold decimal.Decimal `yaml:"phase_out_threshold" json:"phase_out_threshold"`
	PhaseOutRate      decimal.Decimal `yaml:"phase_out_rate" json:"phase_out_rate"`
}

// StateRuleType tags the computation variant for a jurisdiction.
type StateRuleType string

const (
	StateRuleNone        StateRuleType = "none"
	StateRuleFlat        StateRuleType = "flat"
	StateRuleProgressive StateRuleType = "progressive"
)

// StateConfig is one jurisdiction's rule set. Dispatch happens on RuleType;
// surtax and local add-ons are post-processing common to all variants.
type StateConfig struct {
	Code              string                        `yaml:"code" json:"code"`
	Name              string                        `yaml:"name" json:"name"`
	RuleType          StateRuleType                 `yaml:"rule_type" json:"rule_type"`
	FlatRate          decimal.Decimal               `yaml:"flat_rate,omitempty" json:"flat_rate,omitempty"`
	StandardDeduction decimal.Decimal               `yaml:"standard_deduction,omitempty" json:"standard_deduction,omitempty"`
	Brackets          map[FilingStatus][]TaxBracket `yaml:"brackets,omitempty" json:"brackets,omitempty"`
	SharedBrackets    []TaxBracket                  `yaml:"shared_brackets,omitempty" json:"shared_brackets,omitempty"`
	Surtax            *SurtaxRule                   `yaml:"surtax,omitempty" json:"surtax,omitempty"`
	LocalRate         decimal.Decimal               `yaml:"local_rate,omitempty" json:"local_rate,omitempty"`
}

// SurtaxRule is an additional rate on income above a threshold.
type SurtaxRule struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// BracketsFor resolves the bracket table for a filing status, falling back
// to the shared table for states that do not vary brackets by status.
func (sc *StateConfig) BracketsFor(status FilingStatus) []TaxBracket {
	if b, ok := sc.Brackets[status]; ok && len(b) > 0 {
		return b
	}
	return sc.SharedBrackets
}
