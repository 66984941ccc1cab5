package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBreakdown is the federal calculation result. Every monetary field is
// rounded to cents; it is produced fresh per calculation and never mutated
// after construction.
type TaxBreakdown struct {
	TaxYear      int          `yaml:"tax_year" json:"tax_year"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`

	GrossIncome      decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	DeductionApplied decimal.Decimal `yaml:"deduction_applied" json:"deduction_applied"`
	QBIDeduction     decimal.Decimal `yaml:"qbi_deduction" json:"qbi_deduction"`
	TaxableIncome    decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`

	RegularTax       decimal.Decimal `yaml:"regular_tax" json:"regular_tax"`
	AMTAddOn         decimal.Decimal `yaml:"amt_add_on" json:"amt_add_on"`
	TaxBeforeCredits decimal.Decimal `yaml:"tax_before_credits" json:"tax_before_credits"`

	CreditsApplied    []CreditApplied `yaml:"credits_applied" json:"credits_applied"`
	TotalCredits      decimal.Decimal `yaml:"total_credits" json:"total_credits"`
	RefundableCredits decimal.Decimal `yaml:"refundable_credits" json:"refundable_credits"`

	FinalLiability decimal.Decimal `yaml:"final_liability" json:"final_liability"`
	Withholding    decimal.Decimal `yaml:"withholding" json:"withholding"`
	RefundOrOwed   decimal.Decimal `yaml:"refund_or_owed" json:"refund_or_owed"`

	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effective_rate"`
	MarginalRate  decimal.Decimal `yaml:"marginal_rate" json:"marginal_rate"`
}

// CreditApplied is one credit line in statutory application order.
type CreditApplied struct {
	Code       string          `yaml:"code" json:"code"`
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	Refundable bool            `yaml:"refundable" json:"refundable"`
}

// StateBreakdown is the state calculation result. Its taxable-income base is
// derived from the same return inputs as the federal breakdown but does not
// depend on the federal result.
type StateBreakdown struct {
	State         string          `yaml:"state" json:"state"`
	RuleType      StateRuleType   `yaml:"rule_type" json:"rule_type"`
	TaxableIncome decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	BaseTax       decimal.Decimal `yaml:"base_tax" json:"base_tax"`
	Surtax        decimal.Decimal `yaml:"surtax" json:"surtax"`
	LocalTax      decimal.Decimal `yaml:"local_tax" json:"local_tax"`
	TotalTax      decimal.Decimal `yaml:"total_tax" json:"total_tax"`
}
