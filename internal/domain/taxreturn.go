package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilingStatus identifies the federal filing status of a return.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_filing_jointly"
	FilingMarriedSeparately FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
)

// ValidFilingStatuses lists every accepted filing status value.
var ValidFilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJointly,
	FilingMarriedSeparately,
	FilingHeadOfHousehold,
}

// TaxReturn is the immutable input aggregate for one calculation. It is
// owned by the caller; the engine never mutates it.
type TaxReturn struct {
	TaxpayerName string       `yaml:"taxpayer_name" json:"taxpayer_name"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	TaxYear      int          `yaml:"tax_year" json:"tax_year"`
	State        string       `yaml:"state" json:"state"`
	PreparedAt   *time.Time   `yaml:"prepared_at,omitempty" json:"prepared_at,omitempty"`

	Wages        []WageIncome        `yaml:"wages,omitempty" json:"wages,omitempty"`
	Businesses   []BusinessIncome    `yaml:"businesses,omitempty" json:"businesses,omitempty"`
	Passthroughs []PassthroughIncome `yaml:"passthroughs,omitempty" json:"passthroughs,omitempty"`
	Investment   InvestmentIncome    `yaml:"investment" json:"investment"`

	Deductions     DeductionElection `yaml:"deductions" json:"deductions"`
	AMTPreferences []PreferenceItem  `yaml:"amt_preferences,omitempty" json:"amt_preferences,omitempty"`
	Credits        CreditInputs      `yaml:"credits" json:"credits"`
}

// WageIncome is W-2 wage income with withholding.
type WageIncome struct {
	Employer    string          `yaml:"employer" json:"employer"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Withholding decimal.Decimal `yaml:"withholding" json:"withholding"`
}

// BusinessIncome is a self-employment (Schedule C) business. PrincipalActivity
// and NAICSCode feed SSTB classification; SSTBOverride short-circuits it.
type BusinessIncome struct {
	Name              string          `yaml:"name" json:"name"`
	PrincipalActivity string          `yaml:"principal_activity" json:"principal_activity"`
	NAICSCode         string          `yaml:"naics_code,omitempty" json:"naics_code,omitempty"`
	SSTBOverride      *bool           `yaml:"sstb_override,omitempty" json:"sstb_override,omitempty"`
	NetIncome         decimal.Decimal `yaml:"net_income" json:"net_income"`
	W2WagesPaid       decimal.Decimal `yaml:"w2_wages_paid" json:"w2_wages_paid"`
	UBIA              decimal.Decimal `yaml:"ubia" json:"ubia"`
	GrossReceipts     decimal.Decimal `yaml:"gross_receipts" json:"gross_receipts"`
	SSTBGrossReceipts decimal.Decimal `yaml:"sstb_gross_receipts" json:"sstb_gross_receipts"`
}

// PassthroughIncome is K-1 income from a partnership or S corporation.
// It carries the same QBI attributes as a Schedule C business.
type PassthroughIncome struct {
	EntityName        string          `yaml:"entity_name" json:"entity_name"`
	PrincipalActivity string          `yaml:"principal_activity" json:"principal_activity"`
	NAICSCode         string          `yaml:"naics_code,omitempty" json:"naics_code,omitempty"`
	SSTBOverride      *bool           `yaml:"sstb_override,omitempty" json:"sstb_override,omitempty"`
	OrdinaryIncome    decimal.Decimal `yaml:"ordinary_income" json:"ordinary_income"`
	W2WagesShare      decimal.Decimal `yaml:"w2_wages_share" json:"w2_wages_share"`
	UBIAShare         decimal.Decimal `yaml:"ubia_share" json:"ubia_share"`
}

// InvestmentIncome covers interest, dividends and capital gains.
type InvestmentIncome struct {
	Interest          decimal.Decimal `yaml:"interest" json:"interest"`
	OrdinaryDividends decimal.Decimal `yaml:"ordinary_dividends" json:"ordinary_dividends"`
	NetCapitalGain    decimal.Decimal `yaml:"net_capital_gain" json:"net_capital_gain"`
}

// DeductionElection is the standard-vs-itemized choice with itemized line
// items. When Itemize is false the itemized fields are ignored.
type DeductionElection struct {
	Itemize  bool              `yaml:"itemize" json:"itemize"`
	Itemized ItemizedDeduction `yaml:"itemized,omitempty" json:"itemized,omitempty"`
}

// ItemizedDeduction holds Schedule A line items. StateLocalTaxes is also the
// AMT state/local addback source.
type ItemizedDeduction struct {
	StateLocalTaxes  decimal.Decimal `yaml:"state_local_taxes" json:"state_local_taxes"`
	MortgageInterest decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	CharitableGiving decimal.Decimal `yaml:"charitable_giving" json:"charitable_giving"`
	MedicalExpenses  decimal.Decimal `yaml:"medical_expenses" json:"medical_expenses"`
	OtherDeductions  decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
}

// Total sums all itemized line items.
func (d ItemizedDeduction) Total() decimal.Decimal {
	return d.StateLocalTaxes.
		Add(d.MortgageInterest).
		Add(d.CharitableGiving).
		Add(d.MedicalExpenses).
		Add(d.OtherDeductions)
}

// PreferenceItem is one AMT preference addback line. New preference kinds
// are added as data, not as engine branches.
type PreferenceItem struct {
	Code        string          `yaml:"code" json:"code"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
}

// Well-known preference item codes. The engine treats these as opaque except
// where a worksheet names one specifically.
const (
	PrefISOExercise     = "iso_exercise_spread"
	PrefPrivateActivity = "private_activity_bond_interest"
	PrefDepreciation    = "depreciation_adjustment"
	PrefPassiveActivity = "passive_activity_adjustment"
	PrefStateLocalTaxes = "state_local_tax_addback"
)

// CreditInputs carries the raw facts each per-credit calculator needs.
// Eligibility determination lives in the calculators, not here.
type CreditInputs struct {
	ForeignTaxPaid          decimal.Decimal `yaml:"foreign_tax_paid" json:"foreign_tax_paid"`
	QualifyingChildren      int             `yaml:"qualifying_children" json:"qualifying_children"`
	OtherDependents         int             `yaml:"other_dependents" json:"other_dependents"`
	EducationExpenses       decimal.Decimal `yaml:"education_expenses" json:"education_expenses"`
	RetirementContributions decimal.Decimal `yaml:"retirement_contributions" json:"retirement_contributions"`
	EITCEligible            bool            `yaml:"eitc_eligible" json:"eitc_eligible"`
}

// TotalWages sums all W-2 wage amounts.
func (tr *TaxReturn) TotalWages() decimal.Decimal {
	total := decimal.Zero
	for _, w := range tr.Wages {
		total = total.Add(w.Amount)
	}
	return total
}

// TotalWithholding sums withholding across all W-2s.
func (tr *TaxReturn) TotalWithholding() decimal.Decimal {
	total := decimal.Zero
	for _, w := range tr.Wages {
		total = total.Add(w.Withholding)
	}
	return total
}

// TotalBusinessIncome sums Schedule C net income.
func (tr *TaxReturn) TotalBusinessIncome() decimal.Decimal {
	total := decimal.Zero
	for _, b := range tr.Businesses {
		total = total.Add(b.NetIncome)
	}
	return total
}

// TotalPassthroughIncome sums K-1 ordinary income.
func (tr *TaxReturn) TotalPassthroughIncome() decimal.Decimal {
	total := decimal.Zero
	for _, p := range tr.Passthroughs {
		total = total.Add(p.OrdinaryIncome)
	}
	return total
}

// TotalInvestmentIncome sums interest, dividends and net capital gain.
func (tr *TaxReturn) TotalInvestmentIncome() decimal.Decimal {
	return tr.Investment.Interest.
		Add(tr.Investment.OrdinaryDividends).
		Add(tr.Investment.NetCapitalGain)
}

// GrossIncome is the sum of every income source on the return.
func (tr *TaxReturn) GrossIncome() decimal.Decimal {
	return tr.TotalWages().
		Add(tr.TotalBusinessIncome()).
		Add(tr.TotalPassthroughIncome()).
		Add(tr.TotalInvestmentIncome())
}

// EarnedIncome is wages plus self-employment income, the EITC base.
func (tr *TaxReturn) EarnedIncome() decimal.Decimal {
	return tr.TotalWages().Add(tr.TotalBusinessIncome())
}
