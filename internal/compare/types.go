package compare

import (
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/domain"
)

// Scenario is one what-if variant: a complete return to calculate. Callers
// construct variants (maxed 401(k), different state, SSTB override) and the
// engine fans them out.
type Scenario struct {
	Name   string            `yaml:"name" json:"name"`
	Return *domain.TaxReturn `yaml:"return" json:"return"`
}

// Result is one calculated scenario with its comparison deltas.
type Result struct {
	Name          string                 `json:"name"`
	Federal       *domain.TaxBreakdown   `json:"federal"`
	State         *domain.StateBreakdown `json:"state,omitempty"`
	TotalTax      decimal.Decimal        `json:"total_tax"`
	EffectiveRate decimal.Decimal        `json:"effective_rate"`

	// Deltas vs the base scenario; zero on the base itself.
	TotalTaxDiff decimal.Decimal `json:"total_tax_diff"`
}

// ComparisonSet is the full output of a comparison run, base first.
type ComparisonSet struct {
	BaseName     string   `json:"base_name"`
	Base         Result   `json:"base"`
	Alternatives []Result `json:"alternatives"`
}
