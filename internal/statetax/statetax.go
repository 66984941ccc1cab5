// Package statetax dispatches state income tax computation across
// jurisdiction rule sets. Each StateConfig carries a rule-type tag
// (none, flat, progressive); surtaxes and local add-ons are applied as
// post-processing common to all variants, so a new state with a surtax
// needs configuration, not code.
package statetax

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxengine/internal/calculation"
	"github.com/taxfolio/taxengine/internal/domain"
	"github.com/taxfolio/taxengine/internal/money"
)

// Registry resolves jurisdiction codes to state configs.
type Registry struct {
	configs map[string]domain.StateConfig
}

// NewRegistry builds a registry from loaded state configs. Later duplicates
// of the same code replace earlier ones.
func NewRegistry(configs []domain.StateConfig) *Registry {
	r := &Registry{configs: make(map[string]domain.StateConfig, len(configs))}
	for _, cfg := range configs {
		r.configs[cfg.Code] = cfg
	}
	return r
}

// Lookup returns the config for a jurisdiction code, or an
// *UnsupportedJurisdictionError. It never silently substitutes zero tax.
func (r *Registry) Lookup(code string) (domain.StateConfig, error) {
	cfg, ok := r.configs[code]
	if !ok {
		return domain.StateConfig{}, &domain.UnsupportedJurisdictionError{Code: code}
	}
	return cfg, nil
}

// Codes lists the registered jurisdiction codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.configs))
	for code := range r.configs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CalculateFor resolves the return's state of residence and computes its
// state breakdown.
func (r *Registry) CalculateFor(ret *domain.TaxReturn) (*domain.StateBreakdown, error) {
	cfg, err := r.Lookup(ret.State)
	if err != nil {
		return nil, err
	}
	return Calculate(ret, &cfg)
}

// Calculate computes the state breakdown for one return and one state
// config. The taxable-income base derives from the same return inputs as
// the federal computation but not from the federal result.
func Calculate(ret *domain.TaxReturn, cfg *domain.StateConfig) (*domain.StateBreakdown, error) {
	if err := calculation.ValidateReturn(ret); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, &domain.ConfigurationError{Detail: "state config is required"}
	}

	taxable := money.ZeroFloor(ret.GrossIncome().Sub(cfg.StandardDeduction))

	var baseTax decimal.Decimal
	switch cfg.RuleType {
	case domain.StateRuleNone:
		return &domain.StateBreakdown{
			State:         cfg.Code,
			RuleType:      cfg.RuleType,
			TaxableIncome: decimal.Zero,
			BaseTax:       decimal.Zero,
			Surtax:        decimal.Zero,
			LocalTax:      decimal.Zero,
			TotalTax:      decimal.Zero,
		}, nil
	case domain.StateRuleFlat:
		baseTax = taxable.Mul(cfg.FlatRate)
	case domain.StateRuleProgressive:
		brackets := cfg.BracketsFor(ret.FilingStatus)
		if len(brackets) == 0 {
			return nil, &domain.ConfigurationError{Detail: "no bracket table for state " + cfg.Code}
		}
		baseTax = calculation.TaxFromBrackets(taxable, brackets)
	default:
		return nil, &domain.ConfigurationError{Detail: "unknown state rule type " + string(cfg.RuleType) + " for " + cfg.Code}
	}

	surtax, localTax := applyModifiers(taxable, cfg)

	return &domain.StateBreakdown{
		State:         cfg.Code,
		RuleType:      cfg.RuleType,
		TaxableIncome: money.RoundCents(taxable),
		BaseTax:       money.RoundCents(baseTax),
		Surtax:        money.RoundCents(surtax),
		LocalTax:      money.RoundCents(localTax),
		TotalTax:      money.RoundCents(baseTax.Add(surtax).Add(localTax)),
	}, nil
}

// applyModifiers computes the per-state post-processing common to all rule
// variants: a surtax on income above a threshold and a flat local add-on.
func applyModifiers(taxable decimal.Decimal, cfg *domain.StateConfig) (surtax, localTax decimal.Decimal) {
	surtax = decimal.Zero
	localTax = decimal.Zero
	if cfg.Surtax != nil {
		surtax = cfg.Surtax.Rate.Mul(money.ZeroFloor(taxable.Sub(cfg.Surtax.Threshold)))
	}
	if cfg.LocalRate.GreaterThan(decimal.Zero) {
		localTax = taxable.Mul(cfg.LocalRate)
	}
	return surtax, localTax
}
