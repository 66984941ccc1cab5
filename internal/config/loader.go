// Package config loads and validates the YAML rule tables and returns the
// engine consumes. The engine itself never reads files or environment
// variables; this package is the configuration collaborator that hands it
// ready-made TaxYearConfig and StateConfig values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taxfolio/taxengine/internal/domain"
)

// Loader parses tax-year tables, state tables and return files.
type Loader struct{}

// NewLoader creates a loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadTaxYearConfig reads and validates one tax-year rule table.
func (l *Loader) LoadTaxYearConfig(filename string) (*domain.TaxYearConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var cfg domain.TaxYearConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ValidateTaxYearConfig(&cfg); err != nil {
		return nil, fmt.Errorf("tax year config validation failed: %w", err)
	}
	return &cfg, nil
}

// stateFile is the on-disk shape of the state table.
type stateFile struct {
	States []domain.StateConfig `yaml:"states"`
}

// LoadStateConfigs reads and validates the multi-jurisdiction state table.
func (l *Loader) LoadStateConfigs(filename string) ([]domain.StateConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var file stateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for i := range file.States {
		if err := ValidateStateConfig(&file.States[i]); err != nil {
			return nil, fmt.Errorf("state %d validation failed: %w", i, err)
		}
	}
	return file.States, nil
}

// LoadReturn reads one tax return. Structural validation happens here;
// the engine revalidates semantics before computing.
func (l *Loader) LoadReturn(filename string) (*domain.TaxReturn, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var ret domain.TaxReturn
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &ret, nil
}

// ValidateTaxYearConfig checks the structural soundness of a tax-year rule
// table: bracket tables present, sorted and starting at zero, rates sane,
// QBI threshold ranges non-degenerate.
func ValidateTaxYearConfig(cfg *domain.TaxYearConfig) error {
	if cfg.Year <= 0 {
		return &domain.ConfigurationError{Detail: "year must be positive"}
	}
	if len(cfg.FederalTax.Brackets) == 0 {
		return &domain.ConfigurationError{Detail: "no federal bracket tables"}
	}
	for status, brackets := range cfg.FederalTax.Brackets {
		if err := validateBrackets(string(status), brackets); err != nil {
			return err
		}
		if _, ok := cfg.FederalTax.StandardDeduction[status]; !ok {
			return &domain.ConfigurationError{Detail: "standard deduction missing for " + string(status)}
		}
	}
	for status, lower := range cfg.QBI.LowerThreshold {
		upper, ok := cfg.QBI.UpperThreshold[status]
		if !ok {
			return &domain.ConfigurationError{Detail: "qbi upper threshold missing for " + string(status)}
		}
		if upper.LessThanOrEqual(lower) {
			return &domain.ConfigurationError{Detail: "qbi thresholds degenerate for " + string(status)}
		}
	}
	if cfg.AMT.LowRate.GreaterThan(cfg.AMT.HighRate) {
		return &domain.ConfigurationError{Detail: "amt low rate exceeds high rate"}
	}
	return nil
}

// ValidateStateConfig checks one jurisdiction entry.
func ValidateStateConfig(cfg *domain.StateConfig) error {
	if cfg.Code == "" {
		return &domain.ConfigurationError{Detail: "state code is required"}
	}
	switch cfg.RuleType {
	case domain.StateRuleNone:
	case domain.StateRuleFlat:
		if cfg.FlatRate.IsNegative() {
			return &domain.ConfigurationError{Detail: "flat rate cannot be negative for " + cfg.Code}
		}
	case domain.StateRuleProgressive:
		if len(cfg.SharedBrackets) == 0 && len(cfg.Brackets) == 0 {
			return &domain.ConfigurationError{Detail: "progressive state " + cfg.Code + " has no brackets"}
		}
		if len(cfg.SharedBrackets) > 0 {
			if err := validateBrackets(cfg.Code, cfg.SharedBrackets); err != nil {
				return err
			}
		}
		for status, brackets := range cfg.Brackets {
			if err := validateBrackets(cfg.Code+"/"+string(status), brackets); err != nil {
				return err
			}
		}
	default:
		return &domain.ConfigurationError{Detail: fmt.Sprintf("unknown rule type %q for %s", cfg.RuleType, cfg.Code)}
	}
	if cfg.Surtax != nil && cfg.Surtax.Rate.IsNegative() {
		return &domain.ConfigurationError{Detail: "surtax rate cannot be negative for " + cfg.Code}
	}
	if cfg.LocalRate.IsNegative() {
		return &domain.ConfigurationError{Detail: "local rate cannot be negative for " + cfg.Code}
	}
	return nil
}

func validateBrackets(label string, brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return &domain.ConfigurationError{Detail: "empty bracket table for " + label}
	}
	if !brackets[0].Lower.IsZero() {
		return &domain.ConfigurationError{Detail: "first bracket must start at zero for " + label}
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("negative rate in bracket %d for %s", i, label)}
		}
		if i > 0 && !b.Lower.GreaterThan(brackets[i-1].Lower) {
			return &domain.ConfigurationError{Detail: fmt.Sprintf("brackets out of order at index %d for %s", i, label)}
		}
	}
	return nil
}
