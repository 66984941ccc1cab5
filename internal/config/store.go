package config

import (
	"fmt"

	"github.com/taxfolio/taxengine/internal/domain"
)

// TaxYearStore holds the loaded rule tables, keyed by year. It is populated
// once at startup and read-only afterwards, which is what makes the engine
// safe to call from many goroutines without locking.
type TaxYearStore struct {
	years map[int]*domain.TaxYearConfig
}

// NewTaxYearStore builds a store from loaded configs.
func NewTaxYearStore(configs ...*domain.TaxYearConfig) *TaxYearStore {
	s := &TaxYearStore{years: make(map[int]*domain.TaxYearConfig, len(configs))}
	for _, cfg := range configs {
		s.years[cfg.Year] = cfg
	}
	return s
}

// ForYear returns the config for a tax year. A missing year is a
// *ConfigurationError: no computation can proceed without its rule table.
func (s *TaxYearStore) ForYear(year int) (*domain.TaxYearConfig, error) {
	cfg, ok := s.years[year]
	if !ok {
		return nil, &domain.ConfigurationError{Detail: fmt.Sprintf("no rule table loaded for tax year %d", year)}
	}
	return cfg, nil
}

// Years lists the loaded tax years.
func (s *TaxYearStore) Years() []int {
	years := make([]int, 0, len(s.years))
	for y := range s.years {
		years = append(years, y)
	}
	return years
}
