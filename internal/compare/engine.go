// Package compare runs what-if scenario comparisons over the tax engine.
// Each scenario is an independent calculation with no shared mutable state,
// so they fan out concurrently; results keep the caller's scenario order.
package compare

import (
	"context"
	"fmt"
	"sync"

	"github.com/taxfolio/taxengine/internal/calculation"
	"github.com/taxfolio/taxengine/internal/config"
	"github.com/taxfolio/taxengine/internal/statetax"
)

// Engine orchestrates scenario comparison.
type Engine struct {
	Calc   *calculation.CalculationEngine
	Years  *config.TaxYearStore
	States *statetax.Registry
}

// NewEngine creates a comparison engine.
func NewEngine(calc *calculation.CalculationEngine, years *config.TaxYearStore, states *statetax.Registry) *Engine {
	return &Engine{Calc: calc, Years: years, States: states}
}

// Compare calculates the base scenario and every alternative. The first
// scenario is the base; deltas are relative to it. Scenarios run
// concurrently and any single failure fails the comparison.
func (e *Engine) Compare(ctx context.Context, scenarios []Scenario) (*ComparisonSet, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, len(scenarios))
	errs := make([]error, len(scenarios))

	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func(i int, sc Scenario) {
			defer wg.Done()
			results[i], errs[i] = e.runScenario(sc)
		}(i, sc)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scenario %s failed: %w", scenarios[i].Name, err)
		}
	}

	set := &ComparisonSet{BaseName: results[0].Name, Base: results[0]}
	for _, alt := range results[1:] {
		alt.TotalTaxDiff = alt.TotalTax.Sub(set.Base.TotalTax)
		set.Alternatives = append(set.Alternatives, alt)
	}
	return set, nil
}

func (e *Engine) runScenario(sc Scenario) (Result, error) {
	if sc.Return == nil {
		return Result{}, fmt.Errorf("scenario %s has no return", sc.Name)
	}

	cfg, err := e.Years.ForYear(sc.Return.TaxYear)
	if err != nil {
		return Result{}, err
	}
	federal, err := e.Calc.CalculateFederal(sc.Return, cfg)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Name:          sc.Name,
		Federal:       federal,
		TotalTax:      federal.FinalLiability,
		EffectiveRate: federal.EffectiveRate,
	}

	if sc.Return.State != "" && e.States != nil {
		state, err := e.States.CalculateFor(sc.Return)
		if err != nil {
			return Result{}, err
		}
		result.State = state
		result.TotalTax = result.TotalTax.Add(state.TotalTax)
	}

	return result, nil
}
