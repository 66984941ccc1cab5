package sstb

// naicsCategories maps NAICS code prefixes to SSTB categories. Lookup tries
// the full 6-digit code, then the 5-digit and 4-digit prefixes, so broad
// industry groups can be covered without enumerating every leaf code.
var naicsCategories = map[string]Category{
	// Health: offices of physicians, dentists, other practitioners,
	// outpatient care, hospitals.
	"6211": CategoryHealth,
	"6212": CategoryHealth,
	"6213": CategoryHealth,
	"6214": CategoryHealth,
	"6215": CategoryHealth,
	"6216": CategoryHealth,
	"6219": CategoryHealth,
	"6221": CategoryHealth,
	"6222": CategoryHealth,
	"6223": CategoryHealth,

	// Law.
	"5411":   CategoryLaw,
	"541110": CategoryLaw,
	"541191": CategoryLaw,
	"541199": CategoryLaw,

	// Accounting, tax preparation, bookkeeping, payroll.
	"5412":   CategoryAccounting,
	"541211": CategoryAccounting,
	"541213": CategoryAccounting,
	"541214": CategoryAccounting,
	"541219": CategoryAccounting,

	// Actuarial science. 541612 is compensation/benefits consulting, which
	// in practice files actuarial work; the more specific 6-digit entry
	// wins over the 5416 consulting prefix below.
	"541612": CategoryActuarialScience,

	// Performing arts.
	"7111":   CategoryPerformingArts,
	"7113":   CategoryPerformingArts,
	"7114":   CategoryPerformingArts,
	"711510": CategoryPerformingArts,
	"5122":   CategoryPerformingArts,

	// Consulting.
	"5416":   CategoryConsulting,
	"541611": CategoryConsulting,
	"541613": CategoryConsulting,
	"541618": CategoryConsulting,
	"541690": CategoryConsulting,

	// Athletics: sports teams, racetracks, other spectator sports, fitness
	// instruction by athletes.
	"7112":   CategoryAthletics,
	"711211": CategoryAthletics,
	"711212": CategoryAthletics,
	"711219": CategoryAthletics,

	// Financial services: investment advice, portfolio management, trust
	// and custody services.
	"5239":   CategoryFinancialSvcs,
	"523910": CategoryFinancialSvcs,
	"523920": CategoryFinancialSvcs,
	"523930": CategoryFinancialSvcs,
	"523991": CategoryFinancialSvcs,
	"523999": CategoryFinancialSvcs,
	"5259":   CategoryFinancialSvcs,

	// Brokerage: securities and commodity contracts intermediation.
	"5231":   CategoryBrokerage,
	"523120": CategoryBrokerage,
	"523130": CategoryBrokerage,
	"523140": CategoryBrokerage,

	// Trading: dealing and own-account trading.
	"523110": CategoryTrading,
	"523160": CategoryTrading,
	"5232":   CategoryTrading,

	// Agents and managers for artists, athletes and other public figures
	// fall under the reputation-or-skill catchall.
	"711410": CategoryReputationSkill,
}

// lookupNAICS resolves a NAICS code to a category, trying the exact code
// and then successively shorter prefixes (6, 5, 4 digits). Codes that are
// malformed or unmapped return CategoryNone; classification never errors.
func lookupNAICS(code string) Category {
	if len(code) < 4 || !allDigits(code) {
		return CategoryNone
	}
	if len(code) > 6 {
		code = code[:6]
	}
	for l := len(code); l >= 4; l-- {
		if cat, ok := naicsCategories[code[:l]]; ok {
			return cat
		}
	}
	return CategoryNone
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
