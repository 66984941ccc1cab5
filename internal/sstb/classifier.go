package sstb

import (
	"strings"
)

// categoryKeywords is the curated keyword set per category, matched against
// the business name first and the free-text description second. Keywords
// are lowercase; matching is case-insensitive substring.
var categoryKeywords = map[Category][]string{
	CategoryHealth: {
		"medical", "physician", "doctor", "dental", "dentist", "clinic",
		"health", "chiropract", "veterinar", "pharma", "nursing", "therapy",
		"psychiatr", "psycholog",
	},
	CategoryLaw: {
		"law firm", "legal", "attorney", "lawyer", "paralegal", "litigation",
	},
	CategoryAccounting: {
		"accounting", "accountant", "cpa", "bookkeep", "tax prep", "audit",
		"payroll services",
	},
	CategoryActuarialScience: {
		"actuar",
	},
	CategoryPerformingArts: {
		"theater", "theatre", "musician", "band", "orchestra", "actor",
		"actress", "performing arts", "dance company", "film production",
	},
	CategoryConsulting: {
		"consulting", "consultant", "advisory services", "strategy advice",
	},
	CategoryAthletics: {
		"athletic", "sports team", "athlete", "coaching staff", "sports club",
	},
	CategoryFinancialSvcs: {
		"financial services", "financial planning", "wealth management",
		"investment management", "investment advis", "asset management",
		"retirement planning",
	},
	CategoryBrokerage: {
		"brokerage", "broker-dealer", "securities broker", "stockbroker",
	},
	CategoryTrading: {
		"trading", "trader", "proprietary trading", "day trading",
	},
	CategoryReputationSkill: {
		"endorsement", "appearance fees", "celebrity", "talent agency",
		"licensing of likeness",
	},
}

// keywordOrder fixes the scan order so that overlapping keyword sets
// classify deterministically.
var keywordOrder = []Category{
	CategoryHealth,
	CategoryLaw,
	CategoryAccounting,
	CategoryActuarialScience,
	CategoryPerformingArts,
	CategoryAthletics,
	CategoryFinancialSvcs,
	CategoryBrokerage,
	CategoryTrading,
	CategoryReputationSkill,
	CategoryConsulting,
}

// Input is everything the classifier considers for one business.
type Input struct {
	Name        string
	Description string
	NAICSCode   string
	// Override, when non-nil, is honored before any classification.
	Override *bool
}

// Classify determines the SSTB category for a business. It always returns a
// result; there is no error path.
func Classify(in Input) Result {
	if in.Override != nil {
		if *in.Override {
			return Result{Category: CategoryReputationSkill, IsSSTB: true, Method: MethodOverride}
		}
		return Result{Category: CategoryNone, IsSSTB: false, Method: MethodOverride}
	}

	if cat := lookupNAICS(strings.TrimSpace(in.NAICSCode)); cat.IsSSTB() {
		return Result{Category: cat, IsSSTB: true, Method: MethodNAICS}
	}

	if cat := matchKeywords(in.Name); cat.IsSSTB() {
		return Result{Category: cat, IsSSTB: true, Method: MethodNameKeyword}
	}
	if cat := matchKeywords(in.Description); cat.IsSSTB() {
		return Result{Category: cat, IsSSTB: true, Method: MethodDescKeyword}
	}

	return Result{Category: CategoryNone, IsSSTB: false, Method: MethodDefault}
}

func matchKeywords(text string) Category {
	if text == "" {
		return CategoryNone
	}
	lowered := strings.ToLower(text)
	for _, cat := range keywordOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lowered, kw) {
				return cat
			}
		}
	}
	return CategoryNone
}
