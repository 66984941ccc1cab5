// Package sstb classifies a business as a Specified Service Trade or
// Business for section 199A purposes. Classification priority: explicit
// override, NAICS code (6 then 5 then 4 digit prefix), business-name
// keywords, description keywords, then non-SSTB. It always terminates with
// a result; malformed inputs fall through to the next step.
package sstb

// Category is the closed enumeration of statutory SSTB categories.
type Category string

const (
	CategoryNone             Category = "not_sstb"
	CategoryHealth           Category = "health"
	CategoryLaw              Category = "law"
	CategoryAccounting       Category = "accounting"
	CategoryActuarialScience Category = "actuarial_science"
	CategoryPerformingArts   Category = "performing_arts"
	CategoryConsulting       Category = "consulting"
	CategoryAthletics        Category = "athletics"
	CategoryFinancialSvcs    Category = "financial_services"
	CategoryBrokerage        Category = "brokerage"
	CategoryTrading          Category = "trading"
	CategoryReputationSkill  Category = "reputation_skill"
)

// Categories lists every SSTB category, excluding CategoryNone.
var Categories = []Category{
	CategoryHealth,
	CategoryLaw,
	CategoryAccounting,
	CategoryActuarialScience,
	CategoryPerformingArts,
	CategoryConsulting,
	CategoryAthletics,
	CategoryFinancialSvcs,
	CategoryBrokerage,
	CategoryTrading,
	CategoryReputationSkill,
}

// IsSSTB reports whether the category is one of the statutory service
// categories.
func (c Category) IsSSTB() bool {
	return c != CategoryNone && c != ""
}

// Method records which classification step produced the result.
type Method string

const (
	MethodOverride    Method = "override"
	MethodNAICS       Method = "naics"
	MethodNameKeyword Method = "name_keyword"
	MethodDescKeyword Method = "description_keyword"
	MethodDefault     Method = "default"
	MethodDeMinimis   Method = "de_minimis"
)

// Result is the classifier output for one business.
type Result struct {
	Category Category
	IsSSTB   bool
	Method   Method
}
