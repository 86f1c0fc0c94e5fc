package domain

import (
	"github.com/shopspring/decimal"
)

// TimestampLayout is the sortable layout used for Plan.GeneratedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// RiskCategory summarizes survey-derived risk tolerance
type RiskCategory string

const (
	Conservative RiskCategory = "Conservative"
	Balanced     RiskCategory = "Balanced"
	Aggressive   RiskCategory = "Aggressive"
)

// RiskCategories lists the categories from least to most risk tolerant.
var RiskCategories = []RiskCategory{Conservative, Balanced, Aggressive}

// AssetClass is one of the four buckets an allocation is split across
type AssetClass string

const (
	Equity      AssetClass = "Equity"
	Bond        AssetClass = "Bond"
	Cash        AssetClass = "Cash"
	Alternative AssetClass = "Alternative"
)

// AssetClasses is the canonical presentation order.
var AssetClasses = []AssetClass{Equity, Bond, Cash, Alternative}

// Allocation is a percentage split across asset classes.
type Allocation struct {
	Equity      int `yaml:"equity" json:"equity"`
	Bond        int `yaml:"bond" json:"bond"`
	Cash        int `yaml:"cash" json:"cash"`
	Alternative int `yaml:"alternative" json:"alternative"`
}

// Percent returns the percentage for a class (0 for unknown classes).
func (a Allocation) Percent(class AssetClass) int {
	switch class {
	case Equity:
		return a.Equity
	case Bond:
		return a.Bond
	case Cash:
		return a.Cash
	case Alternative:
		return a.Alternative
	}
	return 0
}

// Total sums the four percentages.
func (a Allocation) Total() int {
	return a.Equity + a.Bond + a.Cash + a.Alternative
}

// ClampNonNegative returns a copy with negative percentages raised to zero.
func (a Allocation) ClampNonNegative() Allocation {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	return Allocation{
		Equity:      clamp(a.Equity),
		Bond:        clamp(a.Bond),
		Cash:        clamp(a.Cash),
		Alternative: clamp(a.Alternative),
	}
}

// RetirementNeed is the funding target derived from expenses and horizon.
type RetirementNeed struct {
	YearsToRetire         int   `yaml:"years_to_retire" json:"years_to_retire"`
	CurrentAnnualExpenses int64 `yaml:"current_annual_expenses" json:"current_annual_expenses"`
	ProjectedTotalNeed    int64 `yaml:"projected_total_need" json:"projected_total_need"`
	MonthlySavingsNeeded  int64 `yaml:"monthly_savings_needed" json:"monthly_savings_needed"`

	// Simplified is set when the inflation projection could not be computed
	// and the flat (no inflation) estimate was used instead.
	Simplified bool `yaml:"simplified,omitempty" json:"simplified,omitempty"`
}

// ProductRecommendation lists representative instruments for one asset class.
type ProductRecommendation struct {
	Class      AssetClass `yaml:"class" json:"class"`
	Percentage int        `yaml:"percentage" json:"percentage"`
	Products   []string   `yaml:"products" json:"products"`
}

// Recommendations maps each funded asset class to its products.
type Recommendations map[AssetClass]ProductRecommendation

// Ordered returns the recommendations in AssetClasses order.
func (r Recommendations) Ordered() []ProductRecommendation {
	out := make([]ProductRecommendation, 0, len(r))
	for _, class := range AssetClasses {
		if rec, ok := r[class]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// ProfileSummary echoes the inputs a plan was built from.
type ProfileSummary struct {
	Age             int          `yaml:"age" json:"age"`
	AnnualIncome    int64        `yaml:"annual_income" json:"annual_income"`
	CurrentAssets   int64        `yaml:"current_assets" json:"current_assets"`
	MonthlyExpenses int64        `yaml:"monthly_expenses" json:"monthly_expenses"`
	RetirementAge   int          `yaml:"retirement_age" json:"retirement_age"`
	RiskAnswers     RiskAnswers  `yaml:"risk_answers" json:"risk_answers"`
	RiskProfile     RiskCategory `yaml:"risk_profile" json:"risk_profile"`
	Goals           string       `yaml:"goals,omitempty" json:"goals,omitempty"`
}

// Plan is the complete result of one planning call. It is built once and
// never modified.
type Plan struct {
	ProfileSummary  ProfileSummary  `yaml:"user_profile" json:"user_profile"`
	RiskCategory    RiskCategory    `yaml:"risk_category" json:"risk_category"`
	RiskScore       decimal.Decimal `yaml:"risk_score" json:"risk_score"`
	RetirementNeed  RetirementNeed  `yaml:"retirement_analysis" json:"retirement_analysis"`
	Allocation      Allocation      `yaml:"portfolio_allocation" json:"portfolio_allocation"`
	Recommendations Recommendations `yaml:"product_recommendations" json:"product_recommendations"`
	AdviceText      string          `yaml:"advice" json:"advice"`
	GeneratedAt     string          `yaml:"generated_at" json:"generated_at"`
}

// NewProfileSummary copies the reportable fields of a profile.
func NewProfileSummary(p UserProfile, category RiskCategory) ProfileSummary {
	return ProfileSummary{
		Age:             p.Age,
		AnnualIncome:    p.AnnualIncome,
		CurrentAssets:   p.CurrentAssets,
		MonthlyExpenses: p.MonthlyExpenses,
		RetirementAge:   p.RetirementAge,
		RiskAnswers:     p.RiskAnswers.Normalized(),
		RiskProfile:     category,
		Goals:           p.Goals,
	}
}
