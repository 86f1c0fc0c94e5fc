package calculation

import (
	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

// Scoring constants. Fixed policy, not configurable.
const ageBoostCeiling = 40 // no boost at or above this age

var (
	ageBoostSpan          = decimal.NewFromInt(20)    // years over which the boost reaches 1.0
	ageBoostWeight        = decimal.NewFromFloat(0.3) // share of the boost applied to the raw score
	conservativeThreshold = decimal.NewFromFloat(3.5) // adjusted score at or below → Conservative
	balancedThreshold     = decimal.NewFromFloat(6.5) // adjusted score at or below → Balanced
)

// answerPoints maps survey letters to score contributions. Letters not in the
// map contribute nothing.
var answerPoints = map[domain.RiskAnswer]int64{
	domain.AnswerA: 1,
	domain.AnswerB: 2,
	domain.AnswerC: 3,
}

// RiskAssessment is the outcome of scoring the survey.
type RiskAssessment struct {
	Category domain.RiskCategory
	RawScore int64
	Score    decimal.Decimal // age-adjusted
}

// ScoreRisk converts the three survey answers and the respondent's age into a
// risk category. Younger respondents get a proportional boost.
func ScoreRisk(answers domain.RiskAnswers, age int) RiskAssessment {
	var raw int64
	for _, a := range answers.Normalized() {
		raw += answerPoints[a]
	}

	adjusted := decimal.NewFromInt(raw).Mul(decimal.NewFromInt(1).Add(ageFactor(age).Mul(ageBoostWeight)))

	return RiskAssessment{
		Category: categorize(adjusted),
		RawScore: raw,
		Score:    adjusted,
	}
}

// ageFactor is max(0, (40 - age) / 20).
func ageFactor(age int) decimal.Decimal {
	if age >= ageBoostCeiling {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(ageBoostCeiling - age)).Div(ageBoostSpan)
}

func categorize(score decimal.Decimal) domain.RiskCategory {
	switch {
	case score.LessThanOrEqual(conservativeThreshold):
		return domain.Conservative
	case score.LessThanOrEqual(balancedThreshold):
		return domain.Balanced
	default:
		return domain.Aggressive
	}
}
