package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// RiskAnswer is a single survey response. Valid letters are A, B and C.
type RiskAnswer string

const (
	AnswerA RiskAnswer = "A"
	AnswerB RiskAnswer = "B"
	AnswerC RiskAnswer = "C"

	// DefaultRiskAnswer is used for any question the user did not answer.
	DefaultRiskAnswer = AnswerB
)

// Normalize upper-cases and trims the answer, substituting the default for blanks.
// Unknown letters are returned as-is so the scorer can treat them as zero.
func (a RiskAnswer) Normalize() RiskAnswer {
	n := RiskAnswer(strings.ToUpper(strings.TrimSpace(string(a))))
	if n == "" {
		return DefaultRiskAnswer
	}
	return n
}

// IsValid reports whether the normalized answer is one of A, B or C.
func (a RiskAnswer) IsValid() bool {
	switch a.Normalize() {
	case AnswerA, AnswerB, AnswerC:
		return true
	}
	return false
}

// RiskQuestionCount is the number of questions in the risk survey.
const RiskQuestionCount = 3

// RiskAnswers holds the survey responses in question order.
type RiskAnswers [RiskQuestionCount]RiskAnswer

// DefaultRiskAnswers returns B for every question.
func DefaultRiskAnswers() RiskAnswers {
	return RiskAnswers{DefaultRiskAnswer, DefaultRiskAnswer, DefaultRiskAnswer}
}

// Normalized returns a copy with every answer normalized.
func (ra RiskAnswers) Normalized() RiskAnswers {
	var out RiskAnswers
	for i, a := range ra {
		out[i] = a.Normalize()
	}
	return out
}

// UnmarshalYAML accepts either a sequence (["A", "B", "C"]) or a mapping
// keyed by q1..q3. Missing entries stay blank and later default to B.
func (ra *RiskAnswers) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		if len(list) > RiskQuestionCount {
			return fmt.Errorf("risk_answers: expected at most %d answers, got %d", RiskQuestionCount, len(list))
		}
		for i, s := range list {
			ra[i] = RiskAnswer(s)
		}
	case yaml.MappingNode:
		var m map[string]string
		if err := value.Decode(&m); err != nil {
			return err
		}
		for i := 0; i < RiskQuestionCount; i++ {
			ra[i] = RiskAnswer(m[fmt.Sprintf("q%d", i+1)])
		}
	default:
		return fmt.Errorf("risk_answers: expected a list or mapping")
	}
	return nil
}

// UserProfile is the set of facts a plan is computed from. Callers validate it
// before handing it to the engine; the engine treats it as read-only.
type UserProfile struct {
	Age             int         `yaml:"age" json:"age"`
	RetirementAge   int         `yaml:"retirement_age" json:"retirement_age"`
	AnnualIncome    int64       `yaml:"annual_income" json:"annual_income"`
	CurrentAssets   int64       `yaml:"current_assets" json:"current_assets"`
	MonthlyExpenses int64       `yaml:"monthly_expenses" json:"monthly_expenses"`
	RiskAnswers     RiskAnswers `yaml:"risk_answers" json:"risk_answers"`

	// Goals is free text about other financial goals (home, education, travel).
	// It is reported back but never used in calculations.
	Goals string `yaml:"goals,omitempty" json:"goals,omitempty"`
}

// YearsToRetire returns RetirementAge - Age. It may be zero or negative for
// unvalidated profiles.
func (p UserProfile) YearsToRetire() int {
	return p.RetirementAge - p.Age
}
