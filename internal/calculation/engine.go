package calculation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/pension-advisor/internal/domain"
)

// CalculationEngine turns a validated profile into a retirement plan. It holds
// no per-request state and is safe for concurrent use once configured.
type CalculationEngine struct {
	Elaborator Elaborator // optional; nil means template advice only
	Logger     Logger
}

// NewCalculationEngine creates an engine that uses template advice.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetElaborator installs the advice generator. Passing nil restores template advice.
func (ce *CalculationEngine) SetElaborator(e Elaborator) {
	ce.Elaborator = e
}

// GeneratePlan runs the full pipeline: risk scoring, needs estimate,
// allocation, product selection and advice. Numeric fields depend only on the
// profile; GeneratedAt and, with an Elaborator, AdviceText are the only parts
// that vary between calls.
func (ce *CalculationEngine) GeneratePlan(ctx context.Context, profile domain.UserProfile) (domain.Plan, error) {
	if err := ctx.Err(); err != nil {
		return domain.Plan{}, err
	}

	risk := ScoreRisk(profile.RiskAnswers, profile.Age)
	ce.logger().Debugf("risk score %s (raw %d) -> %s", risk.Score.String(), risk.RawScore, risk.Category)

	need, err := EstimateRetirementNeed(profile.Age, profile.RetirementAge, profile.MonthlyExpenses)
	if err != nil {
		if errors.Is(err, domain.ErrDegenerateHorizon) {
			return domain.Plan{}, &domain.ValidationError{
				Field:   "retirement_age",
				Message: "retirement age must be greater than current age",
				Err:     err,
			}
		}
		return domain.Plan{}, fmt.Errorf("generate plan: %w", err)
	}
	if need.Simplified {
		ce.logger().Warnf("inflation projection unavailable for %d years, using flat estimate", need.YearsToRetire)
	}

	allocation := SelectAllocation(risk.Category, profile.Age, profile.CurrentAssets)

	plan := domain.Plan{
		ProfileSummary:  domain.NewProfileSummary(profile, risk.Category),
		RiskCategory:    risk.Category,
		RiskScore:       risk.Score,
		RetirementNeed:  need,
		Allocation:      allocation,
		Recommendations: RecommendProducts(allocation),
	}
	plan.AdviceText = ce.advice(ctx, profile, plan)
	plan.GeneratedAt = nowFunc().Format(domain.TimestampLayout)
	return plan, nil
}

func (ce *CalculationEngine) advice(ctx context.Context, profile domain.UserProfile, plan domain.Plan) string {
	fallback := TemplateAdvice(profile.Age, plan.RiskCategory)
	if ce.Elaborator == nil {
		return fallback
	}
	text, err := ce.Elaborator.Elaborate(ctx, profile, plan)
	if err != nil {
		ce.logger().Warnf("advice generation failed, using template: %v", err)
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		ce.logger().Warnf("advice generation returned no text, using template")
		return fallback
	}
	return EnsureDisclaimer(text)
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}
