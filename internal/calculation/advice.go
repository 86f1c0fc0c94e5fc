package calculation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpgo/pension-advisor/internal/domain"
)

// Elaborator produces free-text advice for a finished plan, typically by
// calling an external text-generation service. The engine falls back to
// TemplateAdvice whenever an Elaborator is missing or fails.
type Elaborator interface {
	Elaborate(ctx context.Context, profile domain.UserProfile, plan domain.Plan) (string, error)
}

// Disclaimer closes every piece of advice.
const Disclaimer = "This advice is generated from standard financial planning rules. Investing involves risk; decide carefully."

var adviceTemplates = map[domain.RiskCategory]string{
	domain.Conservative: "At %d with a conservative risk profile, this allocation puts capital preservation first and suits investors with a low tolerance for losses. Focus on the stability of your bond and cash holdings.",
	domain.Balanced:     "As a %d-year-old investor, this balanced allocation pursues returns while keeping risk in check. Rebalance regularly to hold the stock/bond mix and stay disciplined over the long term.",
	domain.Aggressive:   "At %d you are relatively young and can tolerate higher risk, so this aggressive allocation aims for long-term growth. Expect market swings and build investing experience gradually.",
}

// TemplateAdvice returns the deterministic advice sentence for a category,
// followed by the disclaimer.
func TemplateAdvice(age int, category domain.RiskCategory) string {
	tmpl, ok := adviceTemplates[category]
	if !ok {
		tmpl = adviceTemplates[domain.Balanced]
	}
	return fmt.Sprintf(tmpl, age) + " " + Disclaimer
}

// riskWords mark text that already carries a risk warning.
var riskWords = []string{"risk", "caution", "carefully"}

// EnsureDisclaimer appends the disclaimer to generated prose that does not
// mention risk.
func EnsureDisclaimer(text string) string {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	for _, w := range riskWords {
		if strings.Contains(lower, w) {
			return text
		}
	}
	return text + " " + Disclaimer
}
