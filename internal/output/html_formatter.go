package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/pension-advisor/internal/domain"
)

// HTMLFormatter produces a standalone HTML plan report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/plan.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"amount":  FormatAmount,
	"pct":     FormatPercent,
	"score":   FormatScore,
	"classes": func() []domain.AssetClass { return domain.AssetClasses },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(plan *domain.Plan) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Plan
		Products           []domain.ProductRecommendation
		ImplementationTips []string
		RiskWarnings       []string
	}{
		Plan:               plan,
		Products:           plan.Recommendations.Ordered(),
		ImplementationTips: implementationTips,
		RiskWarnings:       riskWarnings,
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
