package advice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rpgo/pension-advisor/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const systemPrompt = "You are a retirement planning advisor. Explain plans in plain, professional English."

// Options configures AnthropicElaborator.
type Options struct {
	Model       string
	MaxTokens   int64
	Temperature *float64
	Timeout     time.Duration // zero means no deadline beyond ctx
}

// AnthropicElaborator asks a hosted model to comment on a finished plan.
// It implements calculation.Elaborator.
type AnthropicElaborator struct {
	client Client
	opts   Options
	log    *zap.Logger
}

// NewAnthropicElaborator wraps client. A nil logger uses the global one.
func NewAnthropicElaborator(client Client, opts Options, log *zap.Logger) *AnthropicElaborator {
	if log == nil {
		log = zap.L()
	}
	return &AnthropicElaborator{client: client, opts: opts, log: log.Named("advice")}
}

// Elaborate sends one request and returns the reply text. There is no retry;
// the caller falls back to template advice on any error.
func (e *AnthropicElaborator) Elaborate(ctx context.Context, profile domain.UserProfile, plan domain.Plan) (string, error) {
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := e.client.CreateMessage(ctx, MessageRequest{
		Model:       e.opts.Model,
		MaxTokens:   e.opts.MaxTokens,
		System:      systemPrompt,
		Prompt:      BuildPrompt(profile, plan),
		Temperature: e.opts.Temperature,
	})
	if err != nil {
		return "", eris.Wrap(err, "advice: elaborate")
	}

	text := strings.TrimSpace(resp.Text())
	e.log.Debug("advice generated",
		zap.String("model", resp.Model),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)),
	)
	if text == "" {
		return "", eris.New("advice: empty response")
	}
	return text, nil
}

// BuildPrompt renders the profile, funding need and allocation as the user
// message.
func BuildPrompt(profile domain.UserProfile, plan domain.Plan) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("User profile:\n")
	p.Fprintf(&b, "- Age: %d\n", profile.Age)
	p.Fprintf(&b, "- Annual income: %d\n", profile.AnnualIncome)
	p.Fprintf(&b, "- Current assets: %d\n", profile.CurrentAssets)
	p.Fprintf(&b, "- Monthly expenses: %d\n", profile.MonthlyExpenses)
	p.Fprintf(&b, "- Planned retirement age: %d\n", profile.RetirementAge)
	fmt.Fprintf(&b, "- Risk profile: %s\n", plan.RiskCategory)
	if profile.Goals != "" {
		fmt.Fprintf(&b, "- Other goals: %s\n", profile.Goals)
	}

	b.WriteString("\nRetirement needs:\n")
	fmt.Fprintf(&b, "- Years to retirement: %d\n", plan.RetirementNeed.YearsToRetire)
	p.Fprintf(&b, "- Projected savings needed: %d\n", plan.RetirementNeed.ProjectedTotalNeed)
	p.Fprintf(&b, "- Suggested monthly savings: %d\n", plan.RetirementNeed.MonthlySavingsNeeded)

	b.WriteString("\nPortfolio allocation:\n")
	for _, class := range domain.AssetClasses {
		fmt.Fprintf(&b, "- %s: %d%%\n", class, plan.Allocation.Percent(class))
	}

	b.WriteString("\nIn clear, professional language, give:\n")
	b.WriteString("1. A short assessment of this allocation\n")
	b.WriteString("2. Two or three specific suggestions for this person\n")
	b.WriteString("3. An important risk warning\n")
	b.WriteString("\nKeep the answer under 200 words.\n")
	return b.String()
}
