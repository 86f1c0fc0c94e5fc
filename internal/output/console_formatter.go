package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/pension-advisor/internal/domain"
)

// ConsoleFormatter renders the full plain-text plan report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

const reportWidth = 70

var (
	implementationTips = []string{
		"Open a dedicated retirement savings account",
		"Set up an automatic monthly transfer",
		"Keep learning about personal finance",
		"Stay invested for the long term",
	}
	riskWarnings = []string{
		"This plan is generated from the information provided and is for reference only",
		"Investing involves risk; past performance does not guarantee future results",
		"Market swings can cause short-term losses",
		"Consider consulting a licensed financial adviser to refine the plan",
	}
)

func (c ConsoleFormatter) Format(plan *domain.Plan) ([]byte, error) {
	var buf bytes.Buffer
	heavy := strings.Repeat("=", reportWidth)
	light := strings.Repeat("-", reportWidth)
	section := func(title string) {
		fmt.Fprintf(&buf, "\n%s\n%s\n", title, light)
	}

	fmt.Fprintln(&buf, heavy)
	fmt.Fprintln(&buf, "PERSONAL RETIREMENT PLAN")
	fmt.Fprintf(&buf, "Generated: %s\n", plan.GeneratedAt)
	fmt.Fprintln(&buf, heavy)

	p := plan.ProfileSummary
	section("PROFILE")
	fmt.Fprintf(&buf, "   Age:               %d\n", p.Age)
	fmt.Fprintf(&buf, "   Annual income:     %s\n", FormatAmount(p.AnnualIncome))
	fmt.Fprintf(&buf, "   Current assets:    %s\n", FormatAmount(p.CurrentAssets))
	fmt.Fprintf(&buf, "   Monthly expenses:  %s\n", FormatAmount(p.MonthlyExpenses))
	fmt.Fprintf(&buf, "   Retirement age:    %d\n", p.RetirementAge)
	fmt.Fprintf(&buf, "   Risk profile:      %s (score %s)\n", plan.RiskCategory, FormatScore(plan.RiskScore))
	if p.Goals != "" {
		fmt.Fprintf(&buf, "   Other goals:       %s\n", p.Goals)
	}

	n := plan.RetirementNeed
	section("RETIREMENT NEEDS")
	fmt.Fprintf(&buf, "   Years to retirement:      %d\n", n.YearsToRetire)
	fmt.Fprintf(&buf, "   Current annual expenses:  %s\n", FormatAmount(n.CurrentAnnualExpenses))
	fmt.Fprintf(&buf, "   Projected savings needed: %s\n", FormatAmount(n.ProjectedTotalNeed))
	fmt.Fprintf(&buf, "   Suggested monthly saving: %s\n", FormatAmount(n.MonthlySavingsNeeded))
	if n.Simplified {
		fmt.Fprintln(&buf, "   (estimate excludes inflation)")
	}

	section("PORTFOLIO ALLOCATION")
	for _, class := range domain.AssetClasses {
		if pct := plan.Allocation.Percent(class); pct > 0 {
			fmt.Fprintf(&buf, "   %-12s %s\n", class, FormatPercent(pct))
		}
	}
	fmt.Fprintf(&buf, "   %-12s %s\n", "Total", FormatPercent(plan.Allocation.Total()))

	section("RECOMMENDED PRODUCTS")
	for _, rec := range plan.Recommendations.Ordered() {
		fmt.Fprintf(&buf, "\n   %s (%s):\n", rec.Class, FormatPercent(rec.Percentage))
		for _, product := range rec.Products {
			fmt.Fprintf(&buf, "      * %s\n", product)
		}
	}

	if plan.AdviceText != "" {
		section("ADVICE")
		fmt.Fprintf(&buf, "   %s\n", plan.AdviceText)
	}

	section("ACTION PLAN")
	fmt.Fprintf(&buf, "   1. Start saving %s every month now\n", FormatAmount(n.MonthlySavingsNeeded))
	fmt.Fprintln(&buf, "   2. Invest your current assets in the proportions above")
	fmt.Fprintln(&buf, "   3. Review and rebalance the portfolio every six months")
	fmt.Fprintln(&buf, "   4. Reduce risk exposure gradually as you get older")

	section("IMPLEMENTATION TIPS")
	for _, tip := range implementationTips {
		fmt.Fprintf(&buf, "   * %s\n", tip)
	}

	section("RISK WARNINGS")
	for i, w := range riskWarnings {
		fmt.Fprintf(&buf, "   %d. %s\n", i+1, w)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, heavy)
	return buf.Bytes(), nil
}
