package output

import (
	"bytes"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/tealeg/xlsx/v2"
)

// XLSXFormatter builds a workbook with a Summary sheet (profile and needs)
// and an Allocation sheet (one row per asset class).
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

// Sheet names.
const (
	SummarySheet    = "Summary"
	AllocationSheet = "Allocation"
)

func (x XLSXFormatter) Format(plan *domain.Plan) ([]byte, error) {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(SummarySheet)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add summary sheet")
	}
	p := plan.ProfileSummary
	n := plan.RetirementNeed
	addPair(summary, "Generated", plan.GeneratedAt)
	addIntPair(summary, "Age", int64(p.Age))
	addIntPair(summary, "Annual income", p.AnnualIncome)
	addIntPair(summary, "Current assets", p.CurrentAssets)
	addIntPair(summary, "Monthly expenses", p.MonthlyExpenses)
	addIntPair(summary, "Retirement age", int64(p.RetirementAge))
	addPair(summary, "Risk category", string(plan.RiskCategory))
	addPair(summary, "Risk score", FormatScore(plan.RiskScore))
	addIntPair(summary, "Years to retirement", int64(n.YearsToRetire))
	addIntPair(summary, "Current annual expenses", n.CurrentAnnualExpenses)
	addIntPair(summary, "Projected savings needed", n.ProjectedTotalNeed)
	addIntPair(summary, "Suggested monthly saving", n.MonthlySavingsNeeded)
	addPair(summary, "Advice", plan.AdviceText)

	alloc, err := f.AddSheet(AllocationSheet)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add allocation sheet")
	}
	header := alloc.AddRow()
	for _, h := range []string{"Asset class", "Percentage", "Products"} {
		header.AddCell().SetString(h)
	}
	for _, class := range domain.AssetClasses {
		row := alloc.AddRow()
		row.AddCell().SetString(string(class))
		row.AddCell().SetInt(plan.Allocation.Percent(class))
		row.AddCell().SetString(strings.Join(plan.Recommendations[class].Products, "; "))
	}
	total := alloc.AddRow()
	total.AddCell().SetString("Total")
	total.AddCell().SetInt(plan.Allocation.Total())

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, eris.Wrap(err, "xlsx: write workbook")
	}
	return buf.Bytes(), nil
}

func addPair(sheet *xlsx.Sheet, label, value string) {
	row := sheet.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetString(value)
}

func addIntPair(sheet *xlsx.Sheet, label string, value int64) {
	row := sheet.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetInt64(value)
}
