package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rpgo/pension-advisor/internal/domain"
)

// CSVSummarizer implements the CSV output (one row per asset class, plan
// totals repeated on each row).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(plan *domain.Plan) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"AssetClass", "Percentage", "Products", "RiskCategory", "RiskScore", "YearsToRetire", "ProjectedTotalNeed", "MonthlySavingsNeeded", "GeneratedAt"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	n := plan.RetirementNeed
	for _, class := range domain.AssetClasses {
		row := []string{
			string(class),
			strconv.Itoa(plan.Allocation.Percent(class)),
			strings.Join(plan.Recommendations[class].Products, "; "),
			string(plan.RiskCategory),
			FormatScore(plan.RiskScore),
			strconv.Itoa(n.YearsToRetire),
			strconv.FormatInt(n.ProjectedTotalNeed, 10),
			strconv.FormatInt(n.MonthlySavingsNeeded, 10),
			plan.GeneratedAt,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
