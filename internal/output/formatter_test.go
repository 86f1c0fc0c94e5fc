package output

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/pension-advisor/internal/calculation"
	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"
)

func buildTestPlan(t *testing.T) *domain.Plan {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	plan, err := calculation.NewCalculationEngine().GeneratePlan(context.Background(), domain.UserProfile{
		Age:             30,
		RetirementAge:   60,
		AnnualIncome:    120000,
		CurrentAssets:   600000,
		MonthlyExpenses: 5000,
		RiskAnswers:     domain.RiskAnswers{"A", "B", "B"},
		Goals:           "education fund",
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	return &plan
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestPlan(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"PERSONAL RETIREMENT PLAN",
		"Generated: 2025-06-01 08:00:00",
		"Annual income:     120,000",
		"Risk profile:      Balanced (score 5.75)",
		"Other goals:       education fund",
		"Projected savings needed: 3,640,893",
		"Suggested monthly saving: 10,113",
		"Equity       47%",
		"Alternative  10%",
		"Total        100%",
		"Bond (33%):",
		"* Government Bonds",
		"ADVICE",
		"1. Start saving 10,113 every month now",
		"IMPLEMENTATION TIPS",
		"RISK WARNINGS",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("console report missing %q:\n%s", want, content)
		}
	}
}

func TestConsoleFormatterSkipsEmptyClasses(t *testing.T) {
	plan := buildTestPlan(t)
	plan.Allocation = domain.Allocation{Equity: 100}
	plan.Recommendations = calculation.RecommendProducts(plan.Allocation)
	out, err := ConsoleFormatter{}.Format(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "Cash") {
		t.Fatalf("unfunded class should not be listed:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestPlan(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"user_profile", "risk_category", "retirement_analysis", "portfolio_allocation", "product_recommendations", "advice", "generated_at"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q in %s", key, out)
		}
	}
	alloc := decoded["portfolio_allocation"].(map[string]any)
	if alloc["equity"].(float64) != 47 {
		t.Fatalf("equity = %v", alloc["equity"])
	}
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestPlan(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		RiskCategory string `yaml:"risk_category"`
		RiskScore    string `yaml:"risk_score"`
		Need         struct {
			Total int64 `yaml:"projected_total_need"`
		} `yaml:"retirement_analysis"`
	}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded.RiskCategory != "Balanced" || decoded.RiskScore != "5.75" || decoded.Need.Total != 3640893 {
		t.Fatalf("unexpected YAML content: %+v\n%s", decoded, out)
	}
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestPlan(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(records))
	}
	if records[1][0] != "Equity" || records[1][1] != "47" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[4][0] != "Alternative" || records[4][2] != "Gold ETF" {
		t.Fatalf("unexpected last row: %v", records[4])
	}
	if records[2][6] != "3640893" {
		t.Fatalf("projected need column = %q", records[2][6])
	}
}

func TestHTMLFormatter(t *testing.T) {
	plan := buildTestPlan(t)
	plan.ProfileSummary.Goals = "<script>alert(1)</script>"
	out, err := HTMLFormatter{}.Format(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"<h1>Personal Retirement Plan</h1>", "3,640,893", "Balanced", "47%", "CSI 300 Index Fund", "Risk Warnings"} {
		if !strings.Contains(content, want) {
			t.Fatalf("html missing %q", want)
		}
	}
	if strings.Contains(content, "<script>alert(1)</script>") {
		t.Fatalf("goals were not escaped")
	}
}

func TestXLSXFormatter(t *testing.T) {
	out, err := XLSXFormatter{}.Format(buildTestPlan(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := xlsx.OpenBinary(out)
	if err != nil {
		t.Fatalf("OpenBinary: %v", err)
	}
	summary, ok := f.Sheet[SummarySheet]
	if !ok {
		t.Fatalf("missing %s sheet", SummarySheet)
	}
	if got := summary.Rows[0].Cells[1].String(); got != "2025-06-01 08:00:00" {
		t.Fatalf("generated cell = %q", got)
	}
	alloc, ok := f.Sheet[AllocationSheet]
	if !ok {
		t.Fatalf("missing %s sheet", AllocationSheet)
	}
	if len(alloc.Rows) != 6 {
		t.Fatalf("expected header + 4 classes + total, got %d rows", len(alloc.Rows))
	}
	if got := alloc.Rows[1].Cells[0].String(); got != "Equity" {
		t.Fatalf("first class = %q", got)
	}
	if v, err := alloc.Rows[1].Cells[1].Int(); err != nil || v != 47 {
		t.Fatalf("equity pct = %d (%v)", v, err)
	}
	if v, err := alloc.Rows[5].Cells[1].Int(); err != nil || v != 100 {
		t.Fatalf("total = %d (%v)", v, err)
	}
}

func TestGetFormatterByNameAndAliases(t *testing.T) {
	cases := map[string]string{
		"console":     "console",
		" TEXT ":      "console",
		"json-pretty": "json",
		"yml":         "yaml",
		"excel":       "xlsx",
		"html-report": "html",
		"csv":         "csv",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil || f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %v, want %s", in, f, want)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Fatalf("expected nil for unknown format")
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	got := strings.Join(AvailableFormatterNames(), ",")
	if got != "console,csv,html,json,xlsx,yaml" {
		t.Fatalf("AvailableFormatterNames = %s", got)
	}
}

type stubFormatter struct{}

func (stubFormatter) Name() string                         { return "stub" }
func (stubFormatter) Format(*domain.Plan) ([]byte, error) { return []byte("hello"), nil }

func TestWriteFormatted(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = time.Now })

	dir := t.TempDir()
	path, err := WriteFormatted(stubFormatter{}, buildTestPlan(t), dir, "txt")
	if err != nil {
		t.Fatalf("WriteFormatted: %v", err)
	}
	if path != filepath.Join(dir, "pension_plan_20250601_080000.txt") {
		t.Fatalf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Fatalf("file content = %q (%v)", data, err)
	}
}
