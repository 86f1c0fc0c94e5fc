package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/rpgo/pension-advisor/internal/output"
)

func TestFormatters(t *testing.T) {
	if got := output.FormatAmount(3640893); got != "3,640,893" {
		t.Fatalf("FormatAmount = %q", got)
	}
	if got := output.FormatAmount(-1200); got != "-1,200" {
		t.Fatalf("FormatAmount negative = %q", got)
	}
	if got := output.FormatPercent(47); got != "47%" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := output.FormatScore(stddec.RequireFromString("6.9")); got != "6.90" {
		t.Fatalf("FormatScore = %q", got)
	}
}

func minimalPlan() *domain.Plan {
	return &domain.Plan{
		RiskCategory: domain.Balanced,
		RiskScore:    stddec.NewFromInt(6),
		Allocation:   domain.Allocation{Equity: 50, Bond: 35, Cash: 10, Alternative: 5},
		GeneratedAt:  "2025-01-01 00:00:00",
	}
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "csv", "console", "yaml", "html", "xlsx"} {
		path, err := output.GenerateReport(minimalPlan(), format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if want := "." + output.ExtensionFor(format); filepath.Ext(path) != want {
			t.Fatalf("%s: extension %q, want %q", format, filepath.Ext(path), want)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
	}
}

func TestGenerateReportUnsupported(t *testing.T) {
	_, err := output.GenerateReport(minimalPlan(), "pdf", t.TempDir())
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console") {
		t.Fatalf("error should list available formats: %v", err)
	}
}

func TestExtensionFor(t *testing.T) {
	if got := output.ExtensionFor("text"); got != "txt" {
		t.Fatalf("ExtensionFor(text) = %q", got)
	}
	if got := output.ExtensionFor("excel"); got != "xlsx" {
		t.Fatalf("ExtensionFor(excel) = %q", got)
	}
}

func TestRender(t *testing.T) {
	out, err := output.Render(minimalPlan(), "json")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), `"risk_category": "Balanced"`) {
		t.Fatalf("unexpected JSON: %s", out)
	}
}
