package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func validFields() map[string]string {
	return map[string]string{
		"age":              "30",
		"annual_income":    "120000",
		"current_assets":   "50000",
		"monthly_expenses": "5000",
		"retirement_age":   "60",
		"risk_q1":          "c",
		"risk_q2":          "",
		"goals":            "  buy a house  ",
	}
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile(validFields())
	require.NoError(t, err)

	assert.Equal(t, 30, p.Age)
	assert.Equal(t, 60, p.RetirementAge)
	assert.Equal(t, int64(120000), p.AnnualIncome)
	assert.Equal(t, int64(50000), p.CurrentAssets)
	assert.Equal(t, int64(5000), p.MonthlyExpenses)
	assert.Equal(t, domain.RiskAnswers{domain.AnswerC, domain.AnswerB, domain.AnswerB}, p.RiskAnswers)
	assert.Equal(t, "buy a house", p.Goals)
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		field   string
		message string
	}{
		{"missing age", func(f map[string]string) { delete(f, "age") }, "age", "missing required field: age"},
		{"blank income", func(f map[string]string) { f["annual_income"] = "  " }, "annual_income", "missing required field: annual_income"},
		{"fractional expenses", func(f map[string]string) { f["monthly_expenses"] = "12.5" }, "monthly_expenses", "monthly_expenses must be a whole number"},
		{"text age", func(f map[string]string) { f["age"] = "thirty" }, "age", "age must be a whole number"},
		{"negative assets", func(f map[string]string) { f["current_assets"] = "-1" }, "current_assets", "current_assets cannot be negative"},
		{"negative age", func(f map[string]string) { f["age"] = "-5" }, "age", "age cannot be negative"},
		{"ancient", func(f map[string]string) { f["retirement_age"] = "121" }, "retirement_age", "retirement_age must be at most 120"},
		{"huge income", func(f map[string]string) { f["annual_income"] = "1000000000001" }, "annual_income", "annual_income must be at most 1000000000000"},
		{"retire now", func(f map[string]string) { f["retirement_age"] = "30" }, "retirement_age", "retirement age must be greater than current age"},
		{"retire earlier", func(f map[string]string) { f["retirement_age"] = "25" }, "retirement_age", "retirement age must be greater than current age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(fields)

			_, err := ParseProfile(fields)
			require.Error(t, err)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestLoadFromFile_Success(t *testing.T) {
	content := "age: 45\n" +
		"retirement_age: 65\n" +
		"annual_income: 90000\n" +
		"current_assets: 250000\n" +
		"monthly_expenses: 4000\n" +
		"risk_answers:\n" +
		"  q1: A\n" +
		"  q3: C\n" +
		"goals: travel\n"

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 45, p.Age)
	assert.Equal(t, 65, p.RetirementAge)
	assert.Equal(t, int64(250000), p.CurrentAssets)
	assert.Equal(t, domain.AnswerA, p.RiskAnswers[0])
	assert.Equal(t, domain.AnswerB, p.RiskAnswers.Normalized()[1])
	assert.Equal(t, domain.AnswerC, p.RiskAnswers[2])
	assert.Equal(t, "travel", p.Goals)
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("age: [1"), 0644))
	_, err = parser.LoadFromFile(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("age: 50\nretirement_age: 40\n"), 0644))
	_, err = parser.LoadFromFile(invalid)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestLoadBatchFromFile(t *testing.T) {
	content := `profiles:
  - age: 30
    retirement_age: 60
    monthly_expenses: 5000
    risk_answers: [B, B, B]
  - age: 55
    retirement_age: 60
    monthly_expenses: 3000
    risk_answers: [A, A, A]
`
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	profiles, err := NewInputParser().LoadBatchFromFile(path)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, 55, profiles[1].Age)
}

func TestLoadBatchFromFile_Errors(t *testing.T) {
	parser := NewInputParser()
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("profiles: []\n"), 0644))
	_, err := parser.LoadBatchFromFile(empty)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("profiles:\n  - age: 30\n    retirement_age: 60\n  - age: 70\n    retirement_age: 60\n"), 0644))
	_, err = parser.LoadBatchFromFile(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile 1")
	assert.True(t, domain.IsValidationError(err))
}

func TestRiskField(t *testing.T) {
	assert.Equal(t, "risk_q1", RiskField(0))
	assert.Equal(t, "risk_q3", RiskField(2))
}
