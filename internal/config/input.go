package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rpgo/pension-advisor/internal/domain"
	"gopkg.in/yaml.v3"
)

// Field names shared by every adapter (form keys, JSON keys, error labels).
const (
	FieldAge             = "age"
	FieldAnnualIncome    = "annual_income"
	FieldCurrentAssets   = "current_assets"
	FieldMonthlyExpenses = "monthly_expenses"
	FieldRetirementAge   = "retirement_age"
	FieldGoals           = "goals"
)

// RequiredFields lists the fields a profile cannot be built without, in form order.
var RequiredFields = []string{FieldAge, FieldAnnualIncome, FieldCurrentAssets, FieldMonthlyExpenses, FieldRetirementAge}

// RiskField returns the form key for survey question i (0-based).
func RiskField(i int) string {
	return fmt.Sprintf("risk_q%d", i+1)
}

// Input bounds.
const (
	MaxAge    = 120
	MaxAmount = int64(1_000_000_000_000)
)

// InputParser handles parsing of profile input from files and form fields
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a single profile from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (domain.UserProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.UserProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("profile validation failed: %w", err)
	}

	return profile, nil
}

// BatchFile is the on-disk layout for many profiles.
type BatchFile struct {
	Profiles []domain.UserProfile `yaml:"profiles"`
}

// LoadBatchFromFile loads a list of profiles. Every profile must validate;
// the first failure names its index.
func (ip *InputParser) LoadBatchFromFile(filename string) ([]domain.UserProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var batch BatchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(batch.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles provided in %s", filename)
	}

	for i, p := range batch.Profiles {
		if err := ip.ValidateProfile(p); err != nil {
			return nil, fmt.Errorf("profile %d validation failed: %w", i, err)
		}
	}
	return batch.Profiles, nil
}

// ValidateProfile checks ranges and the age ordering. Errors are
// *domain.ValidationError with user-facing messages.
func (ip *InputParser) ValidateProfile(p domain.UserProfile) error {
	return ValidateProfile(p)
}

// ValidateProfile is the parser-free form of InputParser.ValidateProfile.
func ValidateProfile(p domain.UserProfile) error {
	ages := []struct {
		field string
		v     int
	}{
		{FieldAge, p.Age},
		{FieldRetirementAge, p.RetirementAge},
	}
	for _, a := range ages {
		if a.v < 0 {
			return domain.NewValidationError(a.field, "%s cannot be negative", a.field)
		}
		if a.v > MaxAge {
			return domain.NewValidationError(a.field, "%s must be at most %d", a.field, MaxAge)
		}
	}

	amounts := []struct {
		field string
		v     int64
	}{
		{FieldAnnualIncome, p.AnnualIncome},
		{FieldCurrentAssets, p.CurrentAssets},
		{FieldMonthlyExpenses, p.MonthlyExpenses},
	}
	for _, a := range amounts {
		if a.v < 0 {
			return domain.NewValidationError(a.field, "%s cannot be negative", a.field)
		}
		if a.v > MaxAmount {
			return domain.NewValidationError(a.field, "%s must be at most %d", a.field, MaxAmount)
		}
	}

	if p.YearsToRetire() <= 0 {
		return domain.NewValidationError(FieldRetirementAge, "retirement age must be greater than current age")
	}
	return nil
}

// ParseProfile builds a profile from string-valued fields as submitted by a
// form or decoded from a request body. Risk answers default to B; letters are
// not checked here since the scorer tolerates unknown ones.
func ParseProfile(fields map[string]string) (domain.UserProfile, error) {
	var p domain.UserProfile

	for _, f := range RequiredFields {
		if strings.TrimSpace(fields[f]) == "" {
			return domain.UserProfile{}, domain.NewValidationError(f, "missing required field: %s", f)
		}
	}

	var err error
	if p.Age, err = parseAge(fields, FieldAge); err != nil {
		return domain.UserProfile{}, err
	}
	if p.RetirementAge, err = parseAge(fields, FieldRetirementAge); err != nil {
		return domain.UserProfile{}, err
	}
	if p.AnnualIncome, err = parseWhole(fields, FieldAnnualIncome); err != nil {
		return domain.UserProfile{}, err
	}
	if p.CurrentAssets, err = parseWhole(fields, FieldCurrentAssets); err != nil {
		return domain.UserProfile{}, err
	}
	if p.MonthlyExpenses, err = parseWhole(fields, FieldMonthlyExpenses); err != nil {
		return domain.UserProfile{}, err
	}

	p.RiskAnswers = domain.DefaultRiskAnswers()
	for i := range p.RiskAnswers {
		if v := strings.TrimSpace(fields[RiskField(i)]); v != "" {
			p.RiskAnswers[i] = domain.RiskAnswer(v).Normalize()
		}
	}
	p.Goals = strings.TrimSpace(fields[FieldGoals])

	if err := ValidateProfile(p); err != nil {
		return domain.UserProfile{}, err
	}
	return p, nil
}

func parseWhole(fields map[string]string, field string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(fields[field]), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a whole number", field),
			Err:     err,
		}
	}
	return v, nil
}

func parseAge(fields map[string]string, field string) (int, error) {
	v, err := parseWhole(fields, field)
	if err != nil {
		return 0, err
	}
	if v > MaxAge {
		return 0, domain.NewValidationError(field, "%s must be at most %d", field, MaxAge)
	}
	if v < 0 {
		return 0, domain.NewValidationError(field, "%s cannot be negative", field)
	}
	return int(v), nil
}
