// Package chat collects a profile one question at a time.
package chat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/pension-advisor/internal/config"
	"github.com/rpgo/pension-advisor/internal/domain"
)

// ErrQuit is returned by Answer when the user asks to leave.
var ErrQuit = errors.New("chat: user quit")

var (
	quitWords = []string{"quit", "exit"}
	skipWords = []string{"skip"}
)

// Stage keys in the order they are asked.
const (
	StageWelcome       = "welcome"
	StageAge           = config.FieldAge
	StageIncome        = config.FieldAnnualIncome
	StageAssets        = config.FieldCurrentAssets
	StageExpenses      = config.FieldMonthlyExpenses
	StageRetirementAge = config.FieldRetirementAge
	StageGoals         = config.FieldGoals
)

type stage struct {
	key      string
	prompt   string
	optional bool
	skipTo   string // stored value when skipped
	parse    func(s *Session, input string) (string, error)
}

func riskPrompt(i int) string {
	q := domain.RiskQuestions[i]
	var b strings.Builder
	if i == 0 {
		b.WriteString("Next, a few questions about your attitude to risk.\n")
	}
	fmt.Fprintf(&b, "Question %d: %s", i+1, q.Text)
	for _, o := range q.Options {
		fmt.Fprintf(&b, "\n%s) %s", o.Answer, o.Text)
	}
	return b.String()
}

func buildStages() []stage {
	stages := []stage{
		{key: StageWelcome, prompt: "Hello! I am your retirement planning assistant. Answer a few short questions and I will put together a personal plan for you. Press Enter to begin.", optional: true, parse: acceptAny},
		{key: StageAge, prompt: "How old are you?", parse: parseAge},
		{key: StageIncome, prompt: "Thanks! What is your annual income, including salary and bonuses?", parse: parseAmount},
		{key: StageAssets, prompt: "What investable assets do you already have (savings, funds, stocks)?", parse: parseAmount},
		{key: StageExpenses, prompt: "Roughly how much do you spend on essentials each month?", parse: parseAmount},
		{key: StageRetirementAge, prompt: "At what age do you plan to retire?", parse: parseRetirementAge},
	}
	for i := 0; i < domain.RiskQuestionCount; i++ {
		stages = append(stages, stage{
			key:      config.RiskField(i),
			prompt:   riskPrompt(i),
			optional: true,
			skipTo:   string(domain.DefaultRiskAnswer),
			parse:    parseRiskAnswer,
		})
	}
	return append(stages, stage{
		key:      StageGoals,
		prompt:   "Besides retirement, do you have other financial goals (a home, education, travel)? Type skip if not.",
		optional: true,
		parse:    acceptAny,
	})
}

// Session is a linear questionnaire: an ordered list of stages and the index
// of the one being asked. It is not safe for concurrent use.
type Session struct {
	stages []stage
	index  int
	fields map[string]string
}

// NewSession starts at the welcome stage.
func NewSession() *Session {
	return &Session{stages: buildStages(), fields: make(map[string]string)}
}

// Done reports whether every stage has an answer.
func (s *Session) Done() bool { return s.index >= len(s.stages) }

// Stage returns the key of the stage awaiting an answer, or "" when done.
func (s *Session) Stage() string {
	if s.Done() {
		return ""
	}
	return s.stages[s.index].key
}

// Prompt returns the question for the current stage.
func (s *Session) Prompt() string {
	if s.Done() {
		return ""
	}
	return s.stages[s.index].prompt
}

// Answer records input for the current stage and advances. Blank or invalid
// input leaves the stage unchanged and returns a *domain.ValidationError whose
// message can be shown to the user before re-prompting.
func (s *Session) Answer(input string) error {
	if s.Done() {
		return errors.New("chat: session already complete")
	}
	st := s.stages[s.index]
	input = strings.TrimSpace(input)
	cmd := strings.ToLower(input)

	switch {
	case contains(quitWords, cmd):
		return ErrQuit
	case contains(skipWords, cmd):
		if !st.optional {
			return domain.NewValidationError(st.key, "This question cannot be skipped.")
		}
		s.fields[st.key] = st.skipTo
		s.index++
		return nil
	case input == "" && st.key != StageWelcome:
		return domain.NewValidationError(st.key, "Sorry, I did not catch that. Please answer again.")
	}

	v, err := st.parse(s, input)
	if err != nil {
		return err
	}
	s.fields[st.key] = v
	s.index++
	return nil
}

// Profile converts the collected answers. It fails until Done.
func (s *Session) Profile() (domain.UserProfile, error) {
	if !s.Done() {
		return domain.UserProfile{}, fmt.Errorf("chat: profile incomplete at stage %q", s.Stage())
	}
	return config.ParseProfile(s.fields)
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

func acceptAny(_ *Session, input string) (string, error) { return input, nil }

// wholeNumber accepts digits with optional thousands separators.
func wholeNumber(key, input string) (int64, error) {
	v, err := strconv.ParseInt(strings.ReplaceAll(input, ",", ""), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: key, Message: "Please enter a whole number.", Err: err}
	}
	if v < 0 {
		return 0, domain.NewValidationError(key, "The amount cannot be negative.")
	}
	return v, nil
}

func parseAmount(s *Session, input string) (string, error) {
	key := s.stages[s.index].key
	v, err := wholeNumber(key, input)
	if err != nil {
		return "", err
	}
	if v > config.MaxAmount {
		return "", domain.NewValidationError(key, "That amount looks too large. Please check it.")
	}
	return strconv.FormatInt(v, 10), nil
}

func parseAge(s *Session, input string) (string, error) {
	v, err := wholeNumber(StageAge, input)
	if err != nil {
		return "", err
	}
	if v > config.MaxAge {
		return "", domain.NewValidationError(StageAge, "Please enter an age of at most %d.", config.MaxAge)
	}
	return strconv.FormatInt(v, 10), nil
}

func parseRetirementAge(s *Session, input string) (string, error) {
	v, err := wholeNumber(StageRetirementAge, input)
	if err != nil {
		return "", err
	}
	if v > config.MaxAge {
		return "", domain.NewValidationError(StageRetirementAge, "Please enter an age of at most %d.", config.MaxAge)
	}
	age, _ := strconv.ParseInt(s.fields[StageAge], 10, 64)
	if v <= age {
		return "", domain.NewValidationError(StageRetirementAge, "Retirement age must be greater than your current age (%d).", age)
	}
	return strconv.FormatInt(v, 10), nil
}

func parseRiskAnswer(s *Session, input string) (string, error) {
	a := domain.RiskAnswer(strings.TrimSuffix(input, ")")).Normalize()
	if !a.IsValid() {
		return "", domain.NewValidationError(s.stages[s.index].key, "Please answer A, B or C.")
	}
	return string(a), nil
}
