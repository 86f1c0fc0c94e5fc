package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rpgo/pension-advisor/internal/calculation"
	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var happyPath = []string{"", "30", "120,000", "600000", "5000", "60", "a", "B)", "b", "buy a flat"}

func TestSessionStageOrder(t *testing.T) {
	s := NewSession()
	want := []string{"welcome", "age", "annual_income", "current_assets", "monthly_expenses", "retirement_age", "risk_q1", "risk_q2", "risk_q3", "goals"}

	var got []string
	for i := 0; !s.Done(); i++ {
		got = append(got, s.Stage())
		require.NoError(t, s.Answer(happyPath[i]))
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "", s.Stage())
	assert.Equal(t, "", s.Prompt())
}

func TestSessionProfile(t *testing.T) {
	s := NewSession()
	_, err := s.Profile()
	assert.Error(t, err, "incomplete sessions have no profile")

	for _, in := range happyPath {
		require.NoError(t, s.Answer(in))
	}
	p, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, domain.UserProfile{
		Age:             30,
		RetirementAge:   60,
		AnnualIncome:    120000,
		CurrentAssets:   600000,
		MonthlyExpenses: 5000,
		RiskAnswers:     domain.RiskAnswers{"A", "B", "B"},
		Goals:           "buy a flat",
	}, p)

	assert.Error(t, s.Answer("more"))
}

func TestSessionRepromptsInvalidInput(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Answer("hi"))

	tests := []struct {
		input string
		msg   string
	}{
		{"", "Sorry, I did not catch that. Please answer again."},
		{"thirty", "Please enter a whole number."},
		{"-3", "The amount cannot be negative."},
		{"200", "Please enter an age of at most 120."},
		{"skip", "This question cannot be skipped."},
	}
	for _, tt := range tests {
		err := s.Answer(tt.input)
		require.Error(t, err, tt.input)
		assert.True(t, domain.IsValidationError(err))
		assert.Equal(t, tt.msg, err.Error())
		assert.Equal(t, StageAge, s.Stage(), "stage must not advance on %q", tt.input)
	}

	require.NoError(t, s.Answer("45"))
	assert.Equal(t, StageIncome, s.Stage())
}

func TestSessionRetirementAgeAfterAge(t *testing.T) {
	s := NewSession()
	for _, in := range []string{"", "50", "1", "1", "1"} {
		require.NoError(t, s.Answer(in))
	}
	err := s.Answer("50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than your current age (50)")
	assert.Equal(t, StageRetirementAge, s.Stage())
	require.NoError(t, s.Answer("51"))
}

func TestSessionRiskAnswers(t *testing.T) {
	s := NewSession()
	for _, in := range happyPath[:6] {
		require.NoError(t, s.Answer(in))
	}
	require.Equal(t, "risk_q1", s.Stage())
	assert.Contains(t, s.Prompt(), domain.RiskQuestions[0].Text)
	assert.Contains(t, s.Prompt(), "C) "+domain.RiskQuestions[0].Options[2].Text)

	err := s.Answer("D")
	require.Error(t, err)
	assert.Equal(t, "Please answer A, B or C.", err.Error())

	require.NoError(t, s.Answer("skip"))
	require.NoError(t, s.Answer("SKIP"))
	require.NoError(t, s.Answer("c"))
	require.NoError(t, s.Answer("skip"))

	p, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, domain.RiskAnswers{"B", "B", "C"}, p.RiskAnswers)
	assert.Equal(t, "", p.Goals)
}

func TestSessionWelcomeAcceptsAnything(t *testing.T) {
	for _, in := range []string{"", "hello", "skip", "SKIP"} {
		s := NewSession()
		require.NoError(t, s.Answer(in), "input %q", in)
		assert.Equal(t, StageAge, s.Stage())
	}
	assert.True(t, errors.Is(NewSession().Answer("quit"), ErrQuit))
}

func TestSessionQuit(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Answer(""))
	assert.True(t, errors.Is(s.Answer("QUIT"), ErrQuit))
	assert.True(t, errors.Is(s.Answer(" exit "), ErrQuit))
	assert.Equal(t, StageAge, s.Stage())
}

func TestRunnerFullConversation(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{"", "thirty", "30", "120000", "0", "5000", "60", "B", "B", "B", "skip"}, "\n") + "\n")
	var out bytes.Buffer

	r := &Runner{Planner: calculation.NewCalculationEngine(), Log: zap.NewNop()}
	require.NoError(t, r.Run(context.Background(), in, &out))

	text := out.String()
	assert.Contains(t, text, "Advisor: Hello!")
	assert.Contains(t, text, "Advisor: Please enter a whole number.")
	assert.Contains(t, text, "PERSONAL RETIREMENT PLAN")
	assert.Contains(t, text, "Risk profile:      Aggressive")
	assert.Contains(t, text, "Projected savings needed: 3,640,893")
	assert.Contains(t, text, "Your report is ready")
}

func TestRunnerQuit(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Planner: calculation.NewCalculationEngine(), Log: zap.NewNop()}
	require.NoError(t, r.Run(context.Background(), strings.NewReader("\n40\nquit\n"), &out))

	assert.Contains(t, out.String(), "Goodbye!")
	assert.NotContains(t, out.String(), "PERSONAL RETIREMENT PLAN")
}

func TestRunnerEOF(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Planner: calculation.NewCalculationEngine(), Log: zap.NewNop()}
	require.NoError(t, r.Run(context.Background(), strings.NewReader("\n40\n"), &out))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{Planner: calculation.NewCalculationEngine(), Log: zap.NewNop()}
	err := r.Run(ctx, strings.NewReader("\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
