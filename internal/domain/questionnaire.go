package domain

// RiskOption is one lettered choice of a survey question.
type RiskOption struct {
	Answer RiskAnswer
	Text   string
}

// RiskQuestion is a survey question with its three choices in A, B, C order.
type RiskQuestion struct {
	Text    string
	Options [3]RiskOption
}

// RiskQuestions is the survey shown by every front end.
var RiskQuestions = [RiskQuestionCount]RiskQuestion{
	{
		Text: "What is your main investment goal?",
		Options: [3]RiskOption{
			{AnswerA, "Preserve capital and beat inflation"},
			{AnswerB, "Steady growth, accepting some volatility"},
			{AnswerC, "Strong growth, accepting large short-term losses"},
		},
	},
	{
		Text: "What is the largest loss you could tolerate?",
		Options: [3]RiskOption{
			{AnswerA, "Less than 5%"},
			{AnswerB, "5% to 15%"},
			{AnswerC, "More than 15%"},
		},
	},
	{
		Text: "How much investment experience do you have?",
		Options: [3]RiskOption{
			{AnswerA, "Beginner, just starting to learn"},
			{AnswerB, "Some, have invested in funds or stocks"},
			{AnswerC, "Extensive, trade regularly"},
		},
	},
}
