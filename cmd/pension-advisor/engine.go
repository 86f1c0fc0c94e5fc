package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/rpgo/pension-advisor/internal/advice"
	"github.com/rpgo/pension-advisor/internal/calculation"
	"github.com/rpgo/pension-advisor/internal/config"
)

// newEngine builds the calculation engine, attaching the hosted-model
// elaborator when the advice provider asks for it.
func newEngine(c *config.Config) *calculation.CalculationEngine {
	ce := calculation.NewCalculationEngine()
	ce.SetLogger(calculation.NewZapLogger(zap.L().Named("engine")))

	if c.Advice.Provider == config.AdviceProviderAnthropic {
		temperature := c.Anthropic.Temperature
		client := advice.NewClient(c.Anthropic.Key, c.Anthropic.BaseURL)
		ce.SetElaborator(advice.NewAnthropicElaborator(client, advice.Options{
			Model:       c.Anthropic.Model,
			MaxTokens:   c.Anthropic.MaxTokens,
			Temperature: &temperature,
			Timeout:     time.Duration(c.Anthropic.TimeoutSecs) * time.Second,
		}, zap.L()))
		zap.L().Info("advice elaboration enabled", zap.String("model", c.Anthropic.Model))
	}
	return ce
}
