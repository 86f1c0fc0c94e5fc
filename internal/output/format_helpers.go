package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount formats a whole-unit amount with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount int64) string { return printer.Sprintf("%d", amount) }

// FormatPercent formats an allocation percentage.
func FormatPercent(pct int) string { return printer.Sprintf("%d%%", pct) }

// FormatScore formats the adjusted risk score with 2 decimals.
func FormatScore(score decimal.Decimal) string { return score.StringFixed(2) }
