package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/pension-advisor/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// extensions maps canonical formatter names to file extensions.
var extensions = map[string]string{
	"console": "txt",
}

// ExtensionFor returns the file extension used when saving a format.
func ExtensionFor(format string) string {
	n := NormalizeFormatName(format)
	if ext, ok := extensions[n]; ok {
		return ext
	}
	return n
}

// Lookup resolves a format name, enriching the error with what is available.
func Lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats a plan in memory.
func Render(plan *domain.Plan, format string) ([]byte, error) {
	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return f.Format(plan)
}

// GenerateReport writes the plan to a timestamped file in dir and returns its path.
func GenerateReport(plan *domain.Plan, format, dir string) (string, error) {
	f, err := Lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, plan, dir, ExtensionFor(format))
}
