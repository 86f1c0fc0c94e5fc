package output

import (
	"encoding/json"

	"github.com/rpgo/pension-advisor/internal/domain"
)

// JSONFormatter serializes the plan as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(plan *domain.Plan) ([]byte, error) {
	return json.MarshalIndent(plan, "", "  ")
}
