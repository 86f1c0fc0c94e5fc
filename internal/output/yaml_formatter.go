package output

import (
	"github.com/rpgo/pension-advisor/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the plan as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(plan *domain.Plan) ([]byte, error) {
	return yaml.Marshal(plan)
}
