package validation

import "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"

// CheckFunc scans the indexed graph and returns the issues a rule raises.
// It must not mutate the graph.
type CheckFunc func(ix *Index) []domain.Issue

type Rule struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Severity    domain.Severity `json:"severity"`
	Description string          `json:"description"`
	Check       CheckFunc       `json:"-"`
}
