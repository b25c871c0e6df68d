package rules

import (
	"fmt"
	"regexp"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

var idPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const (
	maxElements       = 20
	dominantPoolShare = 0.7
	minBalanceSample  = 5
)

func checkIDFormat(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Elements {
		e := &ix.Graph.Elements[i]
		if e.ID == "" || idPattern.MatchString(e.ID) {
			continue
		}
		out = append(out, elementIssue("STYLE_001", domain.SeverityMinor, e, false,
			fmt.Sprintf("Element id %q contains characters outside letters, digits and underscore", e.ID),
			"Use ids such as task_review_order"))
	}
	return out
}

func checkSize(ix *validation.Index) []domain.Issue {
	n := len(ix.Graph.Elements)
	if n <= maxElements {
		return nil
	}
	return []domain.Issue{{
		RuleCode:   "STYLE_002",
		Severity:   domain.SeverityWarning,
		ElementID:  validation.ImplicitPoolLabel,
		Message:    fmt.Sprintf("Process has %d elements; diagrams above %d are hard to read", n, maxElements),
		Suggestion: "Split the process into sub-processes",
	}}
}

func checkPoolBalance(ix *validation.Index) []domain.Issue {
	total := len(ix.Graph.Elements)
	if len(ix.Graph.Participants) < 2 || total < minBalanceSample {
		return nil
	}
	var out []domain.Issue
	for _, p := range ix.Pools() {
		share := float64(len(p.Elements)) / float64(total)
		if share <= dominantPoolShare {
			continue
		}
		out = append(out, domain.Issue{
			RuleCode:    "STYLE_003",
			Severity:    domain.SeverityWarning,
			ElementID:   p.Label,
			ElementType: "pool",
			Message:     fmt.Sprintf("Pool %s owns %.0f%% of all elements", p.Label, share*100),
			Suggestion:  "Check whether work is attributed to the right participants",
		})
	}
	return out
}

func init() {
	validation.Register(validation.Rule{
		Code: "STYLE_001", Name: "id_format", Category: categoryStyle,
		Severity:    domain.SeverityMinor,
		Description: "Element ids use letters, digits and underscores",
		Check:       checkIDFormat,
	})
	validation.Register(validation.Rule{
		Code: "STYLE_002", Name: "process_size", Category: categoryStyle,
		Severity:    domain.SeverityWarning,
		Description: "Processes stay small enough to read",
		Check:       checkSize,
	})
	validation.Register(validation.Rule{
		Code: "STYLE_003", Name: "pool_balance", Category: categoryStyle,
		Severity:    domain.SeverityWarning,
		Description: "Work is spread across participants",
		Check:       checkPoolBalance,
	})
}
