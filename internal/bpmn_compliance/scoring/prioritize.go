package scoring

import (
	"fmt"
	"sort"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

// PrioritizeIssues returns a copy of issues ordered by severity, auto-fixable first,
// then rule code and element id.
func PrioritizeIssues(issues []domain.Issue) []domain.Issue {
	out := make([]domain.Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Severity.Rank(), out[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		if out[i].AutoFixable != out[j].AutoFixable {
			return out[i].AutoFixable
		}
		if out[i].RuleCode != out[j].RuleCode {
			return out[i].RuleCode < out[j].RuleCode
		}
		return out[i].ElementID < out[j].ElementID
	})
	return out
}

func Priorities(issues []domain.Issue) []string {
	var critical, major, fixable int
	for _, is := range issues {
		switch is.Severity {
		case domain.SeverityCritical:
			critical++
		case domain.SeverityMajor:
			major++
		}
		if is.AutoFixable {
			fixable++
		}
	}

	var out []string
	if critical > 0 {
		out = append(out, fmt.Sprintf("CRITICAL: fix %d structural error(s) first (start/end events, flow types, references)", critical))
	}
	if major > 0 {
		out = append(out, fmt.Sprintf("MAJOR: resolve %d connectivity and pool assignment problem(s)", major))
	}
	if fixable > 0 {
		out = append(out, fmt.Sprintf("AUTO-FIX: %d issue(s) can be repaired automatically", fixable))
	}
	if len(out) == 0 {
		out = append(out, "Process is compliant; only stylistic review remains")
	}
	return out
}
