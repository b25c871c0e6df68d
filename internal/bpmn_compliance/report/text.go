package report

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/improvement"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/scoring"
)

var severityOrder = []domain.Severity{
	domain.SeverityCritical,
	domain.SeverityMajor,
	domain.SeverityMinor,
	domain.SeverityWarning,
}

// Text renders a compliance report for terminals, issues grouped by severity.
func Text(r *domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compliance score: %.1f/100 (%s)\n", r.OverallScore, r.ComplianceLevel)
	st := r.Statistics
	fmt.Fprintf(&b, "Elements: %d  Flows: %d  Participants: %d  Issues: %d (%d auto-fixable)\n",
		st.Process.Elements, st.Process.Flows, st.Process.Participants, st.TotalIssues, st.AutoFixableIssues)

	issues := scoring.PrioritizeIssues(r.Issues)
	for _, sev := range severityOrder {
		var group []domain.Issue
		for _, is := range issues {
			if is.Severity == sev {
				group = append(group, is)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d)\n", sev, len(group))
		for _, is := range group {
			fix := ""
			if is.AutoFixable {
				fix = " [auto-fixable]"
			}
			fmt.Fprintf(&b, "  %s %s: %s%s\n", is.RuleCode, is.ElementID, is.Message, fix)
			if is.Suggestion != "" {
				fmt.Fprintf(&b, "      -> %s\n", is.Suggestion)
			}
		}
	}

	if len(r.ImprovementPriorities) > 0 {
		b.WriteString("\nPriorities:\n")
		for i, p := range r.ImprovementPriorities {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
		}
	}
	return b.String()
}

// ImprovementSummary renders the iteration history of an improvement run.
func ImprovementSummary(res *improvement.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Improvement %s: %.1f -> %.1f (target %.1f, success=%t)\n",
		res.Status, res.InitialReport.OverallScore, res.FinalReport.OverallScore, res.TargetScore, res.Success)
	for _, it := range res.History {
		fmt.Fprintf(&b, "  iteration %d [%s] score %.1f -> %.1f, issues %d -> %d\n",
			it.Iteration, it.Status, it.ScoreBefore, it.ScoreAfter, it.IssuesBefore, it.IssuesAfter)
		for _, fx := range it.FixesApplied {
			fmt.Fprintf(&b, "    %s (%s)\n", fx.Strategy, strings.Join(fx.Rules, ", "))
			for _, n := range fx.Notes {
				fmt.Fprintf(&b, "      - %s\n", n)
			}
		}
		for _, name := range it.RolledBack {
			fmt.Fprintf(&b, "    %s rolled back (score would drop)\n", name)
		}
	}
	if remaining := len(res.FinalReport.Issues); remaining > 0 {
		fmt.Fprintf(&b, "Remaining issues: %d (%d critical, %d major)\n", remaining,
			res.FinalReport.Count(domain.SeverityCritical), res.FinalReport.Count(domain.SeverityMajor))
	}
	return b.String()
}
