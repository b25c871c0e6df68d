package validation

import (
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/scoring"
)

// Validate runs every registered rule against g and scores the result.
// A nil graph is validated as an empty one. g is never modified.
func Validate(g *domain.Graph) *domain.Report {
	if g == nil {
		g = domain.NewGraph()
	}
	ix := NewIndex(g)

	issues := []domain.Issue{}
	for _, r := range All() {
		issues = append(issues, r.Check(ix)...)
	}

	score := scoring.Score(issues)
	return &domain.Report{
		OverallScore:          score,
		ComplianceLevel:       scoring.Level(score),
		Issues:                issues,
		Statistics:            statistics(ix, issues),
		ImprovementPriorities: scoring.Priorities(issues),
	}
}

func statistics(ix *Index, issues []domain.Issue) domain.Statistics {
	st := domain.Statistics{
		TotalIssues:      len(issues),
		IssuesBySeverity: map[domain.Severity]int{},
		IssuesByRule:     map[string]int{},
	}
	for _, is := range issues {
		st.IssuesBySeverity[is.Severity]++
		st.IssuesByRule[is.RuleCode]++
		if is.AutoFixable {
			st.AutoFixableIssues++
		}
	}

	g := ix.Graph
	st.Process = domain.ProcessStatistics{
		Elements:     len(g.Elements),
		Flows:        len(g.Flows),
		Participants: len(g.Participants),
	}
	for _, e := range g.Elements {
		switch {
		case e.Type == domain.StartEvent:
			st.Process.StartEvents++
		case e.Type == domain.EndEvent:
			st.Process.EndEvents++
		case e.Type.IsGateway():
			st.Process.Gateways++
		case e.Type.IsActivity():
			st.Process.Activities++
		}
	}
	return st
}
