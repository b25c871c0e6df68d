package domain

type Issue struct {
	RuleCode    string   `json:"rule_code" yaml:"rule_code"`
	Severity    Severity `json:"severity" yaml:"severity"`
	ElementID   string   `json:"element_id" yaml:"element_id"`
	ElementType string   `json:"element_type,omitempty" yaml:"element_type,omitempty"`
	Message     string   `json:"message" yaml:"message"`
	Suggestion  string   `json:"suggestion" yaml:"suggestion"`
	AutoFixable bool     `json:"auto_fixable" yaml:"auto_fixable"`
}

type ProcessStatistics struct {
	Elements     int `json:"elements_count" yaml:"elements_count"`
	Flows        int `json:"flows_count" yaml:"flows_count"`
	Participants int `json:"participants_count" yaml:"participants_count"`
	StartEvents  int `json:"start_events" yaml:"start_events"`
	EndEvents    int `json:"end_events" yaml:"end_events"`
	Gateways     int `json:"gateways" yaml:"gateways"`
	Activities   int `json:"activities" yaml:"activities"`
}

type Statistics struct {
	TotalIssues       int               `json:"total_issues" yaml:"total_issues"`
	IssuesBySeverity  map[Severity]int  `json:"issues_by_severity" yaml:"issues_by_severity"`
	IssuesByRule      map[string]int    `json:"issues_by_rule" yaml:"issues_by_rule"`
	AutoFixableIssues int               `json:"auto_fixable_issues" yaml:"auto_fixable_issues"`
	Process           ProcessStatistics `json:"process_statistics" yaml:"process_statistics"`
}

type Report struct {
	OverallScore          float64         `json:"overall_score" yaml:"overall_score"`
	ComplianceLevel       ComplianceLevel `json:"compliance_level" yaml:"compliance_level"`
	Issues                []Issue         `json:"issues" yaml:"issues"`
	Statistics            Statistics      `json:"statistics" yaml:"statistics"`
	ImprovementPriorities []string        `json:"improvement_priorities" yaml:"improvement_priorities"`
}

// Count returns the number of issues with the given severity.
func (r *Report) Count(s Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == s {
			n++
		}
	}
	return n
}

// Find returns the issues raised by rule for element (any element when elementID is "").
func (r *Report) Find(rule, elementID string) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.RuleCode != rule {
			continue
		}
		if elementID != "" && is.ElementID != elementID {
			continue
		}
		out = append(out, is)
	}
	return out
}

func (r *Report) HasFixable(rules ...string) bool {
	for _, is := range r.Issues {
		if !is.AutoFixable {
			continue
		}
		for _, code := range rules {
			if is.RuleCode == code {
				return true
			}
		}
	}
	return false
}
