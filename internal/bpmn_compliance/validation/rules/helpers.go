package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

const (
	categoryStructural = "structural"
	categorySemantic   = "semantic"
	categorySyntactic  = "syntactic"
	categoryStyle      = "style"
)

func elementIssue(code string, sev domain.Severity, e *domain.Element, fixable bool, msg, suggestion string) domain.Issue {
	return domain.Issue{
		RuleCode:    code,
		Severity:    sev,
		ElementID:   e.ID,
		ElementType: string(e.Type),
		Message:     msg,
		Suggestion:  suggestion,
		AutoFixable: fixable,
	}
}

func flowIssue(code string, sev domain.Severity, f *domain.Flow, fixable bool, msg, suggestion string) domain.Issue {
	return domain.Issue{
		RuleCode:    code,
		Severity:    sev,
		ElementID:   f.ID,
		ElementType: string(f.Type) + "Flow",
		Message:     msg,
		Suggestion:  suggestion,
		AutoFixable: fixable,
	}
}

func label(e *domain.Element) string {
	if e.Name != "" {
		return fmt.Sprintf("%q (%s)", e.Name, e.ID)
	}
	return e.ID
}
