package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

func checkStartPresence(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for _, p := range ix.Pools() {
		if !p.HasActivity() {
			continue
		}
		if ix.Trigger(&p) == nil {
			out = append(out, domain.Issue{
				RuleCode:    "STRUCT_001",
				Severity:    domain.SeverityCritical,
				ElementID:   p.Label,
				ElementType: "pool",
				Message:     fmt.Sprintf("Pool %s has activities but no start event", p.Label),
				Suggestion:  "Add a start event connected to the first activity of the pool",
				AutoFixable: true,
			})
		}
		starts := p.OfType(domain.StartEvent)
		for _, s := range tail(starts) {
			out = append(out, elementIssue("STRUCT_001", domain.SeverityWarning, s, false,
				fmt.Sprintf("Pool %s has %d start events", p.Label, len(starts)),
				"Review whether several independent starts are intended"))
		}
	}
	return out
}

func checkEndPresence(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for _, p := range ix.Pools() {
		if !p.HasActivity() || ix.Terminator(&p) != nil {
			continue
		}
		out = append(out, domain.Issue{
			RuleCode:    "STRUCT_002",
			Severity:    domain.SeverityCritical,
			ElementID:   p.Label,
			ElementType: "pool",
			Message:     fmt.Sprintf("Pool %s has activities but no end event", p.Label),
			Suggestion:  "Add an end event after the last activity of the pool",
			AutoFixable: true,
		})
	}
	return out
}

// checkPoolTrigger flags pools that nothing can ever start: no start event of their
// own and no message arriving from another pool.
func checkPoolTrigger(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for _, p := range ix.Pools() {
		if !p.HasActivity() || len(p.OfType(domain.StartEvent)) > 0 {
			continue
		}
		triggered := false
		for _, e := range p.Elements {
			if len(ix.Incoming(e.ID, domain.MessageFlow)) > 0 {
				triggered = true
				break
			}
		}
		if triggered {
			continue
		}
		out = append(out, domain.Issue{
			RuleCode:    "STRUCT_007",
			Severity:    domain.SeverityCritical,
			ElementID:   p.Label,
			ElementType: "pool",
			Message:     fmt.Sprintf("Pool %s has no trigger: no start event and no incoming message flow", p.Label),
			Suggestion:  "Add a start event or route a message flow into the pool",
			AutoFixable: true,
		})
	}
	return out
}

func tail(es []*domain.Element) []*domain.Element {
	if len(es) < 2 {
		return nil
	}
	return es[1:]
}

func init() {
	validation.Register(validation.Rule{
		Code: "STRUCT_001", Name: "start_event_presence", Category: categoryStructural,
		Severity:    domain.SeverityCritical,
		Description: "Every pool with activities needs a start event or a message-triggered catch event",
		Check:       checkStartPresence,
	})
	validation.Register(validation.Rule{
		Code: "STRUCT_002", Name: "end_event_presence", Category: categoryStructural,
		Severity:    domain.SeverityCritical,
		Description: "Every pool with activities needs an end event or a message-sending throw event",
		Check:       checkEndPresence,
	})
	validation.Register(validation.Rule{
		Code: "STRUCT_007", Name: "pool_autonomy", Category: categoryStructural,
		Severity:    domain.SeverityCritical,
		Description: "Every pool with activities must be started by its own start event or an incoming message flow",
		Check:       checkPoolTrigger,
	})
}
