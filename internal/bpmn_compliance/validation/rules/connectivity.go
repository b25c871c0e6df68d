package rules

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

func checkConnectivity(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Elements {
		e := &ix.Graph.Elements[i]
		switch {
		case e.Type == domain.StartEvent:
			out = append(out, startConnectivity(ix, e)...)
		case e.Type == domain.EndEvent:
			out = append(out, endConnectivity(ix, e)...)
		case e.Type.IsActivity() || e.Type.IsGateway():
			if is, ok := nodeConnectivity(ix, e); ok {
				out = append(out, is)
			}
		}
	}
	return out
}

func startConnectivity(ix *validation.Index, s *domain.Element) []domain.Issue {
	var out []domain.Issue

	if in := ix.Incoming(s.ID, domain.SequenceFlow); len(in) > 0 {
		succ := ix.StartSuccessor(s)
		fixable := true
		for _, f := range in {
			if ix.CrossesPools(f) {
				continue
			}
			if succ == nil || f.Source == succ.ID {
				fixable = false
				break
			}
		}
		out = append(out, elementIssue("STRUCT_003", domain.SeverityCritical, s, fixable,
			fmt.Sprintf("Start event %s has %d incoming sequence flow(s)", label(s), len(in)),
			"A start event must not be the target of a sequence flow; route it to the next element or use a message flow"))
	}

	if len(ix.Outgoing(s.ID, "")) == 0 {
		p, known := poolOf(ix, s)
		fixable := known && p.HasActivity()
		out = append(out, elementIssue("STRUCT_003", domain.SeverityMajor, s, fixable,
			fmt.Sprintf("Start event %s has no outgoing flow", label(s)),
			"Connect the start event to the first activity of its pool"))
	}
	return out
}

func endConnectivity(ix *validation.Index, e *domain.Element) []domain.Issue {
	var out []domain.Issue

	if outSeq := ix.Outgoing(e.ID, domain.SequenceFlow); len(outSeq) > 0 {
		fixable := true
		for _, f := range outSeq {
			if !ix.CrossesPools(f) {
				fixable = false
				break
			}
		}
		out = append(out, elementIssue("STRUCT_003", domain.SeverityMajor, e, fixable,
			fmt.Sprintf("End event %s has %d outgoing sequence flow(s)", label(e), len(outSeq)),
			"An end event terminates its path; remove the outgoing sequence flow or use a message flow"))
	}

	if len(ix.Incoming(e.ID, "")) == 0 {
		p, known := poolOf(ix, e)
		fixable := known && ix.EndFeeder(p, e) != nil
		out = append(out, elementIssue("STRUCT_003", domain.SeverityCritical, e, fixable,
			fmt.Sprintf("End event %s has no incoming flow", label(e)),
			"Connect the last activity of the pool to the end event"))
	}
	return out
}

func nodeConnectivity(ix *validation.Index, e *domain.Element) (domain.Issue, bool) {
	var missing []string
	if len(ix.Incoming(e.ID, "")) == 0 {
		missing = append(missing, "incoming")
	}
	if len(ix.Outgoing(e.ID, "")) == 0 {
		missing = append(missing, "outgoing")
	}
	if len(missing) == 0 {
		return domain.Issue{}, false
	}
	_, known := poolOf(ix, e)
	kind := "Activity"
	if e.Type.IsGateway() {
		kind = "Gateway"
	}
	return elementIssue("STRUCT_003", domain.SeverityMajor, e, known,
		fmt.Sprintf("%s %s is disconnected: no %s flow", kind, label(e), strings.Join(missing, " or ")),
		"Connect the element into the process flow of its pool"), true
}

func poolOf(ix *validation.Index, e *domain.Element) (*validation.Pool, bool) {
	key, ok := ix.PoolOf(e)
	if !ok {
		return nil, false
	}
	p := ix.Pool(key)
	return p, p != nil
}

func init() {
	validation.Register(validation.Rule{
		Code: "STRUCT_003", Name: "element_connectivity", Category: categoryStructural,
		Severity:    domain.SeverityCritical,
		Description: "Start events take no incoming sequence flow, end events emit none and every activity or gateway is connected on both sides",
		Check:       checkConnectivity,
	})
}
