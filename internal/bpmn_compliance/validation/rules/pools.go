package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

func checkPoolAssignment(ix *validation.Index) []domain.Issue {
	if ix.Implicit() {
		return nil
	}
	var out []domain.Issue
	for i := range ix.Graph.Elements {
		e := &ix.Graph.Elements[i]
		switch {
		case e.Participant == "":
			out = append(out, elementIssue("STRUCT_005", domain.SeverityMajor, e, true,
				fmt.Sprintf("Element %s is not assigned to any participant", label(e)),
				"Assign the element to the pool it belongs to"))
		case !ix.Declared(e.Participant):
			out = append(out, elementIssue("STRUCT_005", domain.SeverityMajor, e, false,
				fmt.Sprintf("Element %s references undeclared participant %q", label(e), e.Participant),
				"Declare the participant or correct the reference"))
		}
	}
	return out
}

func checkSequenceFlowPools(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Flows {
		f := &ix.Graph.Flows[i]
		if f.Type != domain.SequenceFlow || !ix.CrossesPools(f) {
			continue
		}
		out = append(out, flowIssue("STRUCT_006", domain.SeverityCritical, f, true,
			fmt.Sprintf("Sequence flow %s crosses a pool boundary (%s -> %s)", f.ID, f.Source, f.Target),
			"Use a message flow between pools"))
	}
	return out
}

func checkMessageFlowPools(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Flows {
		f := &ix.Graph.Flows[i]
		if f.Type != domain.MessageFlow || !ix.WithinPool(f) {
			continue
		}
		out = append(out, flowIssue("STRUCT_008", domain.SeverityMajor, f, validation.SequenceRetypeSafe(ix, f),
			fmt.Sprintf("Message flow %s stays inside one pool (%s -> %s)", f.ID, f.Source, f.Target),
			"Use a sequence flow inside a pool"))
	}
	return out
}

func init() {
	validation.Register(validation.Rule{
		Code: "STRUCT_005", Name: "pool_assignment", Category: categoryStructural,
		Severity:    domain.SeverityMajor,
		Description: "Every element belongs to a declared participant",
		Check:       checkPoolAssignment,
	})
	validation.Register(validation.Rule{
		Code: "STRUCT_006", Name: "pool_flow_continuity", Category: categoryStructural,
		Severity:    domain.SeverityCritical,
		Description: "Sequence flows never cross pool boundaries",
		Check:       checkSequenceFlowPools,
	})
	validation.Register(validation.Rule{
		Code: "STRUCT_008", Name: "message_flow_boundary", Category: categoryStructural,
		Severity:    domain.SeverityMajor,
		Description: "Message flows connect different pools or the external actor",
		Check:       checkMessageFlowPools,
	})
}
