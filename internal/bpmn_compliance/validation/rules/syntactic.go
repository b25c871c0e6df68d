package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

func checkUniqueIDs(ix *validation.Index) []domain.Issue {
	g := ix.Graph
	var order []string
	seen := map[string]int{}
	note := func(id string) {
		if id == "" {
			return
		}
		if seen[id] == 0 {
			order = append(order, id)
		}
		seen[id]++
	}
	for _, p := range g.Participants {
		note(p.ID)
	}
	for _, e := range g.Elements {
		note(e.ID)
	}
	for _, f := range g.Flows {
		note(f.ID)
	}

	var out []domain.Issue
	for _, id := range order {
		if seen[id] < 2 {
			continue
		}
		out = append(out, domain.Issue{
			RuleCode:   "SYNT_001",
			Severity:   domain.SeverityCritical,
			ElementID:  id,
			Message:    fmt.Sprintf("Identifier %q is used %d times", id, seen[id]),
			Suggestion: "Give every participant, element and flow a unique id",
		})
	}
	return out
}

func checkRequiredAttributes(ix *validation.Index) []domain.Issue {
	g := ix.Graph
	var out []domain.Issue
	for i, p := range g.Participants {
		if p.ID == "" {
			out = append(out, domain.Issue{
				RuleCode: "SYNT_002", Severity: domain.SeverityCritical,
				ElementID: fmt.Sprintf("participants[%d]", i), ElementType: "participant",
				Message:    "Participant has no id",
				Suggestion: "Set an id on every participant",
			})
		}
	}
	for i := range g.Elements {
		e := &g.Elements[i]
		if e.ID == "" {
			out = append(out, domain.Issue{
				RuleCode: "SYNT_002", Severity: domain.SeverityCritical,
				ElementID: fmt.Sprintf("elements[%d]", i), ElementType: string(e.Type),
				Message:    "Element has no id",
				Suggestion: "Set an id on every element",
			})
		}
		if !e.Type.Known() {
			out = append(out, elementIssue("SYNT_002", domain.SeverityCritical, e, false,
				fmt.Sprintf("Element %s has unknown type %q", e.ID, e.Type),
				"Use one of the supported BPMN element types"))
		}
	}
	for i := range g.Flows {
		f := &g.Flows[i]
		if f.ID == "" {
			out = append(out, domain.Issue{
				RuleCode: "SYNT_002", Severity: domain.SeverityCritical,
				ElementID: fmt.Sprintf("flows[%d]", i), ElementType: string(f.Type) + "Flow",
				Message:    "Flow has no id",
				Suggestion: "Set an id on every flow",
			})
		}
		if !f.Type.Known() {
			out = append(out, flowIssue("SYNT_002", domain.SeverityCritical, f, false,
				fmt.Sprintf("Flow %s has unknown type %q", f.ID, f.Type),
				"Use sequence or message"))
		}
	}
	return out
}

func checkReferences(ix *validation.Index) []domain.Issue {
	g := ix.Graph
	var out []domain.Issue
	if len(g.Processes) > 0 {
		declared := map[string]bool{}
		for _, id := range g.Processes {
			declared[id] = true
		}
		for _, p := range g.Participants {
			if p.ProcessRef == "" || declared[p.ProcessRef] {
				continue
			}
			out = append(out, domain.Issue{
				RuleCode: "SYNT_003", Severity: domain.SeverityCritical,
				ElementID: p.ID, ElementType: "participant",
				Message:    fmt.Sprintf("Participant %s references unknown process %q", p.ID, p.ProcessRef),
				Suggestion: "Declare the process or correct the participant's processRef",
			})
		}
	}
	for i := range ix.Graph.Flows {
		f := &ix.Graph.Flows[i]
		for _, end := range []struct{ role, id string }{{"source", f.Source}, {"target", f.Target}} {
			if end.id == domain.ExternalID || ix.Element(end.id) != nil {
				continue
			}
			out = append(out, flowIssue("SYNT_003", domain.SeverityCritical, f, false,
				fmt.Sprintf("Flow %s references unknown %s %q", f.ID, end.role, end.id),
				fmt.Sprintf("Point the flow at an existing element or at %q", domain.ExternalID)))
		}
	}
	return out
}

func init() {
	validation.Register(validation.Rule{
		Code: "SYNT_001", Name: "unique_ids", Category: categorySyntactic,
		Severity:    domain.SeverityCritical,
		Description: "Identifiers are unique across participants, elements and flows",
		Check:       checkUniqueIDs,
	})
	validation.Register(validation.Rule{
		Code: "SYNT_002", Name: "required_attributes", Category: categorySyntactic,
		Severity:    domain.SeverityCritical,
		Description: "Every item has an id and a supported type",
		Check:       checkRequiredAttributes,
	})
	validation.Register(validation.Rule{
		Code: "SYNT_003", Name: "references", Category: categorySyntactic,
		Severity:    domain.SeverityCritical,
		Description: "Flow endpoints name existing elements or the external actor, and participants name declared processes",
		Check:       checkReferences,
	})
}
