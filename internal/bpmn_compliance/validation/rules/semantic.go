package rules

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

const minNameLength = 3

func checkNames(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Elements {
		e := &ix.Graph.Elements[i]
		name := strings.TrimSpace(e.Name)
		switch {
		case name == "":
			out = append(out, elementIssue("SEM_001", domain.SeverityWarning, e, false,
				fmt.Sprintf("Element %s has no name", e.ID),
				"Give the element a descriptive name"))
		case len([]rune(name)) < minNameLength:
			out = append(out, elementIssue("SEM_001", domain.SeverityWarning, e, false,
				fmt.Sprintf("Element %s has a very short name %q", e.ID, name),
				"Use a name that describes what happens at this step"))
		}
	}
	return out
}

func checkGatewayConditions(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Elements {
		g := &ix.Graph.Elements[i]
		if !g.Type.IsBranching() {
			continue
		}
		flows := ix.Outgoing(g.ID, domain.SequenceFlow)
		if len(flows) < 2 {
			continue
		}
		unconditioned := 0
		for _, f := range flows {
			if strings.TrimSpace(f.Condition) == "" {
				unconditioned++
			}
		}
		if unconditioned > 1 {
			out = append(out, elementIssue("SEM_002", domain.SeverityMinor, g, false,
				fmt.Sprintf("Gateway %s has %d outgoing flows without a condition", label(g), unconditioned),
				"Label each branch with its condition; leave at most one default branch"))
		}
	}
	return out
}

func checkGatewayMessageFlows(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Flows {
		f := &ix.Graph.Flows[i]
		if f.Type != domain.MessageFlow {
			continue
		}
		for _, id := range []string{f.Source, f.Target} {
			if e := ix.Element(id); e != nil && e.Type.IsGateway() {
				out = append(out, flowIssue("SEM_003", domain.SeverityMajor, f, false,
					fmt.Sprintf("Message flow %s is attached to gateway %s", f.ID, e.ID),
					"Gateways route control flow only; send or receive the message from a task or event"))
				break
			}
		}
	}
	return out
}

func checkTaskTypes(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Elements {
		e := &ix.Graph.Elements[i]
		if !e.Type.IsActivity() || e.TaskType != "" {
			continue
		}
		out = append(out, elementIssue("SEM_004", domain.SeverityWarning, e, true,
			fmt.Sprintf("Activity %s has no task type", label(e)),
			"Set task_type to user, service or manual"))
	}
	return out
}

func init() {
	validation.Register(validation.Rule{
		Code: "SEM_001", Name: "element_naming", Category: categorySemantic,
		Severity:    domain.SeverityWarning,
		Description: "Elements carry meaningful names",
		Check:       checkNames,
	})
	validation.Register(validation.Rule{
		Code: "SEM_002", Name: "gateway_conditions", Category: categorySemantic,
		Severity:    domain.SeverityMinor,
		Description: "Branches of exclusive and inclusive gateways carry conditions",
		Check:       checkGatewayConditions,
	})
	validation.Register(validation.Rule{
		Code: "SEM_003", Name: "gateway_message_flow", Category: categorySemantic,
		Severity:    domain.SeverityMajor,
		Description: "Message flows are not attached to gateways",
		Check:       checkGatewayMessageFlows,
	})
	validation.Register(validation.Rule{
		Code: "SEM_004", Name: "task_type", Category: categorySemantic,
		Severity:    domain.SeverityWarning,
		Description: "Activities declare their task type",
		Check:       checkTaskTypes,
	})
}
