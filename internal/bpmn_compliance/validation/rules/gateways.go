package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

const minGatewayBranches = 2

func checkGatewayOutgoing(ix *validation.Index) []domain.Issue {
	var out []domain.Issue
	for i := range ix.Graph.Elements {
		g := &ix.Graph.Elements[i]
		if !g.Type.IsGateway() {
			continue
		}

		inside := 0
		for _, f := range ix.Outgoing(g.ID, domain.SequenceFlow) {
			if ix.CrossesPools(f) {
				out = append(out, elementIssue("STRUCT_004", domain.SeverityMajor, g, true,
					fmt.Sprintf("Gateway %s branches into another pool through sequence flow %s", label(g), f.ID),
					"Cross-pool communication must use a message flow, not a gateway branch"))
				continue
			}
			inside++
		}
		if inside < minGatewayBranches {
			_, known := ix.PoolOf(g)
			out = append(out, elementIssue("STRUCT_004", domain.SeverityMajor, g, known,
				fmt.Sprintf("Gateway %s has %d outgoing sequence flow(s) inside its pool; at least %d required", label(g), inside, minGatewayBranches),
				"Add an alternative or default branch to the gateway"))
		}
	}
	return out
}

func init() {
	validation.Register(validation.Rule{
		Code: "STRUCT_004", Name: "gateway_outgoing", Category: categoryStructural,
		Severity:    domain.SeverityMajor,
		Description: "Gateways split into at least two outgoing sequence flows within their own pool",
		Check:       checkGatewayOutgoing,
	})
}
