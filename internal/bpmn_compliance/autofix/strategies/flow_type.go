package strategies

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// flowType retypes sequence flows that cross a pool boundary into message flows.
// Source and target stay unchanged.
type flowType struct{}

func (flowType) Name() string { return "flow_type" }

func (flowType) Rules() []string {
	return []string{"STRUCT_006", "STRUCT_003", "STRUCT_004"}
}

func (flowType) Apply(g *domain.Graph) (bool, []string) {
	ix := validation.NewIndex(g)
	var notes []string
	for i := range g.Flows {
		f := &g.Flows[i]
		if f.Type != domain.SequenceFlow || !ix.CrossesPools(f) {
			continue
		}
		f.Type = domain.MessageFlow
		f.Condition = ""
		notes = append(notes, fmt.Sprintf("Changed flow %s (%s → %s) from sequence to message", f.ID, f.Source, f.Target))
	}
	return len(notes) > 0, notes
}

// messageFlowType retypes message flows that stay inside one pool into sequence flows,
// skipping any whose retype would strip a pool of its start or end.
type messageFlowType struct{}

func (messageFlowType) Name() string { return "message_flow_type" }

func (messageFlowType) Rules() []string { return []string{"STRUCT_008"} }

func (messageFlowType) Apply(g *domain.Graph) (bool, []string) {
	var notes []string
	for i := range g.Flows {
		// rebuilt per flow: an earlier retype can change what is safe
		ix := validation.NewIndex(g)
		f := &g.Flows[i]
		if f.Type != domain.MessageFlow || !ix.WithinPool(f) || !validation.SequenceRetypeSafe(ix, f) {
			continue
		}
		f.Type = domain.SequenceFlow
		notes = append(notes, fmt.Sprintf("Changed flow %s (%s → %s) from message to sequence", f.ID, f.Source, f.Target))
	}
	return len(notes) > 0, notes
}

func init() {
	autofix.Register(10, flowType{})
	autofix.Register(15, messageFlowType{})
}
