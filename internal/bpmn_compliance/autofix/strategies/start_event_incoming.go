package strategies

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// startEventIncoming moves same-pool sequence flows that enter a start event onto the
// element the start event hands over to.
type startEventIncoming struct{}

func (startEventIncoming) Name() string    { return "start_event_incoming" }
func (startEventIncoming) Rules() []string { return []string{"STRUCT_003"} }

func (startEventIncoming) Apply(g *domain.Graph) (bool, []string) {
	ix := validation.NewIndex(g)
	retarget := map[string]string{}
	for i := range g.Elements {
		s := &g.Elements[i]
		if s.Type != domain.StartEvent {
			continue
		}
		succ := ix.StartSuccessor(s)
		if succ == nil {
			continue
		}
		for _, f := range ix.Incoming(s.ID, domain.SequenceFlow) {
			if ix.CrossesPools(f) || f.Source == succ.ID {
				continue
			}
			retarget[f.ID] = succ.ID
		}
	}

	var notes []string
	for i := range g.Flows {
		f := &g.Flows[i]
		to, ok := retarget[f.ID]
		if !ok || f.Type != domain.SequenceFlow {
			continue
		}
		notes = append(notes, fmt.Sprintf("Retargeted flow %s from start event %s to %s", f.ID, f.Target, to))
		f.Target = to
	}
	return len(notes) > 0, notes
}

func init() { autofix.Register(20, startEventIncoming{}) }
