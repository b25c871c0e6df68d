package strategies

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// unassignedElement puts elements without a participant into the pool of a
// sequence-flow neighbour, else into the first declared participant.
type unassignedElement struct{}

func (unassignedElement) Name() string    { return "unassigned_element" }
func (unassignedElement) Rules() []string { return []string{"STRUCT_005"} }

func (unassignedElement) Apply(g *domain.Graph) (bool, []string) {
	ix := validation.NewIndex(g)
	if ix.Implicit() {
		return false, nil
	}
	fallback := ""
	for _, p := range g.Participants {
		if p.ID != "" {
			fallback = p.ID
			break
		}
	}
	if fallback == "" {
		return false, nil
	}

	assign := map[int]string{}
	for i := range g.Elements {
		e := &g.Elements[i]
		if e.Participant != "" {
			continue
		}
		pool := neighbourPool(ix, e)
		if pool == "" {
			pool = fallback
		}
		assign[i] = pool
	}

	var notes []string
	for i := range g.Elements {
		pool, ok := assign[i]
		if !ok {
			continue
		}
		g.Elements[i].Participant = pool
		notes = append(notes, fmt.Sprintf("Assigned %s to participant %s", g.Elements[i].ID, pool))
	}
	return len(notes) > 0, notes
}

func neighbourPool(ix *validation.Index, e *domain.Element) string {
	var ids []string
	for _, f := range ix.Incoming(e.ID, domain.SequenceFlow) {
		ids = append(ids, f.Source)
	}
	for _, f := range ix.Outgoing(e.ID, domain.SequenceFlow) {
		ids = append(ids, f.Target)
	}
	for _, id := range ids {
		if key, ok := ix.PoolOf(ix.Element(id)); ok {
			return key
		}
	}
	return ""
}

func init() { autofix.Register(30, unassignedElement{}) }
