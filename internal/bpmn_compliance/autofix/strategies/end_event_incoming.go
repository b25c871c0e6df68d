package strategies

import (
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// endEventIncoming feeds unreachable end events from an activity without outgoing
// sequence flow, else a gateway, else any other element of the pool.
type endEventIncoming struct{}

func (endEventIncoming) Name() string    { return "end_event_incoming" }
func (endEventIncoming) Rules() []string { return []string{"STRUCT_003"} }

func (endEventIncoming) Apply(g *domain.Graph) (bool, []string) {
	var ends []string
	for _, e := range g.Elements {
		if e.Type == domain.EndEvent {
			ends = append(ends, e.ID)
		}
	}

	var notes []string
	for _, id := range ends {
		// rebuilt per end event so an activity fed into one end is not reused
		ix := validation.NewIndex(g)
		end := ix.Element(id)
		if end == nil || len(ix.Incoming(id, "")) > 0 {
			continue
		}
		key, ok := ix.PoolOf(end)
		if !ok {
			continue
		}
		p := ix.Pool(key)
		if p == nil {
			continue
		}
		src := ix.EndFeeder(p, end)
		if src == nil {
			continue
		}
		_, n := applyLinks(g, []link{{from: src.ID, to: id}})
		notes = append(notes, n...)
	}
	return len(notes) > 0, notes
}

func init() { autofix.Register(70, endEventIncoming{}) }
