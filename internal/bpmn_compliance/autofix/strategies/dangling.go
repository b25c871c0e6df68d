package strategies

import (
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// danglingNode wires disconnected elements into their pool: activities and gateways
// without input hang off the pool trigger, activities without output feed the pool
// terminator, and a start event without output leads to the first activity.
type danglingNode struct{}

func (danglingNode) Name() string    { return "dangling_activity" }
func (danglingNode) Rules() []string { return []string{"STRUCT_003"} }

func (danglingNode) Apply(g *domain.Graph) (bool, []string) {
	ix := validation.NewIndex(g)
	var links []link
	seen := map[link]bool{}
	add := func(from, to *domain.Element) {
		if from == nil || to == nil || from.ID == to.ID {
			return
		}
		l := link{from: from.ID, to: to.ID}
		if !seen[l] {
			seen[l] = true
			links = append(links, l)
		}
	}

	for _, p := range ix.Pools() {
		trigger := ix.Trigger(&p)
		terminator := ix.Terminator(&p)
		for _, e := range p.Elements {
			switch {
			case e.Type == domain.StartEvent:
				if len(ix.Outgoing(e.ID, "")) == 0 {
					add(e, ix.FirstActivity(&p))
				}
			case e.Type.IsActivity():
				if len(ix.Incoming(e.ID, "")) == 0 {
					add(trigger, e)
				}
				if len(ix.Outgoing(e.ID, "")) == 0 {
					add(e, terminator)
				}
			case e.Type.IsGateway():
				if len(ix.Incoming(e.ID, "")) == 0 {
					add(trigger, e)
				}
			}
		}
	}
	return applyLinks(g, links)
}

func init() { autofix.Register(80, danglingNode{}) }
