package strategies

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

const alternativePathName = "Alternative Path"

// gatewayOutgoing tops gateways up to two branches: first a default branch to the
// pool's end event, then synthesized alternative-path tasks leading to that end.
type gatewayOutgoing struct{}

func (gatewayOutgoing) Name() string    { return "gateway_outgoing" }
func (gatewayOutgoing) Rules() []string { return []string{"STRUCT_004", "STRUCT_003"} }

func (gatewayOutgoing) Apply(g *domain.Graph) (bool, []string) {
	var gateways []string
	for _, e := range g.Elements {
		if e.Type.IsGateway() {
			gateways = append(gateways, e.ID)
		}
	}

	var notes []string
	for _, id := range gateways {
		notes = append(notes, topUpGateway(g, id)...)
	}
	return len(notes) > 0, notes
}

func topUpGateway(g *domain.Graph, id string) []string {
	ix := validation.NewIndex(g)
	gw := ix.Element(id)
	key, ok := ix.PoolOf(gw)
	if !ok {
		return nil
	}
	inside := 0
	for _, f := range ix.Outgoing(id, domain.SequenceFlow) {
		if !ix.CrossesPools(f) {
			inside++
		}
	}
	need := 2 - inside
	if need <= 0 {
		return nil
	}
	branching := gw.Type.IsBranching()

	var notes []string
	endID := ""
	if ends := ix.Pool(key).OfType(domain.EndEvent); len(ends) > 0 {
		endID = ends[0].ID
	} else {
		endID = addElement(g, "end", domain.EndEvent, "End", key)
		notes = append(notes, fmt.Sprintf("Added end event %s in pool %s", endID, poolName(key)))
	}

	if flow, ok := connect(g, id, endID, condition(branching, "default")); ok {
		need--
		notes = append(notes, fmt.Sprintf("Added default branch %s → %s (%s)", id, endID, flow))
	}
	for ; need > 0; need-- {
		task := addElement(g, "task", domain.UserTask, alternativePathName, key)
		in, _ := connect(g, id, task, condition(branching, "else"))
		out, _ := connect(g, task, endID, "")
		notes = append(notes, fmt.Sprintf("Added alternative path %s → %s → %s (%s, %s)", id, task, endID, in, out))
	}
	return notes
}

// condition labels a generated branch; parallel gateways carry none.
func condition(branching bool, label string) string {
	if !branching {
		return ""
	}
	return label
}

func init() { autofix.Register(90, gatewayOutgoing{}) }
