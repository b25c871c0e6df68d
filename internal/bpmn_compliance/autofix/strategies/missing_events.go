package strategies

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// missingStartEvent gives every triggerless pool a start event wired to its first activity.
type missingStartEvent struct{}

func (missingStartEvent) Name() string    { return "missing_start_event" }
func (missingStartEvent) Rules() []string { return []string{"STRUCT_001", "STRUCT_007"} }

func (missingStartEvent) Apply(g *domain.Graph) (bool, []string) {
	type plan struct{ pool, first string }
	ix := validation.NewIndex(g)
	var plans []plan
	for _, p := range ix.Pools() {
		if !p.HasActivity() || ix.Trigger(&p) != nil {
			continue
		}
		if first := ix.FirstActivity(&p); first != nil {
			plans = append(plans, plan{p.ID, first.ID})
		}
	}

	var notes []string
	for _, pl := range plans {
		id := addElement(g, "start", domain.StartEvent, "Start", pl.pool)
		flow, _ := connect(g, id, pl.first, "")
		notes = append(notes, fmt.Sprintf("Added start event %s in pool %s connected to %s (%s)", id, poolName(pl.pool), pl.first, flow))
	}
	return len(notes) > 0, notes
}

// missingEndEvent gives every pool without a terminator an end event fed by its last activity.
type missingEndEvent struct{}

func (missingEndEvent) Name() string    { return "missing_end_event" }
func (missingEndEvent) Rules() []string { return []string{"STRUCT_002"} }

func (missingEndEvent) Apply(g *domain.Graph) (bool, []string) {
	type plan struct{ pool, last string }
	ix := validation.NewIndex(g)
	var plans []plan
	for _, p := range ix.Pools() {
		if !p.HasActivity() || ix.Terminator(&p) != nil {
			continue
		}
		if last := ix.LastActivity(&p); last != nil {
			plans = append(plans, plan{p.ID, last.ID})
		}
	}

	var notes []string
	for _, pl := range plans {
		id := addElement(g, "end", domain.EndEvent, "End", pl.pool)
		flow, _ := connect(g, pl.last, id, "")
		notes = append(notes, fmt.Sprintf("Added end event %s in pool %s connected from %s (%s)", id, poolName(pl.pool), pl.last, flow))
	}
	return len(notes) > 0, notes
}

func init() {
	autofix.Register(50, missingStartEvent{})
	autofix.Register(60, missingEndEvent{})
}
