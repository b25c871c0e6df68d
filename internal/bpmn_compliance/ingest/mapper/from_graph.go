package mapper

import (
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
)

// FromGraph is the inverse of ToGraph. All flows go to Flows with their type set.
func FromGraph(g *domain.Graph) *parser.Document {
	d := &parser.Document{
		Participants: []parser.DParticipant{},
		Elements:     []parser.DElement{},
		Flows:        []parser.DFlow{},
	}
	if g == nil {
		return d
	}
	d.ProcessName = g.ProcessName
	if g.Processes != nil {
		d.Processes = append([]string{}, g.Processes...)
	}
	for _, p := range g.Participants {
		d.Participants = append(d.Participants, parser.DParticipant{
			ID: p.ID, Name: p.Name, Type: string(p.Type), ProcessRef: p.ProcessRef,
		})
	}
	for _, e := range g.Elements {
		d.Elements = append(d.Elements, parser.DElement{
			ID: e.ID, Name: e.Name, Type: string(e.Type), Participant: e.Participant,
			TaskType: e.TaskType, EventType: e.EventType,
		})
	}
	for _, f := range g.Flows {
		d.Flows = append(d.Flows, parser.DFlow{
			ID: f.ID, Source: f.Source, Target: f.Target, Type: string(f.Type),
			Name: f.Name, Condition: f.Condition,
		})
	}
	return d
}
