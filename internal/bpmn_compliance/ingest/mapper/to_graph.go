package mapper

import (
	"strings"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
)

// ToGraph converts a parsed document into a process graph. Values are copied as-is;
// unknown types and dangling references are left for validation to report.
func ToGraph(d *parser.Document) *domain.Graph {
	g := domain.NewGraph()
	if d == nil {
		return g
	}
	g.ProcessName = strings.TrimSpace(d.ProcessName)
	for _, id := range d.Processes {
		g.Processes = append(g.Processes, strings.TrimSpace(id))
	}

	for _, p := range d.Participants {
		g.Participants = append(g.Participants, domain.Participant{
			ID:         strings.TrimSpace(p.ID),
			Name:       p.Name,
			Type:       domain.ParticipantType(p.Type),
			ProcessRef: p.ProcessRef,
		})
	}
	for _, e := range d.Elements {
		t, ev := eventKind(domain.ElementType(e.Type), e.EventType)
		g.AddElement(domain.Element{
			ID:          strings.TrimSpace(e.ID),
			Name:        e.Name,
			Type:        t,
			Participant: strings.TrimSpace(e.Participant),
			TaskType:    e.TaskType,
			EventType:   ev,
		})
	}
	for _, f := range d.NormalizedFlows() {
		g.AddFlow(domain.Flow{
			ID:        strings.TrimSpace(f.ID),
			Source:    strings.TrimSpace(f.Source),
			Target:    strings.TrimSpace(f.Target),
			Type:      domain.FlowType(f.Type),
			Name:      f.Name,
			Condition: f.Condition,
		})
	}
	return g
}

// eventKind folds a message event_type on a plain intermediate event into the message
// variant of its type and fills event_type for the message variants. BPMN XML stores
// both as one element with a messageEventDefinition, so only this pairing survives it.
func eventKind(t domain.ElementType, eventType string) (domain.ElementType, string) {
	switch {
	case t == domain.IntermediateCatchEvent && eventType == "message":
		return domain.IntermediateMessageCatchEvent, eventType
	case t == domain.IntermediateThrowEvent && eventType == "message":
		return domain.IntermediateMessageThrowEvent, eventType
	case (t == domain.IntermediateMessageCatchEvent || t == domain.IntermediateMessageThrowEvent) && eventType == "":
		return t, "message"
	}
	return t, eventType
}
