package validation

import (
	"sort"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

// Repair candidates. Rules use these to decide whether an issue is auto-fixable and
// strategies use them to pick what to connect, so both always agree.

// Trigger returns the first start event of p, else the first catch event that
// receives a message flow.
func (ix *Index) Trigger(p *Pool) *domain.Element {
	if s := p.OfType(domain.StartEvent); len(s) > 0 {
		return s[0]
	}
	for _, e := range p.Elements {
		if e.Type.IsCatchEvent() && len(ix.Incoming(e.ID, domain.MessageFlow)) > 0 {
			return e
		}
	}
	return nil
}

// Terminator is the mirror of Trigger: first end event, else the first throw event
// that sends a message flow.
func (ix *Index) Terminator(p *Pool) *domain.Element {
	if s := p.OfType(domain.EndEvent); len(s) > 0 {
		return s[0]
	}
	for _, e := range p.Elements {
		if e.Type.IsThrowEvent() && len(ix.Outgoing(e.ID, domain.MessageFlow)) > 0 {
			return e
		}
	}
	return nil
}

// FirstActivity returns the first activity without an incoming sequence flow,
// falling back to the activity with the lowest id.
func (ix *Index) FirstActivity(p *Pool) *domain.Element {
	for _, e := range p.Elements {
		if e.Type.IsActivity() && len(ix.Incoming(e.ID, domain.SequenceFlow)) == 0 {
			return e
		}
	}
	return lowestActivity(p)
}

// LastActivity returns the last activity without an outgoing sequence flow,
// falling back to the activity with the lowest id.
func (ix *Index) LastActivity(p *Pool) *domain.Element {
	for i := len(p.Elements) - 1; i >= 0; i-- {
		e := p.Elements[i]
		if e.Type.IsActivity() && len(ix.Outgoing(e.ID, domain.SequenceFlow)) == 0 {
			return e
		}
	}
	return lowestActivity(p)
}

func lowestActivity(p *Pool) *domain.Element {
	var acts []*domain.Element
	for _, e := range p.Elements {
		if e.Type.IsActivity() {
			acts = append(acts, e)
		}
	}
	if len(acts) == 0 {
		return nil
	}
	sort.SliceStable(acts, func(i, j int) bool { return acts[i].ID < acts[j].ID })
	return acts[0]
}

// EndFeeder picks a source for an end event with no incoming flow: an activity without
// outgoing sequence flow, then a gateway, then any other non-end element of the pool.
func (ix *Index) EndFeeder(p *Pool, end *domain.Element) *domain.Element {
	var gateway, other *domain.Element
	for _, e := range p.Elements {
		if e == end || e.ID == end.ID || e.Type == domain.EndEvent {
			continue
		}
		switch {
		case e.Type.IsActivity() && len(ix.Outgoing(e.ID, domain.SequenceFlow)) == 0:
			return e
		case e.Type.IsGateway():
			if gateway == nil {
				gateway = e
			}
		default:
			if other == nil {
				other = e
			}
		}
	}
	if gateway != nil {
		return gateway
	}
	return other
}

// StartSuccessor returns the element a start event hands over to through its first
// outgoing sequence flow.
func (ix *Index) StartSuccessor(start *domain.Element) *domain.Element {
	for _, f := range ix.Outgoing(start.ID, domain.SequenceFlow) {
		if f.Target == start.ID {
			continue
		}
		if e := ix.Element(f.Target); e != nil {
			return e
		}
	}
	return nil
}

// SequenceRetypeSafe reports whether turning message flow f into a sequence flow
// leaves start and end events legal and keeps the pool's message trigger and terminator.
func SequenceRetypeSafe(ix *Index, f *domain.Flow) bool {
	t, s := ix.Element(f.Target), ix.Element(f.Source)
	if t != nil && t.Type == domain.StartEvent {
		return false
	}
	if s != nil && s.Type == domain.EndEvent {
		return false
	}
	if t != nil && t.Type.IsCatchEvent() && ix.lastMessageEndpoint(t, f, true) {
		return false
	}
	if s != nil && s.Type.IsThrowEvent() && ix.lastMessageEndpoint(s, f, false) {
		return false
	}
	return true
}

// lastMessageEndpoint reports whether f is the only message flow that makes an event of
// e's pool count as its trigger (incoming) or terminator (outgoing).
func (ix *Index) lastMessageEndpoint(e *domain.Element, f *domain.Flow, incoming bool) bool {
	key, ok := ix.PoolOf(e)
	if !ok {
		return false
	}
	p := ix.Pool(key)
	if p == nil {
		return false
	}
	plain := domain.EndEvent
	if incoming {
		plain = domain.StartEvent
	}
	if len(p.OfType(plain)) > 0 {
		return false
	}
	for _, other := range p.Elements {
		var flows []*domain.Flow
		switch {
		case incoming && other.Type.IsCatchEvent():
			flows = ix.Incoming(other.ID, domain.MessageFlow)
		case !incoming && other.Type.IsThrowEvent():
			flows = ix.Outgoing(other.ID, domain.MessageFlow)
		}
		for _, mf := range flows {
			if mf.ID != f.ID {
				return false
			}
		}
	}
	return true
}
