package strategies

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// sanitizeID maps s onto letters, digits and underscores so generated ids pass the
// id style rule.
func sanitizeID(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		out = "_" + out
	}
	return out
}

func uniqueID(g *domain.Graph, base string) string {
	id := sanitizeID(base)
	if !g.HasID(id) {
		return id
	}
	for n := 2; ; n++ {
		cand := fmt.Sprintf("%s_%d", id, n)
		if !g.HasID(cand) {
			return cand
		}
	}
}

// newElementID builds <kind>_<pool>_auto.
func newElementID(g *domain.Graph, kind, pool string) string {
	if pool == "" {
		pool = validation.ImplicitPoolLabel
	}
	return uniqueID(g, kind+"_"+pool+"_auto")
}

func hasSequence(g *domain.Graph, from, to string) bool {
	for _, f := range g.Flows {
		if f.Type == domain.SequenceFlow && f.Source == from && f.Target == to {
			return true
		}
	}
	return false
}

// connect adds a sequence flow from -> to unless one already exists.
func connect(g *domain.Graph, from, to, condition string) (string, bool) {
	if hasSequence(g, from, to) {
		return "", false
	}
	id := uniqueID(g, "flow_"+from+"_"+to)
	g.AddFlow(domain.Flow{
		ID:        id,
		Source:    from,
		Target:    to,
		Type:      domain.SequenceFlow,
		Condition: condition,
	})
	return id, true
}

func addElement(g *domain.Graph, kind string, t domain.ElementType, name, pool string) string {
	e := domain.Element{
		ID:          newElementID(g, kind, pool),
		Name:        name,
		Type:        t,
		Participant: pool,
	}
	if t.IsActivity() {
		e.TaskType = taskTypeFor(t)
	}
	g.AddElement(e)
	return e.ID
}

func taskTypeFor(t domain.ElementType) string {
	switch t {
	case domain.UserTask:
		return "user"
	case domain.ServiceTask:
		return "service"
	case domain.ManualTask:
		return "manual"
	default:
		return ""
	}
}

func poolName(key string) string {
	if key == "" {
		return validation.ImplicitPoolLabel
	}
	return key
}

type link struct{ from, to, condition string }

// applyLinks adds the planned sequence flows and reports what was connected.
func applyLinks(g *domain.Graph, links []link) (bool, []string) {
	var notes []string
	for _, l := range links {
		if id, ok := connect(g, l.from, l.to, l.condition); ok {
			notes = append(notes, fmt.Sprintf("Connected %s → %s (%s)", l.from, l.to, id))
		}
	}
	return len(notes) > 0, notes
}
