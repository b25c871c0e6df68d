package validation

import "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"

// ImplicitPoolLabel names the single pool of a diagram that declares no participants.
const ImplicitPoolLabel = "process"

type Pool struct {
	// ID is the participant id, empty for the implicit pool.
	ID       string
	Label    string
	Implicit bool
	Elements []*domain.Element
}

// Index is a read-only lookup view over a graph, built once per validation call.
// It holds pointers into the graph, so rebuild it after mutating the graph.
type Index struct {
	Graph *domain.Graph

	byID     map[string]*domain.Element
	in       map[string][]*domain.Flow
	out      map[string][]*domain.Flow
	declared map[string]bool
	pools    []Pool
}

func NewIndex(g *domain.Graph) *Index {
	ix := &Index{
		Graph:    g,
		byID:     map[string]*domain.Element{},
		in:       map[string][]*domain.Flow{},
		out:      map[string][]*domain.Flow{},
		declared: map[string]bool{},
	}
	for i := range g.Elements {
		e := &g.Elements[i]
		if _, dup := ix.byID[e.ID]; !dup {
			ix.byID[e.ID] = e
		}
	}
	for i := range g.Flows {
		f := &g.Flows[i]
		ix.out[f.Source] = append(ix.out[f.Source], f)
		ix.in[f.Target] = append(ix.in[f.Target], f)
	}

	if len(g.Participants) == 0 {
		p := Pool{Label: ImplicitPoolLabel, Implicit: true}
		for i := range g.Elements {
			p.Elements = append(p.Elements, &g.Elements[i])
		}
		ix.pools = []Pool{p}
		return ix
	}
	for _, p := range g.Participants {
		if p.ID == "" || ix.declared[p.ID] {
			continue
		}
		ix.declared[p.ID] = true
		ix.pools = append(ix.pools, Pool{ID: p.ID, Label: p.ID, Elements: g.PoolElements(p.ID)})
	}
	return ix
}

// Implicit reports whether the graph is a single-process diagram without participants.
func (ix *Index) Implicit() bool { return len(ix.Graph.Participants) == 0 }

func (ix *Index) Element(id string) *domain.Element { return ix.byID[id] }

func (ix *Index) Declared(participant string) bool { return ix.declared[participant] }

// Incoming returns flows targeting id. An empty t matches every flow type.
func (ix *Index) Incoming(id string, t domain.FlowType) []*domain.Flow {
	return filterFlows(ix.in[id], t)
}

// Outgoing returns flows leaving id. An empty t matches every flow type.
func (ix *Index) Outgoing(id string, t domain.FlowType) []*domain.Flow {
	return filterFlows(ix.out[id], t)
}

func filterFlows(fs []*domain.Flow, t domain.FlowType) []*domain.Flow {
	if t == "" {
		return fs
	}
	var out []*domain.Flow
	for _, f := range fs {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

func (ix *Index) Pools() []Pool { return ix.pools }

// PoolOf returns the pool key of e. ok is false when e is unassigned or points at an
// undeclared participant.
func (ix *Index) PoolOf(e *domain.Element) (key string, ok bool) {
	if e == nil {
		return "", false
	}
	if ix.Implicit() {
		return "", true
	}
	if e.Participant == "" || !ix.declared[e.Participant] {
		return "", false
	}
	return e.Participant, true
}

func (ix *Index) Pool(key string) *Pool {
	for i := range ix.pools {
		if ix.pools[i].ID == key {
			return &ix.pools[i]
		}
	}
	return nil
}

// SamePool compares the pools of two flow endpoints. The external sentinel is in no pool.
// known is false when either endpoint is missing or has no resolvable pool.
func (ix *Index) SamePool(a, b string) (same, known bool) {
	if a == domain.ExternalID || b == domain.ExternalID {
		return false, true
	}
	pa, okA := ix.PoolOf(ix.byID[a])
	pb, okB := ix.PoolOf(ix.byID[b])
	if !okA || !okB {
		return false, false
	}
	return pa == pb, true
}

// CrossesPools reports whether f provably connects two different pools or the outside.
func (ix *Index) CrossesPools(f *domain.Flow) bool {
	same, known := ix.SamePool(f.Source, f.Target)
	return known && !same
}

// WithinPool reports whether f provably stays inside one pool.
func (ix *Index) WithinPool(f *domain.Flow) bool {
	same, known := ix.SamePool(f.Source, f.Target)
	return known && same
}

func (p *Pool) HasActivity() bool {
	for _, e := range p.Elements {
		if e.Type.IsActivity() {
			return true
		}
	}
	return false
}

func (p *Pool) OfType(t domain.ElementType) []*domain.Element {
	var out []*domain.Element
	for _, e := range p.Elements {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
