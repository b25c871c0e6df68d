package autofix

import (
	"sort"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

// Strategy repairs one family of issues in place. Apply must be safe to call again
// when nothing is left to fix, and must never delete elements or flows.
type Strategy interface {
	Name() string
	Rules() []string
	Apply(g *domain.Graph) (changed bool, notes []string)
}

// Applied records one strategy application that changed the graph.
type Applied struct {
	Strategy string   `json:"strategy" yaml:"strategy"`
	Rules    []string `json:"rules" yaml:"rules"`
	Notes    []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type entry struct {
	priority int
	s        Strategy
}

var strategies []entry

// Register adds s to the library. Lower priorities run first.
func Register(priority int, s Strategy) {
	if s == nil {
		return
	}
	for i := range strategies {
		if strategies[i].s.Name() == s.Name() {
			strategies[i] = entry{priority, s}
			return
		}
	}
	strategies = append(strategies, entry{priority, s})
}

func All() []Strategy {
	tmp := make([]entry, len(strategies))
	copy(tmp, strategies)
	sort.SliceStable(tmp, func(i, j int) bool {
		if tmp[i].priority != tmp[j].priority {
			return tmp[i].priority < tmp[j].priority
		}
		return tmp[i].s.Name() < tmp[j].s.Name()
	})
	out := make([]Strategy, 0, len(tmp))
	for _, e := range tmp {
		out = append(out, e.s)
	}
	return out
}

func Find(name string) Strategy {
	for _, e := range strategies {
		if e.s.Name() == name {
			return e.s
		}
	}
	return nil
}

// Applicable returns, in run order, the strategies targeting an auto-fixable issue of r.
func Applicable(r *domain.Report) []Strategy {
	var out []Strategy
	for _, s := range All() {
		if r.HasFixable(s.Rules()...) {
			out = append(out, s)
		}
	}
	return out
}
