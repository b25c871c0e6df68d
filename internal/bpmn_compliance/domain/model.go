package domain

type Participant struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Type       ParticipantType `json:"type,omitempty" yaml:"type,omitempty"`
	ProcessRef string          `json:"processRef,omitempty" yaml:"processRef,omitempty"`
}

type Element struct {
	ID   string      `json:"id" yaml:"id"`
	Name string      `json:"name,omitempty" yaml:"name,omitempty"`
	Type ElementType `json:"type" yaml:"type"`
	// empty means unassigned
	Participant string `json:"participant,omitempty" yaml:"participant,omitempty"`
	TaskType    string `json:"task_type,omitempty" yaml:"task_type,omitempty"`
	EventType   string `json:"event_type,omitempty" yaml:"event_type,omitempty"`
}

type Flow struct {
	ID        string   `json:"id" yaml:"id"`
	Source    string   `json:"source" yaml:"source"`
	Target    string   `json:"target" yaml:"target"`
	Type      FlowType `json:"type" yaml:"type"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Condition string   `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// Graph is a process diagram. Elements and flows refer to each other by id only,
// so copying the slices is a complete copy.
type Graph struct {
	ProcessName string `json:"process_name,omitempty" yaml:"process_name,omitempty"`
	// Processes lists the process ids the source document declared. When empty,
	// participant processRefs are not checked.
	Processes    []string      `json:"processes,omitempty" yaml:"processes,omitempty"`
	Participants []Participant `json:"participants" yaml:"participants"`
	Elements     []Element     `json:"elements" yaml:"elements"`
	Flows        []Flow        `json:"flows" yaml:"flows"`
}

func NewGraph() *Graph {
	return &Graph{
		Participants: []Participant{},
		Elements:     []Element{},
		Flows:        []Flow{},
	}
}

// Clone returns a deep copy that shares no backing arrays with g.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return NewGraph()
	}
	out := &Graph{
		ProcessName:  g.ProcessName,
		Participants: make([]Participant, len(g.Participants)),
		Elements:     make([]Element, len(g.Elements)),
		Flows:        make([]Flow, len(g.Flows)),
	}
	if g.Processes != nil {
		out.Processes = append([]string{}, g.Processes...)
	}
	copy(out.Participants, g.Participants)
	copy(out.Elements, g.Elements)
	copy(out.Flows, g.Flows)
	return out
}

func (g *Graph) Element(id string) *Element {
	for i := range g.Elements {
		if g.Elements[i].ID == id {
			return &g.Elements[i]
		}
	}
	return nil
}

func (g *Graph) Participant(id string) *Participant {
	for i := range g.Participants {
		if g.Participants[i].ID == id {
			return &g.Participants[i]
		}
	}
	return nil
}

func (g *Graph) Flow(id string) *Flow {
	for i := range g.Flows {
		if g.Flows[i].ID == id {
			return &g.Flows[i]
		}
	}
	return nil
}

func (g *Graph) AddElement(e Element) {
	g.Elements = append(g.Elements, e)
}

func (g *Graph) AddFlow(f Flow) {
	g.Flows = append(g.Flows, f)
}

// HasID reports whether any participant, element or flow uses id.
func (g *Graph) HasID(id string) bool {
	return g.Element(id) != nil || g.Flow(id) != nil || g.Participant(id) != nil
}

// PoolElements returns the elements assigned to participant, in graph order.
func (g *Graph) PoolElements(participant string) []*Element {
	var out []*Element
	for i := range g.Elements {
		if g.Elements[i].Participant == participant {
			out = append(out, &g.Elements[i])
		}
	}
	return out
}
