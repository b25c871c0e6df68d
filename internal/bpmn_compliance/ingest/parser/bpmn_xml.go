package parser

import (
	"encoding/xml"
	"os"
	"strings"
)

const (
	bpmnNamespace   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	targetNamespace = "http://bpmn.io/schema/bpmn"
	unassignedProc  = "Process_unassigned"
)

type xDefinitions struct {
	XMLName         xml.Name        `xml:"definitions"`
	Xmlns           string          `xml:"xmlns,attr,omitempty"`
	ID              string          `xml:"id,attr,omitempty"`
	TargetNamespace string          `xml:"targetNamespace,attr,omitempty"`
	Collaboration   *xCollaboration `xml:"collaboration"`
	Processes       []xProcess      `xml:"process"`
}

type xCollaboration struct {
	ID           string         `xml:"id,attr,omitempty"`
	Participants []xParticipant `xml:"participant"`
	MessageFlows []xNode        `xml:"messageFlow"`
}

type xParticipant struct {
	ID         string `xml:"id,attr"`
	Name       string `xml:"name,attr,omitempty"`
	ProcessRef string `xml:"processRef,attr,omitempty"`
}

type xProcess struct {
	ID           string  `xml:"id,attr"`
	Name         string  `xml:"name,attr,omitempty"`
	IsExecutable string  `xml:"isExecutable,attr,omitempty"`
	Nodes        []xNode `xml:",any"`
}

// xNode covers flow nodes and flows; XMLName.Local carries the BPMN type.
type xNode struct {
	XMLName    xml.Name
	ID         string      `xml:"id,attr"`
	Name       string      `xml:"name,attr,omitempty"`
	SourceRef  string      `xml:"sourceRef,attr,omitempty"`
	TargetRef  string      `xml:"targetRef,attr,omitempty"`
	MessageDef *xEmpty     `xml:"messageEventDefinition"`
	TimerDef   *xEmpty     `xml:"timerEventDefinition"`
	Condition  *xCondition `xml:"conditionExpression"`
}

type xEmpty struct{}

type xCondition struct {
	Body string `xml:",chardata"`
}

func ParseBPMN(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBPMNBytes(b)
}

// ParseBPMNBytes reads BPMN 2.0 XML. Elements take the participant whose processRef
// names their process. Without a collaboration, several processes become one
// participant each and a single process stays participant-free. Message flow ends
// that name a pool rather than an element map to the external actor.
func ParseBPMNBytes(b []byte) (*Document, error) {
	var defs xDefinitions
	if err := xml.Unmarshal(b, &defs); err != nil {
		return nil, &ParseError{Format: FormatXML, Err: err}
	}

	doc := &Document{Participants: []DParticipant{}, Elements: []DElement{}, Flows: []DFlow{}}
	owner := map[string]string{}
	pools := map[string]bool{}
	switch {
	case defs.Collaboration != nil:
		for _, p := range defs.Collaboration.Participants {
			doc.Participants = append(doc.Participants, DParticipant{ID: p.ID, Name: p.Name, ProcessRef: p.ProcessRef})
			pools[p.ID] = true
			if p.ProcessRef != "" {
				owner[p.ProcessRef] = p.ID
			}
		}
	case len(defs.Processes) > 1:
		for _, proc := range defs.Processes {
			doc.Participants = append(doc.Participants, DParticipant{ID: proc.ID, Name: proc.Name, ProcessRef: proc.ID})
			owner[proc.ID] = proc.ID
		}
	}
	if len(defs.Processes) > 0 {
		doc.ProcessName = defs.Processes[0].Name
	}
	for _, proc := range defs.Processes {
		doc.Processes = append(doc.Processes, proc.ID)
	}

	for _, proc := range defs.Processes {
		pid := owner[proc.ID]
		for _, n := range proc.Nodes {
			local := n.XMLName.Local
			switch {
			case local == "sequenceFlow":
				doc.Flows = append(doc.Flows, DFlow{
					ID: n.ID, Source: n.SourceRef, Target: n.TargetRef,
					Type: "sequence", Name: n.Name, Condition: conditionOf(n),
				})
			case isFlowNode(local):
				doc.Elements = append(doc.Elements, DElement{
					ID:          n.ID,
					Name:        n.Name,
					Type:        elementTypeOf(n),
					Participant: pid,
					TaskType:    taskTypeOf(local),
					EventType:   eventTypeOf(n),
				})
			}
		}
	}

	if defs.Collaboration != nil {
		for _, m := range defs.Collaboration.MessageFlows {
			doc.Flows = append(doc.Flows, DFlow{
				ID: m.ID, Source: poolToExternal(m.SourceRef, pools), Target: poolToExternal(m.TargetRef, pools),
				Type: "message", Name: m.Name,
			})
		}
	}
	return doc, nil
}

func ParseBPMNString(s string) (*Document, error) {
	return ParseBPMNBytes([]byte(s))
}

func isFlowNode(local string) bool {
	switch local {
	case "task", "subProcess", "callActivity":
		return true
	}
	return strings.HasSuffix(local, "Event") || strings.HasSuffix(local, "Task") || strings.HasSuffix(local, "Gateway")
}

func elementTypeOf(n xNode) string {
	local := n.XMLName.Local
	if n.MessageDef != nil {
		switch local {
		case "intermediateCatchEvent":
			return "intermediateMessageCatchEvent"
		case "intermediateThrowEvent":
			return "intermediateMessageThrowEvent"
		}
	}
	return local
}

func taskTypeOf(local string) string {
	switch local {
	case "userTask":
		return "user"
	case "serviceTask":
		return "service"
	case "manualTask":
		return "manual"
	default:
		return ""
	}
}

func eventTypeOf(n xNode) string {
	switch {
	case n.MessageDef != nil:
		return "message"
	case n.TimerDef != nil:
		return "timer"
	default:
		return ""
	}
}

func conditionOf(n xNode) string {
	if n.Condition == nil {
		return ""
	}
	return strings.TrimSpace(n.Condition.Body)
}

func poolToExternal(ref string, pools map[string]bool) string {
	if pools[ref] {
		return "external"
	}
	return ref
}

// MarshalBPMN writes d as BPMN 2.0 XML with one process per participant. Elements
// without a declared participant go to a separate process that no participant
// references, so they read back as unassigned.
func MarshalBPMN(d *Document) ([]byte, error) {
	defs := xDefinitions{Xmlns: bpmnNamespace, ID: "Definitions_1", TargetNamespace: targetNamespace}
	flows := d.NormalizedFlows()

	procIdx := map[string]int{}
	elementProc := map[string]string{}
	addProc := func(id, name string) {
		if _, ok := procIdx[id]; ok {
			return
		}
		procIdx[id] = len(defs.Processes)
		defs.Processes = append(defs.Processes, xProcess{ID: id, Name: name, IsExecutable: "false"})
	}

	poolProc := map[string]string{}
	if len(d.Participants) == 0 {
		addProc("Process_1", d.ProcessName)
	} else {
		defs.Collaboration = &xCollaboration{ID: "Collaboration_1"}
		for _, p := range d.Participants {
			ref := p.ProcessRef
			if ref == "" {
				ref = "Process_" + p.ID
			}
			poolProc[p.ID] = ref
			defs.Collaboration.Participants = append(defs.Collaboration.Participants,
				xParticipant{ID: p.ID, Name: p.Name, ProcessRef: ref})
			addProc(ref, p.Name)
		}
		for _, id := range d.Processes {
			addProc(id, "")
		}
	}

	for _, e := range d.Elements {
		proc := "Process_1"
		if len(d.Participants) > 0 {
			var ok bool
			if proc, ok = poolProc[e.Participant]; !ok {
				proc = unassignedProc
				addProc(proc, "")
			}
		}
		elementProc[e.ID] = proc
		p := &defs.Processes[procIdx[proc]]
		p.Nodes = append(p.Nodes, elementNode(e))
	}

	var messages []xNode
	for _, f := range flows {
		if f.Type == "message" {
			messages = append(messages, xNode{XMLName: xml.Name{Local: "messageFlow"}, ID: f.ID, Name: f.Name, SourceRef: f.Source, TargetRef: f.Target})
			continue
		}
		proc, ok := elementProc[f.Source]
		if !ok {
			if proc, ok = elementProc[f.Target]; !ok {
				proc = defs.Processes[0].ID
			}
		}
		n := xNode{XMLName: xml.Name{Local: "sequenceFlow"}, ID: f.ID, Name: f.Name, SourceRef: f.Source, TargetRef: f.Target}
		if f.Condition != "" {
			n.Condition = &xCondition{Body: f.Condition}
		}
		p := &defs.Processes[procIdx[proc]]
		p.Nodes = append(p.Nodes, n)
	}
	if len(messages) > 0 {
		if defs.Collaboration == nil {
			defs.Collaboration = &xCollaboration{ID: "Collaboration_1"}
		}
		defs.Collaboration.MessageFlows = messages
	}

	out, err := xml.MarshalIndent(defs, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func elementNode(e DElement) xNode {
	local := e.Type
	n := xNode{ID: e.ID, Name: e.Name}
	switch e.Type {
	case "intermediateMessageCatchEvent":
		local = "intermediateCatchEvent"
		n.MessageDef = &xEmpty{}
	case "intermediateMessageThrowEvent":
		local = "intermediateThrowEvent"
		n.MessageDef = &xEmpty{}
	default:
		switch e.EventType {
		case "message":
			n.MessageDef = &xEmpty{}
		case "timer":
			n.TimerDef = &xEmpty{}
		}
	}
	if local == "" {
		local = "task"
	}
	n.XMLName = xml.Name{Local: local}
	return n
}
