package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

// ToDOT renders g with one cluster per pool. Message flows are dashed, unassigned
// elements sit outside every cluster, and elements flagged by issues are outlined red.
func ToDOT(g *domain.Graph, title string, issues []domain.Issue) string {
	flagged := map[string]domain.Severity{}
	for _, is := range issues {
		if cur, ok := flagged[is.ElementID]; !ok || is.Severity.Rank() < cur.Rank() {
			flagged[is.ElementID] = is.Severity
		}
	}

	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n  compound=true;\n  node [fontname=\"Helvetica\"];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label=%q; fontname="Helvetica";`, title))
		b.WriteString("\n")
	}

	written := map[string]bool{}
	for i, p := range g.Participants {
		b.WriteString(fmt.Sprintf("  subgraph cluster_%d {\n    label=%q;\n    style=\"rounded\";\n", i, poolLabel(p)))
		for _, e := range g.PoolElements(p.ID) {
			b.WriteString("    " + nodeLine(*e, flagged))
			written[e.ID] = true
		}
		b.WriteString("  }\n")
	}
	for _, e := range g.Elements {
		if !written[e.ID] {
			b.WriteString("  " + nodeLine(e, flagged))
		}
	}

	externalUsed := false
	for _, f := range g.Flows {
		if f.Source == domain.ExternalID || f.Target == domain.ExternalID {
			externalUsed = true
		}
		attrs := []string{fmt.Sprintf("tooltip=%q", f.ID)}
		if f.Type == domain.MessageFlow {
			attrs = append(attrs, `style="dashed"`, `arrowhead="empty"`)
		}
		lbl := f.Name
		if f.Condition != "" {
			lbl = strings.TrimSpace(lbl + " [" + f.Condition + "]")
		}
		if lbl != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", lbl))
		}
		if sev, ok := flagged[f.ID]; ok {
			attrs = append(attrs, fmt.Sprintf("color=%q", severityColor(sev)))
		}
		b.WriteString(fmt.Sprintf("  %q -> %q [%s];\n", f.Source, f.Target, strings.Join(attrs, ", ")))
	}
	if externalUsed {
		b.WriteString(fmt.Sprintf("  %q [shape=box3d, label=\"External\"];\n", domain.ExternalID))
	}

	b.WriteString("}\n")
	return b.String()
}

func poolLabel(p domain.Participant) string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

func nodeLine(e domain.Element, flagged map[string]domain.Severity) string {
	lbl := e.Name
	if lbl == "" {
		lbl = e.ID
	}
	style := nodeStyle(e.Type)
	if sev, ok := flagged[e.ID]; ok {
		style += fmt.Sprintf(`, color=%q, penwidth=2`, severityColor(sev))
	}
	return fmt.Sprintf("%q [label=%q, %s];\n", e.ID, lbl, style)
}

func nodeStyle(t domain.ElementType) string {
	switch {
	case t == domain.StartEvent:
		return `shape=circle, style="filled", fillcolor="#d4edda"`
	case t == domain.EndEvent:
		return `shape=doublecircle, style="filled", fillcolor="#f8d7da"`
	case t.IsCatchEvent() || t.IsThrowEvent():
		return `shape=circle, style="filled", fillcolor="#fff3cd"`
	case t.IsGateway():
		return `shape=diamond, style="filled", fillcolor="#fff3cd"`
	default:
		return `shape=box, style="rounded,filled", fillcolor="#eef6ff"`
	}
}

func severityColor(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return "#c0392b"
	case domain.SeverityMajor:
		return "#e67e22"
	case domain.SeverityMinor:
		return "#f1c40f"
	default:
		return "#7f8c8d"
	}
}
