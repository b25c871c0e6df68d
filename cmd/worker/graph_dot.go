package main

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/graph/export"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/mapper"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/utils"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

// runDOT writes a DOT rendering of a process with its issues highlighted.
func runDOT(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: dot <path> <out.dot>")
	}
	f, err := parser.FormatFromPath(args[0])
	if err != nil {
		return err
	}
	doc, err := parseFile(f, args[0])
	if err != nil {
		return err
	}
	g := mapper.ToGraph(doc)
	title := g.ProcessName
	if title == "" {
		title = "BPMN process"
	}
	return utils.WriteFile(args[1], export.ToDOT(g, title, validation.Validate(g).Issues))
}

func parseFile(f parser.Format, path string) (*parser.Document, error) {
	switch f {
	case parser.FormatYAML:
		return parser.ParseYAML(path)
	case parser.FormatXML:
		return parser.ParseBPMN(path)
	default:
		return parser.ParseJSON(path)
	}
}
