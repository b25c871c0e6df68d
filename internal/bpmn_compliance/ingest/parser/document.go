package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Document is the interchange shape of a process diagram. Flows listed under
// MessageFlows are message flows regardless of their type field.
type Document struct {
	ProcessName  string         `json:"process_name,omitempty" yaml:"process_name,omitempty"`
	Processes    []string       `json:"processes,omitempty" yaml:"processes,omitempty"`
	Participants []DParticipant `json:"participants" yaml:"participants"`
	Elements     []DElement     `json:"elements" yaml:"elements"`
	Flows        []DFlow        `json:"flows" yaml:"flows"`
	MessageFlows []DFlow        `json:"messageFlows,omitempty" yaml:"messageFlows,omitempty"`
}

type DParticipant struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	ProcessRef string `json:"processRef,omitempty" yaml:"processRef,omitempty"`
}

type DElement struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string `json:"type" yaml:"type"`
	Participant string `json:"participant,omitempty" yaml:"participant,omitempty"`
	TaskType    string `json:"task_type,omitempty" yaml:"task_type,omitempty"`
	EventType   string `json:"event_type,omitempty" yaml:"event_type,omitempty"`
}

type DFlow struct {
	ID        string `json:"id" yaml:"id"`
	Source    string `json:"source" yaml:"source"`
	Target    string `json:"target" yaml:"target"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

var (
	ErrParse             = errors.New("parse error")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ParseError carries the format that failed. errors.Is matches both ErrParse and
// the underlying decoder error.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// ParseFormat accepts format names and file extensions. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml", "bpmn", "bpmn2":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatXML:
		return ".bpmn"
	default:
		return ".json"
	}
}

// Parse decodes b in the given format.
func Parse(f Format, b []byte) (*Document, error) {
	switch f {
	case FormatJSON:
		return ParseJSONBytes(b)
	case FormatYAML:
		return ParseYAMLBytes(b)
	case FormatXML:
		return ParseBPMNBytes(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal encodes d in the given format.
func Marshal(f Format, d *Document) ([]byte, error) {
	switch f {
	case FormatJSON:
		return MarshalJSON(d)
	case FormatYAML:
		return MarshalYAML(d)
	case FormatXML:
		return MarshalBPMN(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// NormalizedFlows merges Flows and MessageFlows into one list with canonical type
// names. A message flow whose id already appears in Flows is not repeated.
func (d *Document) NormalizedFlows() []DFlow {
	out := make([]DFlow, 0, len(d.Flows)+len(d.MessageFlows))
	seen := map[string]bool{}
	for _, f := range d.Flows {
		f.Type = normalizeFlowType(f.Type)
		out = append(out, f)
		if f.ID != "" {
			seen[f.ID] = true
		}
	}
	for _, f := range d.MessageFlows {
		if f.ID != "" && seen[f.ID] {
			continue
		}
		f.Type = "message"
		out = append(out, f)
	}
	return out
}

func normalizeFlowType(t string) string {
	switch strings.TrimSpace(t) {
	case "", "sequence", "sequenceFlow":
		return "sequence"
	case "message", "messageFlow":
		return "message"
	default:
		return t
	}
}
