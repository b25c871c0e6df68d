package parser

import (
	"os"

	"gopkg.in/yaml.v3"
)

func ParseYAML(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAMLBytes(b)
}

func ParseYAMLBytes(b []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, &ParseError{Format: FormatYAML, Err: err}
	}
	return &d, nil
}

func ParseYAMLString(s string) (*Document, error) {
	return ParseYAMLBytes([]byte(s))
}

func MarshalYAML(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}
