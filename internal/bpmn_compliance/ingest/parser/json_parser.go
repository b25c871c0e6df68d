package parser

import (
	"encoding/json"
	"os"
)

func ParseJSON(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSONBytes(b)
}

func ParseJSONBytes(b []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}
	return &d, nil
}

func ParseJSONString(s string) (*Document, error) {
	return ParseJSONBytes([]byte(s))
}

func MarshalJSON(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
