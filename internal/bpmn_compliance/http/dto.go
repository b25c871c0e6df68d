package http

import "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/versioning"

// ValidateRequest carries a process document inline. Format defaults to json.
type ValidateRequest struct {
	Format  string `json:"format,omitempty"`
	Content string `json:"content"`
	JobID   string `json:"job_id,omitempty"`
}

type ImproveRequest struct {
	Format        string  `json:"format,omitempty"`
	Content       string  `json:"content"`
	JobID         string  `json:"job_id,omitempty"`
	TargetScore   float64 `json:"target_score,omitempty"`   // 0 = server default
	MaxIterations int     `json:"max_iterations,omitempty"` // 0 = server default
	OutputFormat  string  `json:"output_format,omitempty"`  // empty = same as format
}

type RuleResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// VersionResponse is the stored version metadata plus the saved process document.
type VersionResponse struct {
	versioning.Version
	Content string `json:"content"`
}

type errorResponse struct {
	Error string `json:"error"`
}
