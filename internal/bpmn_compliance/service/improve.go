package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/graph/export"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/improvement"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/mapper"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/report"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/repository"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/utils"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/versioning"
)

type ImproveInput struct {
	Input
	// zero values fall back to the service options
	TargetScore   float64
	MaxIterations int
	// empty means the input format
	OutputFormat parser.Format
}

type ImproveResult struct {
	InitialReport   *domain.Report          `json:"initial_report" yaml:"initial_report"`
	FinalReport     *domain.Report          `json:"final_report" yaml:"final_report"`
	History         []improvement.Iteration `json:"history" yaml:"history"`
	Success         bool                    `json:"success" yaml:"success"`
	Status          improvement.Status      `json:"status" yaml:"status"`
	TargetScore     float64                 `json:"target_score" yaml:"target_score"`
	Improved        *domain.Graph           `json:"improved" yaml:"improved"`
	ImprovedContent string                  `json:"improved_content" yaml:"improved_content"`
	OutputFormat    parser.Format           `json:"output_format" yaml:"output_format"`
	Summary         string                  `json:"summary" yaml:"summary"`
	Version         *versioning.Version     `json:"version" yaml:"version"`
	DOTPath         string                  `json:"dot_path" yaml:"dot_path"`
	SVGPath         string                  `json:"svg_path,omitempty" yaml:"svg_path,omitempty"`
	RunID           string                  `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

// Improve repairs a document, stores the repaired diagram as a new version next to
// its report and DOT rendering, and records the run.
func (s *Service) Improve(ctx context.Context, in ImproveInput) (*ImproveResult, error) {
	const op = "improve"
	l := NewLogger(ctx)

	g, err := s.decode(in.Input)
	if err != nil {
		l.LogError(op, err)
		return nil, err
	}

	outFmt := in.OutputFormat
	if outFmt == "" {
		outFmt = in.Format
	}
	if outFmt == "" {
		outFmt = parser.FormatJSON
	}
	target := in.TargetScore
	if target <= 0 {
		target = s.opt.TargetScore
	}
	maxIter := in.MaxIterations
	if maxIter <= 0 {
		maxIter = s.opt.MaxIterations
	}

	engine := &improvement.Engine{Logf: l.Tracef}
	res := engine.Improve(g, target, maxIter)

	content, err := parser.Marshal(outFmt, mapper.FromGraph(res.FinalGraph))
	if err != nil {
		l.LogError(op, err)
		return nil, fmt.Errorf("encode improved process: %w", err)
	}

	out := &ImproveResult{
		InitialReport:   res.InitialReport,
		FinalReport:     res.FinalReport,
		History:         res.History,
		Success:         res.Success,
		Status:          res.Status,
		TargetScore:     res.TargetScore,
		Improved:        res.FinalGraph,
		ImprovedContent: string(content),
		OutputFormat:    outFmt,
		Summary:         report.ImprovementSummary(res),
	}
	if out.History == nil {
		out.History = []improvement.Iteration{}
	}

	v, err := versioning.CreateVersion(in.JobID, s.opt.OutDir, string(res.Status), outFmt, content, res.FinalReport.OverallScore)
	if err != nil {
		l.LogError(op, err)
		return nil, fmt.Errorf("store version: %w", err)
	}
	out.Version = v

	if err := s.writeArtifacts(ctx, l, out); err != nil {
		l.LogError(op, err)
		return nil, err
	}

	summary, _ := json.Marshal(map[string]any{
		"issues_before": len(res.InitialReport.Issues),
		"issues_after":  len(res.FinalReport.Issues),
		"fixes":         fixCount(res.History),
	})
	out.RunID = s.record(ctx, l, &repository.Run{
		JobID:        v.JobID,
		Operation:    repository.OperationImprove,
		InitialScore: res.InitialReport.OverallScore,
		FinalScore:   res.FinalReport.OverallScore,
		Status:       string(res.Status),
		Success:      res.Success,
		Iterations:   len(res.History),
		VersionID:    v.VersionID,
		Summary:      summary,
	})

	l.LogInfof(op, "status=%s score=%.1f->%.1f version=%s",
		res.Status, res.InitialReport.OverallScore, res.FinalReport.OverallScore, v.VersionID)
	return out, nil
}

// writeArtifacts persists the result in JSON and YAML plus a DOT rendering into the
// version directory. SVG rendering is optional and only logged on failure.
func (s *Service) writeArtifacts(ctx context.Context, l *Logger, out *ImproveResult) error {
	dir := out.Version.Dir
	if err := export.WriteJSON(filepath.Join(dir, "improvement.json"), out); err != nil {
		return fmt.Errorf("write improvement json: %w", err)
	}
	if err := export.WriteYAML(filepath.Join(dir, "improvement.yaml"), out); err != nil {
		return fmt.Errorf("write improvement yaml: %w", err)
	}

	title := out.Improved.ProcessName
	if title == "" {
		title = "BPMN process"
	}
	out.DOTPath = filepath.Join(dir, "graph.dot")
	if err := utils.WriteFile(out.DOTPath, export.ToDOT(out.Improved, title, out.FinalReport.Issues)); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}

	if s.opt.RenderSVG {
		svg := filepath.Join(dir, "graph.svg")
		if err := utils.DotTo(ctx, out.DOTPath, svg, "svg", s.opt.DotBin); err != nil {
			l.LogWarnf("render", "svg skipped: %v", err)
		} else {
			out.SVGPath = svg
		}
	}
	return nil
}

func fixCount(history []improvement.Iteration) int {
	n := 0
	for _, it := range history {
		n += len(it.FixesApplied)
	}
	return n
}
