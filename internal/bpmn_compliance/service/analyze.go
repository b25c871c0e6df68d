package service

import (
	"context"
	"encoding/json"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/repository"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

type AnalyzeResult struct {
	Report      *domain.Report `json:"report" yaml:"report"`
	Graph       *domain.Graph  `json:"graph" yaml:"graph"`
	Suggestions []SuggestedFix `json:"suggestions" yaml:"suggestions"`
	Cached      bool           `json:"cached" yaml:"cached"`
	RunID       string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

// Analyze decodes and validates a document. Cache and run log failures are logged and
// do not fail the call.
func (s *Service) Analyze(ctx context.Context, in Input) (*AnalyzeResult, error) {
	const op = "analyze"
	l := NewLogger(ctx)

	g, err := s.decode(in)
	if err != nil {
		l.LogError(op, err)
		return nil, err
	}

	report, cached := s.validate(ctx, l, g)
	res := &AnalyzeResult{
		Report:      report,
		Graph:       g,
		Suggestions: suggestions(report),
		Cached:      cached,
	}
	l.LogInfof(op, "score=%.1f level=%s issues=%d cached=%t",
		report.OverallScore, report.ComplianceLevel, len(report.Issues), cached)

	summary, _ := json.Marshal(map[string]any{
		"issues":       len(report.Issues),
		"level":        report.ComplianceLevel,
		"auto_fixable": report.Statistics.AutoFixableIssues,
	})
	res.RunID = s.record(ctx, l, &repository.Run{
		JobID:        in.JobID,
		Operation:    repository.OperationValidate,
		InitialScore: report.OverallScore,
		FinalScore:   report.OverallScore,
		Status:       string(report.ComplianceLevel),
		Success:      report.ComplianceLevel != domain.LevelInvalid,
		Summary:      summary,
	})
	return res, nil
}

func (s *Service) validate(ctx context.Context, l *Logger, g *domain.Graph) (*domain.Report, bool) {
	if s.deps.Cache == nil {
		return validation.Validate(g), false
	}

	key, err := s.deps.Cache.Key(g)
	if err != nil {
		l.LogWarnf("cache", "key failed: %v", err)
		return validation.Validate(g), false
	}
	if r, ok, err := s.deps.Cache.Get(ctx, key); err != nil {
		l.LogWarnf("cache", "get failed: %v", err)
	} else if ok {
		return r, true
	}

	r := validation.Validate(g)
	if err := s.deps.Cache.Set(ctx, key, r); err != nil {
		l.LogWarnf("cache", "set failed: %v", err)
	}
	return r, false
}

func (s *Service) record(ctx context.Context, l *Logger, run *repository.Run) string {
	if s.deps.Runs == nil {
		return ""
	}
	if run.JobID == "" {
		run.JobID = "adhoc"
	}
	if err := s.deps.Runs.Create(ctx, run); err != nil {
		l.LogWarnf("run_log", "create failed: %v", err)
		return ""
	}
	return run.ID
}
