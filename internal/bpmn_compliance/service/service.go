package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	_ "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix/strategies"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/improvement"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/mapper"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/validator"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/repository"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
	_ "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation/rules"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/versioning"
)

// ErrInvalidInput marks errors caused by the submitted document rather than by
// infrastructure.
var ErrInvalidInput = errors.New("invalid input")

// ReportCache is satisfied by *repository.ReportCache.
type ReportCache interface {
	Key(g *domain.Graph) (string, error)
	Get(ctx context.Context, key string) (*domain.Report, bool, error)
	Set(ctx context.Context, key string, r *domain.Report) error
}

// RunStore is satisfied by *repository.RunRepository.
type RunStore interface {
	Create(ctx context.Context, run *repository.Run) error
}

type Options struct {
	OutDir        string
	DotBin        string
	RenderSVG     bool
	TargetScore   float64
	MaxIterations int
}

// Deps are optional; a nil field disables the feature.
type Deps struct {
	Cache ReportCache
	Runs  RunStore
}

type Service struct {
	opt  Options
	deps Deps
}

func New(opt Options, deps Deps) *Service {
	if opt.OutDir == "" {
		opt.OutDir = "out"
	}
	if opt.TargetScore <= 0 || opt.TargetScore > 100 {
		opt.TargetScore = improvement.DefaultTargetScore
	}
	if opt.MaxIterations <= 0 {
		opt.MaxIterations = improvement.DefaultMaxIterations
	}
	return &Service{opt: opt, deps: deps}
}

// Input is one submitted process document.
type Input struct {
	Format  parser.Format
	Content []byte
	JobID   string
}

// LoadFile reads a document from disk, taking the format from its extension.
func LoadFile(path string) (Input, error) {
	f, err := parser.FormatFromPath(path)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Input{Format: f, Content: b}, nil
}

func (s *Service) Rules() []validation.Rule {
	return validation.All()
}

func (s *Service) decode(in Input) (*domain.Graph, error) {
	if in.JobID != "" && !versioning.ValidID(in.JobID) {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidInput, versioning.ErrInvalidID, in.JobID)
	}
	f := in.Format
	if f == "" {
		f = parser.FormatJSON
	}
	doc, err := parser.Parse(f, in.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validator.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return mapper.ToGraph(doc), nil
}

// SuggestedFix names a strategy the improvement engine would try on the report.
type SuggestedFix struct {
	Strategy string   `json:"strategy" yaml:"strategy"`
	Rules    []string `json:"rules" yaml:"rules"`
}

func suggestions(r *domain.Report) []SuggestedFix {
	out := []SuggestedFix{}
	for _, st := range autofix.Applicable(r) {
		out = append(out, SuggestedFix{Strategy: st.Name(), Rules: st.Rules()})
	}
	return out
}
