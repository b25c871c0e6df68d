package improvement

import (
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	_ "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix/strategies"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
	_ "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation/rules"
)

const (
	DefaultTargetScore   = 85.0
	DefaultMaxIterations = 5
)

type Status string

const (
	StatusImproved             Status = "improved"
	StatusTargetAchieved       Status = "target_achieved"
	StatusNoImprovements       Status = "no_improvements"
	StatusMaxIterationsReached Status = "max_iterations_reached"
)

type Iteration struct {
	Iteration      int               `json:"iteration" yaml:"iteration"`
	Status         Status            `json:"status" yaml:"status"`
	ScoreBefore    float64           `json:"score_before" yaml:"score_before"`
	ScoreAfter     float64           `json:"score_after" yaml:"score_after"`
	IssuesBefore   int               `json:"issues_before" yaml:"issues_before"`
	IssuesAfter    int               `json:"issues_after" yaml:"issues_after"`
	TargetedIssues []domain.Issue    `json:"targeted_issues" yaml:"targeted_issues"`
	FixesApplied   []autofix.Applied `json:"fixes_applied" yaml:"fixes_applied"`
	RolledBack     []string          `json:"rolled_back,omitempty" yaml:"rolled_back,omitempty"`
}

type Result struct {
	FinalGraph    *domain.Graph  `json:"final_graph" yaml:"final_graph"`
	FinalReport   *domain.Report `json:"final_report" yaml:"final_report"`
	InitialReport *domain.Report `json:"initial_report" yaml:"initial_report"`
	History       []Iteration    `json:"history" yaml:"history"`
	Success       bool           `json:"success" yaml:"success"`
	Status        Status         `json:"status" yaml:"status"`
	TargetScore   float64        `json:"target_score" yaml:"target_score"`
}

// Engine runs the validate / fix loop. The zero value uses every registered strategy.
type Engine struct {
	// Strategies overrides the registered library, in run order.
	Strategies []autofix.Strategy
	Logf       func(format string, args ...any)
}

func New() *Engine { return &Engine{} }

// Improve repairs a deep copy of g until the score reaches target, a pass changes
// nothing, or maxIterations passes ran. g itself is never modified. Out-of-range
// arguments fall back to the defaults.
//
// The loop is greedy: each applicable strategy is applied once per pass and kept only
// if the re-validated score does not drop, so scores in History never decrease.
func (e *Engine) Improve(g *domain.Graph, target float64, maxIterations int) *Result {
	if target <= 0 || target > 100 {
		target = DefaultTargetScore
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	work := g.Clone()
	current := validation.Validate(work)
	res := &Result{InitialReport: current, TargetScore: target}
	e.logf("[info] improve start score=%.1f issues=%d target=%.1f", current.OverallScore, len(current.Issues), target)

	status := StatusMaxIterationsReached
	for i := 1; ; i++ {
		if current.OverallScore >= target {
			status = StatusTargetAchieved
			break
		}
		if i > maxIterations {
			status = StatusMaxIterationsReached
			break
		}

		it, next, nextGraph := e.pass(i, work, current)
		work, current = nextGraph, next
		if target <= current.OverallScore && len(it.FixesApplied) > 0 {
			it.Status = StatusTargetAchieved
		}
		res.History = append(res.History, it)
		e.logf("[info] improve iteration=%d status=%s score=%.1f->%.1f fixes=%d",
			i, it.Status, it.ScoreBefore, it.ScoreAfter, len(it.FixesApplied))

		if it.Status == StatusNoImprovements {
			status = StatusNoImprovements
			break
		}
	}

	res.FinalGraph = work
	res.FinalReport = current
	res.Status = status
	res.Success = current.OverallScore >= target
	e.logf("[info] improve done status=%s score=%.1f success=%t", status, current.OverallScore, res.Success)
	return res
}

func (e *Engine) pass(n int, work *domain.Graph, current *domain.Report) (Iteration, *domain.Report, *domain.Graph) {
	it := Iteration{
		Iteration:      n,
		Status:         StatusImproved,
		ScoreBefore:    current.OverallScore,
		IssuesBefore:   len(current.Issues),
		TargetedIssues: fixable(current),
	}

	for _, s := range e.strategies() {
		if !current.HasFixable(s.Rules()...) {
			continue
		}
		snapshot := work.Clone()
		changed, notes := s.Apply(work)
		if !changed {
			continue
		}
		after := validation.Validate(work)
		if after.OverallScore < current.OverallScore {
			work = snapshot
			it.RolledBack = append(it.RolledBack, s.Name())
			e.logf("[warn] improve strategy=%s rolled back score=%.1f->%.1f", s.Name(), current.OverallScore, after.OverallScore)
			continue
		}
		current = after
		it.FixesApplied = append(it.FixesApplied, autofix.Applied{Strategy: s.Name(), Rules: s.Rules(), Notes: notes})
	}

	if len(it.FixesApplied) == 0 {
		it.Status = StatusNoImprovements
	}
	it.ScoreAfter = current.OverallScore
	it.IssuesAfter = len(current.Issues)
	return it, current, work
}

func (e *Engine) strategies() []autofix.Strategy {
	if e.Strategies != nil {
		return e.Strategies
	}
	return autofix.All()
}

func (e *Engine) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

func fixable(r *domain.Report) []domain.Issue {
	out := []domain.Issue{}
	for _, is := range r.Issues {
		if is.AutoFixable {
			out = append(out, is)
		}
	}
	return out
}
