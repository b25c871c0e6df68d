package improvement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/fixtures"
)

func TestImprove_MissingStart(t *testing.T) {
	g := fixtures.MissingStart()
	original := g.Clone()

	res := New().Improve(g, 0, 0)

	require.NotNil(t, res)
	assert.Equal(t, original, g, "input graph must not change")
	assert.NotEmpty(t, res.InitialReport.Find("STRUCT_001", "p1"))
	assert.Empty(t, res.FinalReport.Find("STRUCT_001", "p1"))
	assert.True(t, res.Success)
	assert.Equal(t, StatusTargetAchieved, res.Status)
	assert.Equal(t, DefaultTargetScore, res.TargetScore)

	start := res.FinalGraph.Element("start_p1_auto")
	require.NotNil(t, start)
	assert.Equal(t, domain.StartEvent, start.Type)
	var connected bool
	for _, f := range res.FinalGraph.Flows {
		if f.Source == start.ID && f.Target == "t" && f.Type == domain.SequenceFlow {
			connected = true
		}
	}
	assert.True(t, connected)
	assert.Equal(t, 100.0, res.FinalReport.OverallScore)
}

func TestImprove_CrossPoolSequenceBecomesMessage(t *testing.T) {
	g := fixtures.CrossPoolSequence()

	res := New().Improve(g, 100, 5)

	assert.Len(t, res.InitialReport.Find("STRUCT_006", "x1"), 1)
	assert.Equal(t, domain.MessageFlow, res.FinalGraph.Flow("x1").Type)
	assert.Empty(t, res.FinalReport.Find("STRUCT_006", "x1"))
	assert.Equal(t, domain.SequenceFlow, g.Flow("x1").Type)
	assert.True(t, res.Success)
}

// messageLoopPool has no start or end event: its only trigger and terminator hang off a
// message flow that stays inside the pool.
func messageLoopPool() *domain.Graph {
	return &domain.Graph{
		Participants: []domain.Participant{
			{ID: "p1", Name: "Shop", Type: domain.ParticipantHuman},
			{ID: "p2", Name: "Warehouse", Type: domain.ParticipantHuman},
		},
		Elements: []domain.Element{
			{ID: "c", Name: "Order received", Type: domain.IntermediateMessageCatchEvent, Participant: "p1"},
			{ID: "t", Name: "Pack order", Type: domain.UserTask, TaskType: "user", Participant: "p1"},
			{ID: "th", Name: "Notify", Type: domain.IntermediateMessageThrowEvent, Participant: "p1"},
			{ID: "s", Name: "Start", Type: domain.StartEvent, Participant: "p2"},
			{ID: "u", Name: "Ship", Type: domain.UserTask, TaskType: "user", Participant: "p2"},
			{ID: "e", Name: "End", Type: domain.EndEvent, Participant: "p2"},
		},
		Flows: []domain.Flow{
			{ID: "f1", Source: "c", Target: "t", Type: domain.SequenceFlow},
			{ID: "f2", Source: "t", Target: "th", Type: domain.SequenceFlow},
			{ID: "m", Source: "th", Target: "c", Type: domain.MessageFlow},
			{ID: "x", Source: "t", Target: "u", Type: domain.SequenceFlow},
			{ID: "f3", Source: "s", Target: "u", Type: domain.SequenceFlow},
			{ID: "f4", Source: "u", Target: "e", Type: domain.SequenceFlow},
		},
	}
}

func TestImprove_CrossPoolFixSurvivesUnsafeMessageFlow(t *testing.T) {
	g := messageLoopPool()

	res := New().Improve(g, 100, 5)

	require.Len(t, res.InitialReport.Find("STRUCT_006", "x"), 1)
	assert.Equal(t, domain.MessageFlow, res.FinalGraph.Flow("x").Type)
	assert.Empty(t, res.FinalReport.Find("STRUCT_006", "x"))

	assert.Equal(t, domain.MessageFlow, res.FinalGraph.Flow("m").Type)
	is := res.FinalReport.Find("STRUCT_008", "m")
	require.Len(t, is, 1)
	assert.False(t, is[0].AutoFixable)

	require.NotEmpty(t, res.History)
	first := res.History[0]
	assert.NotContains(t, first.RolledBack, "flow_type")
	var applied []string
	for _, a := range first.FixesApplied {
		applied = append(applied, a.Strategy)
	}
	assert.Contains(t, applied, "flow_type")
	assert.NotContains(t, applied, "message_flow_type")
}

func TestImprove_HistoryIsMonotonic(t *testing.T) {
	g := fixtures.CrossPoolSequence()
	g.Element("t1").Participant = ""
	g.AddElement(domain.Element{ID: "gw", Name: "Decide", Type: domain.ExclusiveGateway, Participant: "p2"})
	g.AddFlow(domain.Flow{ID: "back", Source: "t1", Target: "s1", Type: domain.SequenceFlow})

	res := New().Improve(g, 100, 10)

	require.NotEmpty(t, res.History)
	prev := res.InitialReport.OverallScore
	for _, it := range res.History {
		assert.Equal(t, prev, it.ScoreBefore)
		assert.GreaterOrEqual(t, it.ScoreAfter, it.ScoreBefore)
		if it.Status != StatusNoImprovements {
			assert.NotEmpty(t, it.FixesApplied)
		}
		prev = it.ScoreAfter
	}
	assert.Equal(t, prev, res.FinalReport.OverallScore)
}

func TestImprove_AlreadyCompliant(t *testing.T) {
	res := New().Improve(fixtures.OrderApproval(), 95, 3)

	assert.Empty(t, res.History)
	assert.True(t, res.Success)
	assert.Equal(t, StatusTargetAchieved, res.Status)
}

func TestImprove_StallsOnUnfixableDefects(t *testing.T) {
	g := fixtures.MinimalValid()
	g.AddFlow(domain.Flow{ID: "dangling", Source: "t", Target: "nowhere", Type: domain.SequenceFlow})
	g.AddFlow(domain.Flow{ID: "dangling2", Source: "t", Target: "nowhere2", Type: domain.SequenceFlow})

	res := New().Improve(g, 100, 5)

	assert.False(t, res.Success)
	assert.Equal(t, StatusNoImprovements, res.Status)
	require.NotEmpty(t, res.History)
	assert.Equal(t, StatusNoImprovements, res.History[len(res.History)-1].Status)
	assert.Len(t, res.FinalReport.Find("SYNT_003", ""), 2)
}

type looping struct{ calls int }

func (l *looping) Name() string    { return "looping" }
func (l *looping) Rules() []string { return []string{"SEM_004"} }
func (l *looping) Apply(g *domain.Graph) (bool, []string) {
	l.calls++
	g.ProcessName = g.ProcessName + "x"
	return true, []string{"renamed"}
}

func TestImprove_MaxIterations(t *testing.T) {
	s := &looping{}
	e := &Engine{Strategies: []autofix.Strategy{s}}
	g := fixtures.MinimalValid()
	g.AddElement(domain.Element{ID: "bad-id", Name: "Bad id", Type: domain.UserTask, Participant: "p1"})

	res := e.Improve(g, 100, 3)

	assert.Equal(t, StatusMaxIterationsReached, res.Status)
	assert.False(t, res.Success)
	assert.Len(t, res.History, 3)
	assert.Equal(t, 3, s.calls)
}

type harmful struct{}

func (harmful) Name() string    { return "harmful" }
func (harmful) Rules() []string { return []string{"SEM_004"} }
func (harmful) Apply(g *domain.Graph) (bool, []string) {
	g.AddFlow(domain.Flow{ID: "oops", Source: "t", Target: "missing", Type: domain.SequenceFlow})
	return true, nil
}

func TestImprove_RollsBackScoreDrops(t *testing.T) {
	var logs []string
	e := &Engine{
		Strategies: []autofix.Strategy{harmful{}},
		Logf:       func(format string, args ...any) { logs = append(logs, format) },
	}
	g := fixtures.MinimalValid()
	g.AddElement(domain.Element{ID: "bad-id", Name: "Bad id", Type: domain.UserTask, Participant: "p1"})

	res := e.Improve(g, 100, 3)

	assert.Nil(t, res.FinalGraph.Flow("oops"))
	assert.Equal(t, StatusNoImprovements, res.Status)
	require.Len(t, res.History, 1)
	assert.Equal(t, []string{"harmful"}, res.History[0].RolledBack)
	assert.NotEmpty(t, logs)
}
