package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/fixtures"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
	_ "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation/rules"
)

func TestAll_RegistersFullCatalogue(t *testing.T) {
	rules := validation.All()
	require.Len(t, rules, 18)
	for i := 1; i < len(rules); i++ {
		assert.Less(t, rules[i-1].Code, rules[i].Code)
	}
	_, ok := validation.Lookup("STRUCT_006")
	assert.True(t, ok)
}

func TestValidate_MinimalValidDiagram(t *testing.T) {
	r := validation.Validate(fixtures.MinimalValid())

	assert.Equal(t, 100.0, r.OverallScore)
	assert.Equal(t, domain.LevelExcellent, r.ComplianceLevel)
	assert.Zero(t, r.Count(domain.SeverityCritical))
	assert.Zero(t, r.Count(domain.SeverityMajor))
	assert.Equal(t, 3, r.Statistics.Process.Elements)
	assert.Equal(t, 1, r.Statistics.Process.StartEvents)
	assert.Equal(t, 1, r.Statistics.Process.EndEvents)
	assert.Equal(t, 1, r.Statistics.Process.Activities)
}

func TestValidate_CompliantProcessHasNoIssues(t *testing.T) {
	r := validation.Validate(fixtures.OrderApproval())

	assert.Empty(t, r.Issues)
	assert.Equal(t, 100.0, r.OverallScore)
	assert.Equal(t, []string{"Process is compliant; only stylistic review remains"}, r.ImprovementPriorities)
}

func TestValidate_IsIdempotentAndDoesNotMutate(t *testing.T) {
	g := fixtures.CrossPoolSequence()
	before := g.Clone()

	first := validation.Validate(g)
	second := validation.Validate(g)

	assert.Equal(t, first, second)
	assert.Equal(t, before, g)
}

func TestValidate_NilGraph(t *testing.T) {
	r := validation.Validate(nil)
	require.NotNil(t, r)
	assert.Equal(t, 100.0, r.OverallScore)
	assert.Empty(t, r.Issues)
}

func TestValidate_Statistics(t *testing.T) {
	r := validation.Validate(fixtures.MissingStart())

	assert.Equal(t, len(r.Issues), r.Statistics.TotalIssues)
	assert.Equal(t, 1, r.Statistics.IssuesByRule["STRUCT_001"])
	assert.Equal(t, 1, r.Statistics.IssuesByRule["STRUCT_007"])
	assert.Equal(t, 3, r.Statistics.IssuesBySeverity[domain.SeverityCritical])
	assert.Equal(t, 4, r.Statistics.AutoFixableIssues)
	assert.Equal(t, 15.0, r.OverallScore)
	assert.Equal(t, domain.LevelInvalid, r.ComplianceLevel)
}
