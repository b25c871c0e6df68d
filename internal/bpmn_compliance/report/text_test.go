package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/fixtures"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/improvement"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/validation"
)

func TestText(t *testing.T) {
	out := Text(validation.Validate(fixtures.MissingStart()))

	assert.True(t, strings.HasPrefix(out, "Compliance score: 15.0/100 (INVALID)"))
	assert.Contains(t, out, "CRITICAL (3)")
	assert.Contains(t, out, "STRUCT_001 p1:")
	assert.Contains(t, out, "[auto-fixable]")
	assert.Contains(t, out, "Priorities:")
	assert.Less(t, strings.Index(out, "CRITICAL"), strings.Index(out, "MAJOR (1)"))
}

func TestImprovementSummary(t *testing.T) {
	res := improvement.New().Improve(fixtures.MissingStart(), 0, 0)
	out := ImprovementSummary(res)

	assert.Contains(t, out, "Improvement target_achieved: 15.0 -> 100.0")
	assert.Contains(t, out, "iteration 1 [target_achieved]")
	assert.Contains(t, out, "missing_start_event (STRUCT_001, STRUCT_007)")
	assert.NotContains(t, out, "Remaining issues")
}
