package strategies

import (
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/autofix"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

type taskType struct{}

func (taskType) Name() string    { return "task_type" }
func (taskType) Rules() []string { return []string{"SEM_004"} }

func (taskType) Apply(g *domain.Graph) (bool, []string) {
	var notes []string
	for i := range g.Elements {
		e := &g.Elements[i]
		if !e.Type.IsActivity() || e.TaskType != "" {
			continue
		}
		e.TaskType = taskTypeFor(e.Type)
		notes = append(notes, fmt.Sprintf("Set task type of %s to %s", e.ID, e.TaskType))
	}
	return len(notes) > 0, notes
}

func init() { autofix.Register(40, taskType{}) }
