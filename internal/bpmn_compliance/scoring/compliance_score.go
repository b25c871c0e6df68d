package scoring

import (
	"math"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
)

// Score deducts a severity weight per issue from 100 and floors the result at 0.
func Score(issues []domain.Issue) float64 {
	penalty := 0
	for _, is := range issues {
		penalty += SeverityWeight(is.Severity)
	}
	score := 100 - float64(penalty)
	if score < 0 {
		score = 0
	}
	return math.Round(score*10) / 10
}

func SeverityWeight(s domain.Severity) int {
	switch s {
	case domain.SeverityCritical:
		return 25
	case domain.SeverityMajor:
		return 10
	case domain.SeverityMinor:
		return 3
	default:
		return 0
	}
}

// Level bands a score. Thresholds are inclusive lower bounds.
func Level(score float64) domain.ComplianceLevel {
	switch {
	case score >= 95:
		return domain.LevelExcellent
	case score >= 85:
		return domain.LevelGood
	case score >= 70:
		return domain.LevelFair
	case score >= 50:
		return domain.LevelPoor
	default:
		return domain.LevelInvalid
	}
}
