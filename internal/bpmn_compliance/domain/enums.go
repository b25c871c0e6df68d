package domain

type ElementType string

const (
	StartEvent                    ElementType = "startEvent"
	EndEvent                      ElementType = "endEvent"
	IntermediateCatchEvent        ElementType = "intermediateCatchEvent"
	IntermediateMessageCatchEvent ElementType = "intermediateMessageCatchEvent"
	IntermediateThrowEvent        ElementType = "intermediateThrowEvent"
	IntermediateMessageThrowEvent ElementType = "intermediateMessageThrowEvent"
	UserTask                      ElementType = "userTask"
	ServiceTask                   ElementType = "serviceTask"
	ManualTask                    ElementType = "manualTask"
	ExclusiveGateway              ElementType = "exclusiveGateway"
	ParallelGateway               ElementType = "parallelGateway"
	InclusiveGateway              ElementType = "inclusiveGateway"
)

var knownElementTypes = map[ElementType]bool{
	StartEvent: true, EndEvent: true,
	IntermediateCatchEvent: true, IntermediateMessageCatchEvent: true,
	IntermediateThrowEvent: true, IntermediateMessageThrowEvent: true,
	UserTask: true, ServiceTask: true, ManualTask: true,
	ExclusiveGateway: true, ParallelGateway: true, InclusiveGateway: true,
}

func (t ElementType) Known() bool { return knownElementTypes[t] }

func (t ElementType) IsActivity() bool {
	return t == UserTask || t == ServiceTask || t == ManualTask
}

func (t ElementType) IsGateway() bool {
	return t == ExclusiveGateway || t == ParallelGateway || t == InclusiveGateway
}

// IsBranching reports whether outgoing paths of the gateway carry conditions.
func (t ElementType) IsBranching() bool {
	return t == ExclusiveGateway || t == InclusiveGateway
}

func (t ElementType) IsCatchEvent() bool {
	return t == IntermediateCatchEvent || t == IntermediateMessageCatchEvent
}

func (t ElementType) IsThrowEvent() bool {
	return t == IntermediateThrowEvent || t == IntermediateMessageThrowEvent
}

type FlowType string

const (
	SequenceFlow FlowType = "sequence"
	MessageFlow  FlowType = "message"
)

func (t FlowType) Known() bool { return t == SequenceFlow || t == MessageFlow }

type ParticipantType string

const (
	ParticipantHuman  ParticipantType = "human"
	ParticipantSystem ParticipantType = "system"
)

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityMajor    Severity = "MAJOR"
	SeverityMinor    Severity = "MINOR"
	SeverityWarning  Severity = "WARNING"
)

// Rank orders severities from most (0) to least severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityMajor:
		return 1
	case SeverityMinor:
		return 2
	default:
		return 3
	}
}

type ComplianceLevel string

const (
	LevelExcellent ComplianceLevel = "EXCELLENT"
	LevelGood      ComplianceLevel = "GOOD"
	LevelFair      ComplianceLevel = "FAIR"
	LevelPoor      ComplianceLevel = "POOR"
	LevelInvalid   ComplianceLevel = "INVALID"
)

// ExternalID is the only flow endpoint allowed to have no matching element.
// It stands for an actor outside the diagram.
const ExternalID = "external"
