// Package fixtures holds small process graphs shared by tests across packages.
package fixtures

import "github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"

// MinimalValid is a single pool running start -> task -> end.
func MinimalValid() *domain.Graph {
	return &domain.Graph{
		Participants: []domain.Participant{{ID: "p1"}},
		Elements: []domain.Element{
			{ID: "s", Type: domain.StartEvent, Participant: "p1"},
			{ID: "t", Type: domain.UserTask, Participant: "p1"},
			{ID: "e", Type: domain.EndEvent, Participant: "p1"},
		},
		Flows: []domain.Flow{
			{ID: "f1", Source: "s", Target: "t", Type: domain.SequenceFlow},
			{ID: "f2", Source: "t", Target: "e", Type: domain.SequenceFlow},
		},
	}
}

// MissingStart has one task and one end event and no flows at all.
func MissingStart() *domain.Graph {
	return &domain.Graph{
		Participants: []domain.Participant{{ID: "p1", Name: "Clerk", Type: domain.ParticipantHuman}},
		Elements: []domain.Element{
			{ID: "t", Name: "Review order", Type: domain.UserTask, Participant: "p1", TaskType: "user"},
			{ID: "e", Name: "Order reviewed", Type: domain.EndEvent, Participant: "p1"},
		},
		Flows: []domain.Flow{},
	}
}

// CrossPoolSequence is two complete-looking pools joined only by a sequence flow.
func CrossPoolSequence() *domain.Graph {
	return &domain.Graph{
		Participants: []domain.Participant{
			{ID: "p1", Name: "Customer", Type: domain.ParticipantHuman},
			{ID: "p2", Name: "Shop", Type: domain.ParticipantSystem},
		},
		Elements: []domain.Element{
			{ID: "s1", Name: "Need item", Type: domain.StartEvent, Participant: "p1"},
			{ID: "t1", Name: "Place order", Type: domain.UserTask, Participant: "p1", TaskType: "user"},
			{ID: "e1", Name: "Order placed", Type: domain.EndEvent, Participant: "p1"},
			{ID: "t2", Name: "Process order", Type: domain.ServiceTask, Participant: "p2", TaskType: "service"},
			{ID: "e2", Name: "Order processed", Type: domain.EndEvent, Participant: "p2"},
		},
		Flows: []domain.Flow{
			{ID: "f1", Source: "s1", Target: "t1", Type: domain.SequenceFlow},
			{ID: "f2", Source: "t1", Target: "e1", Type: domain.SequenceFlow},
			{ID: "x1", Source: "t1", Target: "t2", Type: domain.SequenceFlow},
			{ID: "f3", Source: "t2", Target: "e2", Type: domain.SequenceFlow},
		},
	}
}

// OrderApproval is a named, fully compliant two-pool process with a gateway and a
// message exchange.
func OrderApproval() *domain.Graph {
	return &domain.Graph{
		ProcessName: "Order approval",
		Participants: []domain.Participant{
			{ID: "customer", Name: "Customer", Type: domain.ParticipantHuman},
			{ID: "shop", Name: "Shop", Type: domain.ParticipantSystem},
		},
		Elements: []domain.Element{
			{ID: "start_customer", Name: "Order needed", Type: domain.StartEvent, Participant: "customer"},
			{ID: "send_order", Name: "Send order", Type: domain.UserTask, Participant: "customer", TaskType: "user"},
			{ID: "end_customer", Name: "Order sent", Type: domain.EndEvent, Participant: "customer"},
			{ID: "receive_order", Name: "Order received", Type: domain.IntermediateMessageCatchEvent, EventType: "message", Participant: "shop"},
			{ID: "check_stock", Name: "Check stock", Type: domain.ServiceTask, Participant: "shop", TaskType: "service"},
			{ID: "in_stock", Name: "In stock?", Type: domain.ExclusiveGateway, Participant: "shop"},
			{ID: "ship", Name: "Ship goods", Type: domain.ManualTask, Participant: "shop", TaskType: "manual"},
			{ID: "reject", Name: "Reject order", Type: domain.ServiceTask, Participant: "shop", TaskType: "service"},
			{ID: "end_shop", Name: "Order handled", Type: domain.EndEvent, Participant: "shop"},
		},
		Flows: []domain.Flow{
			{ID: "c1", Source: "start_customer", Target: "send_order", Type: domain.SequenceFlow},
			{ID: "c2", Source: "send_order", Target: "end_customer", Type: domain.SequenceFlow},
			{ID: "m1", Source: "send_order", Target: "receive_order", Type: domain.MessageFlow, Name: "Order"},
			{ID: "s1", Source: "receive_order", Target: "check_stock", Type: domain.SequenceFlow},
			{ID: "s2", Source: "check_stock", Target: "in_stock", Type: domain.SequenceFlow},
			{ID: "s3", Source: "in_stock", Target: "ship", Type: domain.SequenceFlow, Condition: "yes"},
			{ID: "s4", Source: "in_stock", Target: "reject", Type: domain.SequenceFlow, Condition: "no"},
			{ID: "s5", Source: "ship", Target: "end_shop", Type: domain.SequenceFlow},
			{ID: "s6", Source: "reject", Target: "end_shop", Type: domain.SequenceFlow},
		},
	}
}
