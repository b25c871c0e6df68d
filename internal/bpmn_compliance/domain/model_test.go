package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() *Graph {
	return &Graph{
		Participants: []Participant{{ID: "p1", Name: "Customer", Type: ParticipantHuman}},
		Elements: []Element{
			{ID: "s", Type: StartEvent, Participant: "p1"},
			{ID: "t", Type: UserTask, Participant: "p1"},
		},
		Flows: []Flow{{ID: "f1", Source: "s", Target: "t", Type: SequenceFlow}},
	}
}

func TestGraphClone_DoesNotAlias(t *testing.T) {
	g := sampleGraph()
	c := g.Clone()

	c.Elements[0].Name = "changed"
	c.Flows[0].Type = MessageFlow
	c.Participants[0].Name = "other"
	c.AddElement(Element{ID: "x", Type: EndEvent})

	assert.Equal(t, "", g.Elements[0].Name)
	assert.Equal(t, SequenceFlow, g.Flows[0].Type)
	assert.Equal(t, "Customer", g.Participants[0].Name)
	assert.Len(t, g.Elements, 2)
}

func TestGraphClone_Nil(t *testing.T) {
	var g *Graph
	c := g.Clone()
	require.NotNil(t, c)
	assert.Empty(t, c.Elements)
}

func TestGraphLookups(t *testing.T) {
	g := sampleGraph()

	require.NotNil(t, g.Element("t"))
	assert.Nil(t, g.Element("missing"))
	require.NotNil(t, g.Flow("f1"))
	require.NotNil(t, g.Participant("p1"))
	assert.True(t, g.HasID("p1"))
	assert.True(t, g.HasID("f1"))
	assert.False(t, g.HasID("nope"))
	assert.Len(t, g.PoolElements("p1"), 2)
}

func TestElementTypeClassification(t *testing.T) {
	assert.True(t, UserTask.IsActivity())
	assert.False(t, StartEvent.IsActivity())
	assert.True(t, ParallelGateway.IsGateway())
	assert.False(t, ParallelGateway.IsBranching())
	assert.True(t, IntermediateMessageCatchEvent.IsCatchEvent())
	assert.True(t, IntermediateThrowEvent.IsThrowEvent())
	assert.False(t, ElementType("task").Known())
	assert.True(t, SeverityCritical.Rank() < SeverityWarning.Rank())
}
