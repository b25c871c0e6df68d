package parser

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "process_name": "Test Multi-Pool Process",
  "participants": [
    {"id": "pool1", "name": "Pool 1", "type": "human"},
    {"id": "pool2", "name": "Pool 2", "type": "system"}
  ],
  "elements": [
    {"id": "start1", "name": "Start 1", "type": "startEvent", "participant": "pool1"},
    {"id": "task1", "name": "Task 1", "type": "userTask", "participant": "pool1", "task_type": "user"},
    {"id": "task2", "name": "Task 2", "type": "serviceTask", "participant": "pool2", "task_type": "service"}
  ],
  "flows": [
    {"id": "seq1", "source": "start1", "target": "task1"},
    {"id": "msg1", "source": "task1", "target": "task2", "type": "message"}
  ],
  "messageFlows": [
    {"id": "msg1", "source": "task1", "target": "task2", "type": "message"},
    {"id": "msg2", "source": "task2", "target": "task1"}
  ]
}`

const sampleBPMN = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" id="Definitions_1">
  <bpmn:collaboration id="Collab">
    <bpmn:participant id="customer" name="Customer" processRef="Process_customer"/>
    <bpmn:participant id="shop" name="Shop" processRef="Process_shop"/>
    <bpmn:messageFlow id="m1" name="Order" sourceRef="send" targetRef="receive"/>
    <bpmn:messageFlow id="m2" sourceRef="shop" targetRef="send"/>
  </bpmn:collaboration>
  <bpmn:process id="Process_customer" name="Ordering">
    <bpmn:startEvent id="start" name="Need"/>
    <bpmn:userTask id="send" name="Send order"/>
    <bpmn:endEvent id="end" name="Done"/>
    <bpmn:sequenceFlow id="f1" sourceRef="start" targetRef="send"/>
    <bpmn:sequenceFlow id="f2" sourceRef="send" targetRef="end"/>
  </bpmn:process>
  <bpmn:process id="Process_shop">
    <bpmn:laneSet id="lanes"/>
    <bpmn:intermediateCatchEvent id="receive" name="Order in">
      <bpmn:messageEventDefinition/>
    </bpmn:intermediateCatchEvent>
    <bpmn:exclusiveGateway id="gw" name="Ok?"/>
    <bpmn:serviceTask id="ship" name="Ship"/>
    <bpmn:sequenceFlow id="f3" sourceRef="receive" targetRef="gw"/>
    <bpmn:sequenceFlow id="f4" sourceRef="gw" targetRef="ship">
      <bpmn:conditionExpression xsi:type="bpmn:tFormalExpression"> approved </bpmn:conditionExpression>
    </bpmn:sequenceFlow>
  </bpmn:process>
</bpmn:definitions>`

func TestParseJSONBytes(t *testing.T) {
	d, err := ParseJSONBytes([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Test Multi-Pool Process", d.ProcessName)
	assert.Len(t, d.Participants, 2)
	assert.Equal(t, "pool1", d.Elements[1].Participant)

	flows := d.NormalizedFlows()
	require.Len(t, flows, 3)
	assert.Equal(t, "sequence", flows[0].Type)
	assert.Equal(t, "msg1", flows[1].ID)
	assert.Equal(t, "msg2", flows[2].ID)
	assert.Equal(t, "message", flows[2].Type)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseJSONBytes([]byte(`{"elements": [`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, FormatJSON, pe.Format)

	_, err = ParseYAMLBytes([]byte("elements: [a, b"))
	assert.True(t, errors.Is(err, ErrParse))

	_, err = ParseBPMNBytes([]byte("<definitions><process>"))
	assert.True(t, errors.Is(err, ErrParse))

	_, err = Parse(Format("pdf"), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatJSON, "JSON": FormatJSON, ".yml": FormatYAML, "bpmn": FormatXML, "xml": FormatXML}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	f, err := FormatFromPath("/tmp/order.bpmn")
	require.NoError(t, err)
	assert.Equal(t, FormatXML, f)
	assert.Equal(t, ".bpmn", f.Ext())

	_, err = FormatFromPath("/tmp/order")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestYAMLRoundTrip(t *testing.T) {
	d, err := ParseJSONBytes([]byte(sampleJSON))
	require.NoError(t, err)

	b, err := Marshal(FormatYAML, d)
	require.NoError(t, err)
	back, err := Parse(FormatYAML, b)
	require.NoError(t, err)
	assert.Equal(t, d.Elements, back.Elements)
	assert.Equal(t, d.NormalizedFlows(), back.NormalizedFlows())
}

func TestParseBPMNBytes(t *testing.T) {
	d, err := ParseBPMNBytes([]byte(sampleBPMN))
	require.NoError(t, err)

	assert.Equal(t, "Ordering", d.ProcessName)
	require.Len(t, d.Participants, 2)
	assert.Equal(t, "Process_shop", d.Participants[1].ProcessRef)
	assert.Equal(t, []string{"Process_customer", "Process_shop"}, d.Processes)

	require.Len(t, d.Elements, 6)
	byID := map[string]DElement{}
	for _, e := range d.Elements {
		byID[e.ID] = e
	}
	assert.Equal(t, "customer", byID["send"].Participant)
	assert.Equal(t, "user", byID["send"].TaskType)
	assert.Equal(t, "intermediateMessageCatchEvent", byID["receive"].Type)
	assert.Equal(t, "message", byID["receive"].EventType)
	assert.Equal(t, "shop", byID["ship"].Participant)
	assert.Equal(t, "service", byID["ship"].TaskType)
	_, lane := byID["lanes"]
	assert.False(t, lane)

	flows := map[string]DFlow{}
	for _, f := range d.Flows {
		flows[f.ID] = f
	}
	require.Len(t, flows, 6)
	assert.Equal(t, "approved", flows["f4"].Condition)
	assert.Equal(t, "message", flows["m1"].Type)
	assert.Equal(t, "Order", flows["m1"].Name)
	assert.Equal(t, "external", flows["m2"].Source)
}

func TestParseBPMN_WithoutCollaboration(t *testing.T) {
	single := `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P"><startEvent id="s"/><task id="t"/><sequenceFlow id="f" sourceRef="s" targetRef="t"/></process>
</definitions>`
	d, err := ParseBPMNString(single)
	require.NoError(t, err)
	assert.Empty(t, d.Participants)
	assert.Equal(t, "", d.Elements[0].Participant)
	assert.Equal(t, "task", d.Elements[1].Type)

	multi := `<definitions><process id="A"><userTask id="a"/></process><process id="B"><userTask id="b"/></process></definitions>`
	d, err = ParseBPMNString(multi)
	require.NoError(t, err)
	require.Len(t, d.Participants, 2)
	assert.Equal(t, "B", d.Elements[1].Participant)
}

func TestBPMNRoundTrip(t *testing.T) {
	d, err := ParseBPMNBytes([]byte(sampleBPMN))
	require.NoError(t, err)

	out, err := MarshalBPMN(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"`)
	assert.Contains(t, string(out), `<messageEventDefinition></messageEventDefinition>`)

	back, err := ParseBPMNBytes(out)
	require.NoError(t, err)
	assert.ElementsMatch(t, d.Elements, back.Elements)
	assert.ElementsMatch(t, d.Flows, back.Flows)
	assert.Equal(t, d.Participants, back.Participants)
}

func TestMarshalBPMN_UnassignedAndImplicit(t *testing.T) {
	d := &Document{
		Participants: []DParticipant{{ID: "p1", Name: "Clerk"}},
		Elements: []DElement{
			{ID: "t", Type: "userTask", Participant: "p1"},
			{ID: "loose", Type: "manualTask"},
		},
		Flows: []DFlow{{ID: "f", Source: "loose", Target: "t"}},
	}
	out, err := MarshalBPMN(d)
	require.NoError(t, err)
	back, err := ParseBPMNBytes(out)
	require.NoError(t, err)
	require.Len(t, back.Elements, 2)
	assert.Equal(t, "p1", back.Elements[0].Participant)
	assert.Equal(t, "", back.Elements[1].Participant)
	assert.Equal(t, "Process_p1", back.Participants[0].ProcessRef)

	implicit := &Document{
		Elements: []DElement{{ID: "a", Type: "userTask"}, {ID: "b", Type: "userTask"}},
		Flows:    []DFlow{{ID: "m", Source: "a", Target: "b", Type: "message"}},
	}
	out, err = MarshalBPMN(implicit)
	require.NoError(t, err)
	back, err = ParseBPMNBytes(out)
	require.NoError(t, err)
	assert.Empty(t, back.Participants)
	require.Len(t, back.Flows, 1)
	assert.Equal(t, "message", back.Flows[0].Type)
}
