package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
)

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNilDocument)
	assert.NoError(t, Validate(&parser.Document{}))

	big := &parser.Document{Elements: make([]parser.DElement, MaxItems+1)}
	assert.ErrorIs(t, Validate(big), ErrTooLarge)
}
