package validator

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
)

// MaxItems bounds participants + elements + flows of one document.
const MaxItems = 5000

var (
	ErrNilDocument = errors.New("document is nil")
	ErrTooLarge    = errors.New("document too large")
)

// Validate rejects documents that cannot be analysed at all. Structural defects are
// not errors here; the compliance rules report them.
func Validate(d *parser.Document) error {
	if d == nil {
		return ErrNilDocument
	}
	n := len(d.Participants) + len(d.Elements) + len(d.Flows) + len(d.MessageFlows)
	if n > MaxItems {
		return fmt.Errorf("%w: %d items, limit %d", ErrTooLarge, n, MaxItems)
	}
	return nil
}
