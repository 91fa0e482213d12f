package flowsheet

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates flowsheet errors so that callers can branch on the
// failure programmatically instead of comparing message text.
type ErrorKind string

const (
	// CapacityExceeded: AddInput/AddOutput called on a device whose
	// respective port collection is already full.
	CapacityExceeded ErrorKind = "CapacityExceeded"

	// EmptyOutputs: Mixer.UpdateOutputs called with no output attached.
	EmptyOutputs ErrorKind = "EmptyOutputs"

	// MissingInput: Reactor.UpdateOutputs called with no input attached.
	MissingInput ErrorKind = "MissingInput"

	// OutputCountMismatch: Reactor.UpdateOutputs called with an output count
	// that differs from the configured amount.
	OutputCountMismatch ErrorKind = "OutputCountMismatch"

	// RecycleDetected: UpdateOutputs called on a device that was already
	// calculated and still has at least one output attached.
	RecycleDetected ErrorKind = "RecycleDetected"
)

// Error is the single error type raised by the flowsheet core. Device names
// the device type that raised it; Stream names the implicated stream, when
// there is one.
type Error struct {
	Kind    ErrorKind
	Device  string
	Stream  string
	Message string
}

func (e *Error) Error() string {
	if e.Stream != "" {
		return fmt.Sprintf("%s: %s: %s (stream %s)", e.Device, e.Kind, e.Message, e.Stream)
	}
	return fmt.Sprintf("%s: %s: %s", e.Device, e.Kind, e.Message)
}

// IsKind reports whether err is a flowsheet Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
