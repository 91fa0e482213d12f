package flowsheet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	spec.Run(t, "Error", testErrors, spec.Report(report.Terminal{}))
}

func testErrors(t *testing.T, describe spec.G, it spec.S) {
	var subject *Error

	it.Before(func() {
		subject = &Error{
			Kind:    RecycleDetected,
			Device:  "Reactor",
			Stream:  "s2",
			Message: "device already calculated",
		}
	})

	describe("Error()", func() {
		it("includes the device, kind, message and stream", func() {
			assert.Equal(t, "Reactor: RecycleDetected: device already calculated (stream s2)", subject.Error())
		})

		it("omits the stream clause when no stream is implicated", func() {
			subject.Stream = ""
			assert.Equal(t, "Reactor: RecycleDetected: device already calculated", subject.Error())
		})
	})

	describe("IsKind()", func() {
		it("matches the kind", func() {
			assert.True(t, IsKind(subject, RecycleDetected))
			assert.False(t, IsKind(subject, CapacityExceeded))
		})

		it("unwraps wrapped errors", func() {
			wrapped := fmt.Errorf("running scenario: %w", subject)
			assert.True(t, IsKind(wrapped, RecycleDetected))
		})

		it("rejects non-flowsheet errors", func() {
			assert.False(t, IsKind(errors.New("boom"), RecycleDetected))
		})
	})
}
