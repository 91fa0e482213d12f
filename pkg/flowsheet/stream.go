package flowsheet

import "fmt"

// Stream carries a single scalar mass flow between two devices. A stream is
// shared by reference: the producing device writes it and the consuming
// device reads it, neither owns it exclusively.
type Stream struct {
	name     string
	massFlow float64
}

// NewStream creates a stream named "s<counter>" with zero mass flow. The
// counter value is supplied by the caller; see StreamCounter.
func NewStream(counter int) *Stream {
	return &Stream{name: fmt.Sprintf("s%d", counter)}
}

func (s *Stream) Name() string {
	return s.name
}

func (s *Stream) SetName(name string) {
	s.name = name
}

func (s *Stream) MassFlow() float64 {
	return s.massFlow
}

// SetMassFlow overwrites the mass flow unconditionally. Values are not
// validated; the caller is responsible for keeping them meaningful.
func (s *Stream) SetMassFlow(massFlow float64) {
	s.massFlow = massFlow
}

// StreamCounter hands out sequentially named streams. It replaces the
// process-wide naming counter of older flowsheet tools: each driver owns its
// own counter and passes it down explicitly.
type StreamCounter struct {
	count   int
	created []*Stream
}

// Next creates the next stream in the sequence, starting from "s1".
func (sc *StreamCounter) Next() *Stream {
	sc.count++
	s := NewStream(sc.count)
	sc.created = append(sc.created, s)
	return s
}

// Created returns every stream this counter has handed out, in creation
// order.
func (sc *StreamCounter) Created() []*Stream {
	return sc.created
}
