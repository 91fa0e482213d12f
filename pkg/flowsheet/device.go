/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package flowsheet

type streamAttacher interface {
	AddInput(s *Stream) error
	AddOutput(s *Stream) error
}

type portAccessor interface {
	Inputs() []*Stream
	Outputs() []*Stream
	InputCount() int
	OutputCount() int
}

type calculable interface {
	UpdateOutputs() error
	IsCalculated() bool
	SetCalculated(calculated bool)
}

// Device is the closed capability set shared by the two device variants,
// Mixer and Reactor.
type Device interface {
	streamAttacher
	portAccessor
	calculable
	DeviceType() string
}

// ports holds the bounded input/output stream collections and the calculated
// flag shared by every device variant. An amount of 0 means unbounded; the
// variants always set a bound.
type ports struct {
	deviceType   string
	inputs       []*Stream
	outputs      []*Stream
	inputAmount  int
	outputAmount int
	calculated   bool
}

// AddInput appends s to the inputs, in attachment order. Duplicates are
// allowed; there is no identity check.
func (p *ports) AddInput(s *Stream) error {
	if p.inputAmount > 0 && len(p.inputs) >= p.inputAmount {
		return &Error{Kind: CapacityExceeded, Device: p.DeviceType(), Stream: s.Name(), Message: "INPUT STREAM LIMIT"}
	}
	p.inputs = append(p.inputs, s)
	return nil
}

// AddOutput appends s to the outputs, in attachment order.
func (p *ports) AddOutput(s *Stream) error {
	if p.outputAmount > 0 && len(p.outputs) >= p.outputAmount {
		return &Error{Kind: CapacityExceeded, Device: p.DeviceType(), Stream: s.Name(), Message: "OUTPUT STREAM LIMIT"}
	}
	p.outputs = append(p.outputs, s)
	return nil
}

// Inputs returns the attached input streams in attachment order. Callers
// must not modify the returned slice.
func (p *ports) Inputs() []*Stream {
	return p.inputs
}

// Outputs returns the attached output streams in attachment order. Callers
// must not modify the returned slice.
func (p *ports) Outputs() []*Stream {
	return p.outputs
}

func (p *ports) InputCount() int {
	return len(p.inputs)
}

func (p *ports) OutputCount() int {
	return len(p.outputs)
}

func (p *ports) IsCalculated() bool {
	return p.calculated
}

// SetCalculated forces the calculated flag. Setting it to false is the
// explicit re-arm that permits a further UpdateOutputs; nothing in the core
// resets the flag on its own.
func (p *ports) SetCalculated(calculated bool) {
	p.calculated = calculated
}

func (p *ports) DeviceType() string {
	if p.deviceType == "" {
		return "Device"
	}
	return p.deviceType
}

// checkForRecycle guards against recomputing an already-calculated device.
// It runs first in every UpdateOutputs, before any output mutation, and
// names the first output stream that trips it.
func (p *ports) checkForRecycle() error {
	for _, out := range p.outputs {
		if p.calculated {
			return &Error{
				Kind:    RecycleDetected,
				Device:  p.DeviceType(),
				Stream:  out.Name(),
				Message: "device already calculated",
			}
		}
	}
	return nil
}
