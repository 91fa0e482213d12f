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

// MixerOutputs is the fixed output slot count of every mixer.
const MixerOutputs = 1

// Mixer combines a fixed number of input flows into one output flow by
// summation.
type Mixer struct {
	ports
}

// NewMixer creates a mixer with inputCount input slots and one output slot.
func NewMixer(inputCount int) *Mixer {
	return &Mixer{ports: ports{
		deviceType:   "Mixer",
		inputAmount:  inputCount,
		outputAmount: MixerOutputs,
	}}
}

// AddInput applies the mixer's own capacity wording.
func (m *Mixer) AddInput(s *Stream) error {
	if len(m.inputs) >= m.inputAmount {
		return &Error{Kind: CapacityExceeded, Device: m.DeviceType(), Stream: s.Name(), Message: "Too much inputs"}
	}
	m.inputs = append(m.inputs, s)
	return nil
}

// AddOutput applies the mixer's own capacity wording.
func (m *Mixer) AddOutput(s *Stream) error {
	if len(m.outputs) >= MixerOutputs {
		return &Error{Kind: CapacityExceeded, Device: m.DeviceType(), Stream: s.Name(), Message: "Too much outputs"}
	}
	m.outputs = append(m.outputs, s)
	return nil
}

// UpdateOutputs assigns the sum of the input flows, divided across the
// attached outputs, to every output stream. The device becomes calculated
// only when the update fully succeeds.
func (m *Mixer) UpdateOutputs() error {
	if err := m.checkForRecycle(); err != nil {
		return err
	}

	if len(m.outputs) == 0 {
		return &Error{Kind: EmptyOutputs, Device: m.DeviceType(), Message: "Should set outputs before update"}
	}

	sum := 0.0
	for _, in := range m.inputs {
		sum += in.MassFlow()
	}

	share := sum / float64(len(m.outputs))
	for _, out := range m.outputs {
		out.SetMassFlow(share)
	}

	m.calculated = true
	return nil
}
