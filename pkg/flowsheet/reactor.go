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

// Reactor splits one input flow evenly across one or two output flows. It
// keeps the base capacity wording on AddInput/AddOutput.
type Reactor struct {
	ports
}

// NewReactor creates a reactor with one input slot and, when double is set,
// two output slots instead of one.
func NewReactor(double bool) *Reactor {
	outputs := 1
	if double {
		outputs = 2
	}
	return &Reactor{ports: ports{
		deviceType:   "Reactor",
		inputAmount:  1,
		outputAmount: outputs,
	}}
}

// UpdateOutputs splits the input mass flow evenly across the outputs. The
// output count must match the configured amount exactly. The device becomes
// calculated only when the update fully succeeds.
func (r *Reactor) UpdateOutputs() error {
	if err := r.checkForRecycle(); err != nil {
		return err
	}

	if len(r.inputs) == 0 {
		return &Error{Kind: MissingInput, Device: r.DeviceType(), Message: "No input stream"}
	}
	if len(r.outputs) != r.outputAmount {
		return &Error{Kind: OutputCountMismatch, Device: r.DeviceType(), Message: "Wrong number of outputs"}
	}

	inputMass := r.inputs[0].MassFlow()
	for _, out := range r.outputs {
		out.SetMassFlow(inputMass / float64(r.outputAmount))
	}

	r.calculated = true
	return nil
}
