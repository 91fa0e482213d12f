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

// Package scenario drives the flowsheet core through a fixed sequence of
// scenarios and collects pass/fail outcomes. The core raises errors and never
// recovers on its own; this driver is the caller that decides what to do
// with them.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"flowsim/pkg/flowsheet"
)

// Tolerance is the absolute error allowed when comparing mass flows.
const Tolerance = 0.01

// Scenario is one self-contained exercise of the flowsheet core. Run
// receives a fresh stream counter and returns nil when the expected behavior
// was observed.
type Scenario struct {
	Name string
	Run  func(sc *flowsheet.StreamCounter) error
}

// Suite returns the fixed scenario sequence, in execution order.
func Suite() []Scenario {
	return []Scenario{
		{Name: "mixer sums two inputs into one output", Run: mixerSumsInputs},
		{Name: "mixer rejects too many outputs", Run: mixerRejectsExtraOutput},
		{Name: "mixer rejects too many inputs", Run: mixerRejectsExtraInput},
		{Name: "mixer requires an output before update", Run: mixerRequiresOutput},
		{Name: "double reactor conserves mass", Run: doubleReactorConservesMass},
		{Name: "reactor rejects a second output stream", Run: reactorRejectsExtraOutput},
		{Name: "reactor rejects a second input stream", Run: reactorRejectsExtraInput},
		{Name: "reactor requires an input before update", Run: reactorRequiresInput},
		{Name: "reactor requires the exact output count", Run: reactorRequiresExactOutputs},
		{Name: "reactor output feeds mixer input", Run: reactorFeedsMixer},
		{Name: "recalculating a device is a recycle", Run: recalculationIsRecycle},
		{Name: "re-armed device recalculates", Run: reArmedDeviceRecalculates},
	}
}

func mixerSumsInputs(sc *flowsheet.StreamCounter) error {
	mixer := flowsheet.NewMixer(2)

	s1, s2, s3 := sc.Next(), sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)
	s2.SetMassFlow(5.0)

	if err := attach(mixer, []*flowsheet.Stream{s1, s2}, []*flowsheet.Stream{s3}); err != nil {
		return err
	}
	if err := mixer.UpdateOutputs(); err != nil {
		return err
	}

	return expectFlow(s3, 15.0)
}

func mixerRejectsExtraOutput(sc *flowsheet.StreamCounter) error {
	mixer := flowsheet.NewMixer(2)

	s1, s2, s3, s4 := sc.Next(), sc.Next(), sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)
	s2.SetMassFlow(5.0)

	if err := attach(mixer, []*flowsheet.Stream{s1, s2}, []*flowsheet.Stream{s3}); err != nil {
		return err
	}

	return expectKind(mixer.AddOutput(s4), flowsheet.CapacityExceeded, "Too much outputs")
}

func mixerRejectsExtraInput(sc *flowsheet.StreamCounter) error {
	mixer := flowsheet.NewMixer(2)

	s1, s2, s3, s4 := sc.Next(), sc.Next(), sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)
	s2.SetMassFlow(5.0)

	if err := attach(mixer, []*flowsheet.Stream{s1, s2}, []*flowsheet.Stream{s3}); err != nil {
		return err
	}

	return expectKind(mixer.AddInput(s4), flowsheet.CapacityExceeded, "Too much inputs")
}

func mixerRequiresOutput(sc *flowsheet.StreamCounter) error {
	mixer := flowsheet.NewMixer(2)

	s1, s2 := sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)
	s2.SetMassFlow(5.0)

	if err := attach(mixer, []*flowsheet.Stream{s1, s2}, nil); err != nil {
		return err
	}

	return expectKind(mixer.UpdateOutputs(), flowsheet.EmptyOutputs, "Should set outputs before update")
}

func doubleReactorConservesMass(sc *flowsheet.StreamCounter) error {
	reactor := flowsheet.NewReactor(true)

	s1, s2, s3 := sc.Next(), sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)

	if err := attach(reactor, []*flowsheet.Stream{s1}, []*flowsheet.Stream{s2, s3}); err != nil {
		return err
	}
	if err := reactor.UpdateOutputs(); err != nil {
		return err
	}

	sum := s2.MassFlow() + s3.MassFlow()
	if math.Abs(sum-s1.MassFlow()) >= Tolerance {
		return fmt.Errorf("outputs sum to %f, input is %f", sum, s1.MassFlow())
	}
	return expectFlow(s2, 5.0)
}

func reactorRejectsExtraOutput(sc *flowsheet.StreamCounter) error {
	reactor := flowsheet.NewReactor(false)

	s1, s2, s3 := sc.Next(), sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)

	if err := attach(reactor, []*flowsheet.Stream{s1}, []*flowsheet.Stream{s2}); err != nil {
		return err
	}

	return expectKind(reactor.AddOutput(s3), flowsheet.CapacityExceeded, "OUTPUT STREAM LIMIT")
}

func reactorRejectsExtraInput(sc *flowsheet.StreamCounter) error {
	reactor := flowsheet.NewReactor(false)

	s1, s2, s3 := sc.Next(), sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)
	s2.SetMassFlow(5.0)

	if err := reactor.AddInput(s1); err != nil {
		return err
	}

	return expectKind(reactor.AddInput(s3), flowsheet.CapacityExceeded, "INPUT STREAM LIMIT")
}

func reactorRequiresInput(sc *flowsheet.StreamCounter) error {
	reactor := flowsheet.NewReactor(false)

	if err := reactor.AddOutput(sc.Next()); err != nil {
		return err
	}

	return expectKind(reactor.UpdateOutputs(), flowsheet.MissingInput, "No input stream")
}

func reactorRequiresExactOutputs(sc *flowsheet.StreamCounter) error {
	reactor := flowsheet.NewReactor(true)

	s1, s2 := sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)

	if err := attach(reactor, []*flowsheet.Stream{s1}, []*flowsheet.Stream{s2}); err != nil {
		return err
	}

	return expectKind(reactor.UpdateOutputs(), flowsheet.OutputCountMismatch, "Wrong number of outputs")
}

func reactorFeedsMixer(sc *flowsheet.StreamCounter) error {
	reactor := flowsheet.NewReactor(false)
	mixer := flowsheet.NewMixer(2)

	feed, intermediate, makeup, product := sc.Next(), sc.Next(), sc.Next(), sc.Next()
	feed.SetMassFlow(20.0)
	makeup.SetMassFlow(5.0)

	if err := attach(reactor, []*flowsheet.Stream{feed}, []*flowsheet.Stream{intermediate}); err != nil {
		return err
	}
	if err := attach(mixer, []*flowsheet.Stream{intermediate, makeup}, []*flowsheet.Stream{product}); err != nil {
		return err
	}

	// upstream before downstream; the caller owns the ordering
	if err := reactor.UpdateOutputs(); err != nil {
		return err
	}
	if err := mixer.UpdateOutputs(); err != nil {
		return err
	}

	return expectFlow(product, 25.0)
}

func recalculationIsRecycle(sc *flowsheet.StreamCounter) error {
	reactor := flowsheet.NewReactor(false)

	s1, s2 := sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)

	if err := attach(reactor, []*flowsheet.Stream{s1}, []*flowsheet.Stream{s2}); err != nil {
		return err
	}
	if err := reactor.UpdateOutputs(); err != nil {
		return err
	}

	err := reactor.UpdateOutputs()
	if kindErr := expectKind(err, flowsheet.RecycleDetected, ""); kindErr != nil {
		return kindErr
	}

	var fe *flowsheet.Error
	errors.As(err, &fe)
	if fe.Stream != s2.Name() {
		return fmt.Errorf("recycle named stream %q, want %q", fe.Stream, s2.Name())
	}
	return nil
}

func reArmedDeviceRecalculates(sc *flowsheet.StreamCounter) error {
	mixer := flowsheet.NewMixer(2)

	s1, s2, s3 := sc.Next(), sc.Next(), sc.Next()
	s1.SetMassFlow(10.0)
	s2.SetMassFlow(5.0)

	if err := attach(mixer, []*flowsheet.Stream{s1, s2}, []*flowsheet.Stream{s3}); err != nil {
		return err
	}
	if err := mixer.UpdateOutputs(); err != nil {
		return err
	}

	mixer.SetCalculated(false)
	s1.SetMassFlow(1.0)
	s2.SetMassFlow(2.0)

	if err := mixer.UpdateOutputs(); err != nil {
		return err
	}
	return expectFlow(s3, 3.0)
}

func attach(d flowsheet.Device, inputs, outputs []*flowsheet.Stream) error {
	for _, in := range inputs {
		if err := d.AddInput(in); err != nil {
			return err
		}
	}
	for _, out := range outputs {
		if err := d.AddOutput(out); err != nil {
			return err
		}
	}
	return nil
}

func expectFlow(s *flowsheet.Stream, want float64) error {
	if math.Abs(s.MassFlow()-want) >= Tolerance {
		return fmt.Errorf("stream %s carries %f, want %f", s.Name(), s.MassFlow(), want)
	}
	return nil
}

func expectKind(err error, kind flowsheet.ErrorKind, message string) error {
	if err == nil {
		return fmt.Errorf("expected %s, got no error", kind)
	}

	var fe *flowsheet.Error
	if !errors.As(err, &fe) {
		return fmt.Errorf("expected %s, got: %w", kind, err)
	}
	if fe.Kind != kind {
		return fmt.Errorf("expected %s, got %s: %w", kind, fe.Kind, err)
	}
	if message != "" && fe.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, fe.Message)
	}
	return nil
}
