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

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactor(t *testing.T) {
	suite := spec.New("Reactor suite", spec.Report(report.Terminal{}))
	suite("single outlet", testSingleReactor)
	suite("double outlet", testDoubleReactor)
	suite("chaining", testChainedDevices)

	suite.Run(t)
}

func testSingleReactor(t *testing.T, describe spec.G, it spec.S) {
	var subject *Reactor
	var counter *StreamCounter

	it.Before(func() {
		subject = NewReactor(false)
		counter = &StreamCounter{}
	})

	describe("NewReactor()", func() {
		it("is a Device", func() {
			var _ Device = subject
		})

		it("reports its device type", func() {
			assert.Equal(t, "Reactor", subject.DeviceType())
		})
	})

	describe("capacity", func() {
		it("keeps the base wording for a second input", func() {
			require.NoError(t, subject.AddInput(counter.Next()))

			err := subject.AddInput(counter.Next())
			require.Error(t, err)
			assert.True(t, IsKind(err, CapacityExceeded))
			assert.Equal(t, "INPUT STREAM LIMIT", err.(*Error).Message)
		})

		it("keeps the base wording for a second output", func() {
			require.NoError(t, subject.AddOutput(counter.Next()))

			err := subject.AddOutput(counter.Next())
			require.Error(t, err)
			assert.True(t, IsKind(err, CapacityExceeded))
			assert.Equal(t, "OUTPUT STREAM LIMIT", err.(*Error).Message)
		})
	})

	describe("UpdateOutputs()", func() {
		var feed, product *Stream

		it.Before(func() {
			feed = counter.Next()
			product = counter.Next()
			feed.SetMassFlow(20.0)
		})

		it("passes the input flow through unchanged", func() {
			require.NoError(t, subject.AddInput(feed))
			require.NoError(t, subject.AddOutput(product))

			require.NoError(t, subject.UpdateOutputs())

			assert.InDelta(t, 20.0, product.MassFlow(), tolerance)
			assert.True(t, subject.IsCalculated())
		})

		it("requires an input even when outputs are fully attached", func() {
			require.NoError(t, subject.AddOutput(product))

			err := subject.UpdateOutputs()
			require.Error(t, err)
			assert.True(t, IsKind(err, MissingInput))
			assert.Equal(t, "No input stream", err.(*Error).Message)
			assert.False(t, subject.IsCalculated())
		})

		it("requires the exact output count", func() {
			require.NoError(t, subject.AddInput(feed))

			err := subject.UpdateOutputs()
			require.Error(t, err)
			assert.True(t, IsKind(err, OutputCountMismatch))
			assert.Equal(t, "Wrong number of outputs", err.(*Error).Message)
			assert.False(t, subject.IsCalculated())
		})

		it("checks the missing input before the output count", func() {
			err := subject.UpdateOutputs()
			require.Error(t, err)
			assert.True(t, IsKind(err, MissingInput))
		})

		it("detects a recycle on the second update", func() {
			require.NoError(t, subject.AddInput(feed))
			require.NoError(t, subject.AddOutput(product))
			require.NoError(t, subject.UpdateOutputs())

			err := subject.UpdateOutputs()
			require.Error(t, err)
			assert.True(t, IsKind(err, RecycleDetected))
			assert.Equal(t, product.Name(), err.(*Error).Stream)
		})
	})
}

func testDoubleReactor(t *testing.T, describe spec.G, it spec.S) {
	var subject *Reactor
	var counter *StreamCounter
	var feed, top, bottom *Stream

	it.Before(func() {
		subject = NewReactor(true)
		counter = &StreamCounter{}

		feed = counter.Next()
		top = counter.Next()
		bottom = counter.Next()
		feed.SetMassFlow(10.0)
	})

	describe("UpdateOutputs()", func() {
		it("splits the input evenly across both outputs", func() {
			require.NoError(t, subject.AddInput(feed))
			require.NoError(t, subject.AddOutput(top))
			require.NoError(t, subject.AddOutput(bottom))

			require.NoError(t, subject.UpdateOutputs())

			assert.InDelta(t, 5.0, top.MassFlow(), tolerance)
			assert.InDelta(t, 5.0, bottom.MassFlow(), tolerance)
		})

		it("conserves mass across the split", func() {
			require.NoError(t, subject.AddInput(feed))
			require.NoError(t, subject.AddOutput(top))
			require.NoError(t, subject.AddOutput(bottom))

			require.NoError(t, subject.UpdateOutputs())

			sum := top.MassFlow() + bottom.MassFlow()
			assert.InDelta(t, feed.MassFlow(), sum, tolerance)
		})

		it("rejects a single attached output", func() {
			require.NoError(t, subject.AddInput(feed))
			require.NoError(t, subject.AddOutput(top))

			err := subject.UpdateOutputs()
			require.Error(t, err)
			assert.True(t, IsKind(err, OutputCountMismatch))
			assert.False(t, subject.IsCalculated())
		})

		it("names the first output stream on a recycle", func() {
			require.NoError(t, subject.AddInput(feed))
			require.NoError(t, subject.AddOutput(top))
			require.NoError(t, subject.AddOutput(bottom))
			require.NoError(t, subject.UpdateOutputs())

			err := subject.UpdateOutputs()
			require.Error(t, err)
			assert.Equal(t, top.Name(), err.(*Error).Stream)
		})
	})
}

func testChainedDevices(t *testing.T, describe spec.G, it spec.S) {
	var counter *StreamCounter

	it.Before(func() {
		counter = &StreamCounter{}
	})

	describe("reactor feeding a mixer", func() {
		it("propagates the reactor's output into the mixer's sum", func() {
			reactor := NewReactor(false)
			mixer := NewMixer(2)

			feed := counter.Next()
			intermediate := counter.Next()
			makeup := counter.Next()
			product := counter.Next()

			feed.SetMassFlow(20.0)
			makeup.SetMassFlow(5.0)

			require.NoError(t, reactor.AddInput(feed))
			require.NoError(t, reactor.AddOutput(intermediate))

			require.NoError(t, mixer.AddInput(intermediate))
			require.NoError(t, mixer.AddInput(makeup))
			require.NoError(t, mixer.AddOutput(product))

			// the caller sequences the calls; there is no scheduler
			require.NoError(t, reactor.UpdateOutputs())
			require.NoError(t, mixer.UpdateOutputs())

			assert.InDelta(t, 25.0, product.MassFlow(), tolerance)
		})
	})
}
