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
)

func TestStream(t *testing.T) {
	suite := spec.New("Stream suite", spec.Report(report.Terminal{}))
	suite("Stream", testStream)
	suite("StreamCounter", testStreamCounter)

	suite.Run(t)
}

func testStream(t *testing.T, describe spec.G, it spec.S) {
	var subject *Stream

	it.Before(func() {
		subject = NewStream(7)
		assert.NotNil(t, subject)
	})

	describe("NewStream()", func() {
		it("names the stream from the counter value", func() {
			assert.Equal(t, "s7", subject.Name())
		})

		it("starts with zero mass flow", func() {
			assert.Equal(t, 0.0, subject.MassFlow())
		})
	})

	describe("SetMassFlow()", func() {
		it("overwrites the mass flow", func() {
			subject.SetMassFlow(10.0)
			assert.Equal(t, 10.0, subject.MassFlow())

			subject.SetMassFlow(5.0)
			assert.Equal(t, 5.0, subject.MassFlow())
		})

		it("accepts negative values without validation", func() {
			subject.SetMassFlow(-1.5)
			assert.Equal(t, -1.5, subject.MassFlow())
		})
	})

	describe("SetName()", func() {
		it("renames the stream", func() {
			subject.SetName("feed")
			assert.Equal(t, "feed", subject.Name())
		})
	})
}

func testStreamCounter(t *testing.T, describe spec.G, it spec.S) {
	var subject *StreamCounter

	it.Before(func() {
		subject = &StreamCounter{}
	})

	describe("Next()", func() {
		it("hands out sequential names starting at s1", func() {
			assert.Equal(t, "s1", subject.Next().Name())
			assert.Equal(t, "s2", subject.Next().Name())
			assert.Equal(t, "s3", subject.Next().Name())
		})
	})

	describe("Created()", func() {
		it("remembers every stream in creation order", func() {
			first := subject.Next()
			second := subject.Next()

			created := subject.Created()
			assert.Len(t, created, 2)
			assert.Same(t, first, created[0])
			assert.Same(t, second, created[1])
		})

		it("is empty for a fresh counter", func() {
			assert.Empty(t, subject.Created())
		})
	})
}
