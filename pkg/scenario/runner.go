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

package scenario

import (
	"context"

	"go.uber.org/zap"

	"flowsim/pkg/flowsheet"
)

// Outcome records how one scenario ended. Streams holds every stream the
// scenario created, carrying its final mass flow.
type Outcome struct {
	Scenario string
	Passed   bool
	Detail   string
	Streams  []*flowsheet.Stream
}

type Runner interface {
	Run(ctx context.Context) (passed []Outcome, failed []Outcome, err error)
}

type runner struct {
	scenarios []Scenario
	logger    *zap.SugaredLogger
	metrics   *Metrics
}

// NewRunner wires a scenario sequence to a logger and metrics. Pass
// NoopMetrics() when no meter is configured.
func NewRunner(scenarios []Scenario, logger *zap.SugaredLogger, metrics *Metrics) Runner {
	return &runner{
		scenarios: scenarios,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes each scenario in order with a fresh stream counter. Scenario
// failures are collected, not propagated; only a cancelled context aborts
// the run.
func (r *runner) Run(ctx context.Context) (passed []Outcome, failed []Outcome, err error) {
	passed = make([]Outcome, 0, len(r.scenarios))
	failed = make([]Outcome, 0)

	for _, s := range r.scenarios {
		if err := ctx.Err(); err != nil {
			return passed, failed, err
		}

		counter := &flowsheet.StreamCounter{}
		runErr := s.Run(counter)

		r.metrics.ScenarioRan(ctx)
		r.metrics.StreamsCreated(ctx, len(counter.Created()))

		outcome := Outcome{
			Scenario: s.Name,
			Streams:  counter.Created(),
		}

		if runErr != nil {
			outcome.Detail = runErr.Error()
			failed = append(failed, outcome)
			r.metrics.ScenarioFailed(ctx)
			r.logger.Infow("scenario failed", "scenario", s.Name, "detail", runErr.Error())
			continue
		}

		outcome.Passed = true
		passed = append(passed, outcome)
		r.logger.Infow("scenario passed", "scenario", s.Name)
	}

	return passed, failed, nil
}
