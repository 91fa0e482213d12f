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

package data

import (
	"time"

	"github.com/bvinc/go-sqlite-lite/sqlite3"

	"flowsim/pkg/scenario"
)

// RunStore persists a scenario run: the run record, every outcome, and the
// final state of every stream each scenario created.
type RunStore interface {
	Store(
		passed []scenario.Outcome,
		failed []scenario.Outcome,
		origin string,
		ranFor time.Duration,
	) (scenarioRunId int64, err error)
}

type storer struct {
	conn   *sqlite3.Conn
	passed []scenario.Outcome
	failed []scenario.Outcome
	origin string
	ranFor time.Duration
}

func NewRunStore(conn *sqlite3.Conn) RunStore {
	return &storer{conn: conn}
}

func (s *storer) Store(passed []scenario.Outcome, failed []scenario.Outcome, origin string, ranFor time.Duration) (scenarioRunId int64, err error) {
	s.passed = passed
	s.failed = failed
	s.origin = origin
	s.ranFor = ranFor

	err = s.conn.Exec(Schema)
	if err != nil {
		return -1, err
	}

	scenarioRunId, err = s.scenarioRun()
	if err != nil {
		return scenarioRunId, err
	}

	err = s.conn.WithTx(func() error {
		return s.scenarioData(scenarioRunId)
	})
	if err != nil {
		return scenarioRunId, err
	}

	return scenarioRunId, nil
}

func (s *storer) scenarioRun() (scenarioRunId int64, err error) {
	srStmt, err := s.conn.Prepare(`insert into scenario_runs(
									   recorded
									 , origin
									 , ran_for
									 , scenarios_passed
									 , scenarios_failed)
									values (?, ?, ?, ?, ?);`)
	if err != nil {
		return -1, err
	}
	defer srStmt.Close()

	err = srStmt.Exec(
		time.Now().Format(time.RFC3339),
		s.origin,
		s.ranFor.Nanoseconds(),
		len(s.passed),
		len(s.failed),
	)
	if err != nil {
		return -1, err
	}

	lastId := s.conn.LastInsertRowID()

	return lastId, nil
}

func (s *storer) scenarioData(scenarioRunId int64) error {
	outcomeStmt, err := s.conn.Prepare(`insert into outcomes(scenario, passed, detail, scenario_run_id) values (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer outcomeStmt.Close()

	streamStmt, err := s.conn.Prepare(`insert into streams(name, mass_flow, outcome_id) values (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer streamStmt.Close()

	store := func(outcomes []scenario.Outcome) error {
		for _, o := range outcomes {
			passed := 0
			if o.Passed {
				passed = 1
			}

			err = outcomeStmt.Exec(o.Scenario, passed, o.Detail, scenarioRunId)
			if err != nil {
				return err
			}

			outcomeId := s.conn.LastInsertRowID()
			for _, stream := range o.Streams {
				err = streamStmt.Exec(stream.Name(), stream.MassFlow(), outcomeId)
				if err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := store(s.passed); err != nil {
		return err
	}
	return store(s.failed)
}
