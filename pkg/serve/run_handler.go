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

package serve

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bvinc/go-sqlite-lite/sqlite3"
	"go.uber.org/zap"

	"flowsim/pkg/data"
	"flowsim/pkg/scenario"
)

type outcomeLine struct {
	Scenario string `json:"scenario"`
	Passed   bool   `json:"passed"`
	Detail   string `json:"detail"`
}

type streamLine struct {
	Scenario string  `json:"scenario"`
	Name     string  `json:"name"`
	MassFlow float64 `json:"mass_flow"`
}

type runResponse struct {
	ScenarioRunId int64         `json:"scenario_run_id"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	Outcomes      []outcomeLine `json:"outcomes"`
	Streams       []streamLine  `json:"streams"`
}

// NewRunHandler returns a handler that runs the scenario suite, stores the
// run in the database at dbPath, and answers with the stored outcomes.
func NewRunHandler(dbPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		startedAt := time.Now()

		runner := scenario.NewRunner(scenario.Suite(), zap.NewNop().Sugar(), scenario.NoopMetrics())
		passed, failed, err := runner.Run(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		conn, err := sqlite3.Open(dbPath)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer conn.Close()

		store := data.NewRunStore(conn)
		scenarioRunId, err := store.Store(passed, failed, "flowsim_web", time.Since(startedAt))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := runResponse{
			ScenarioRunId: scenarioRunId,
			Passed:        len(passed),
			Failed:        len(failed),
			Outcomes:      make([]outcomeLine, 0, len(passed)+len(failed)),
			Streams:       make([]streamLine, 0),
		}

		outcomeStmt, err := conn.Prepare(data.OutcomesQuery, scenarioRunId)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer outcomeStmt.Close()

		var scenarioName, detail string
		var passedFlag int

		for {
			hasRow, err := outcomeStmt.Step()
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !hasRow {
				break
			}

			err = outcomeStmt.Scan(&scenarioName, &passedFlag, &detail)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			resp.Outcomes = append(resp.Outcomes, outcomeLine{
				Scenario: scenarioName,
				Passed:   passedFlag == 1,
				Detail:   detail,
			})
		}

		streamStmt, err := conn.Prepare(data.StreamStatesQuery, scenarioRunId)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer streamStmt.Close()

		var streamName string
		var massFlow float64

		for {
			hasRow, err := streamStmt.Step()
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !hasRow {
				break
			}

			err = streamStmt.Scan(&scenarioName, &streamName, &massFlow)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			resp.Streams = append(resp.Streams, streamLine{
				Scenario: scenarioName,
				Name:     streamName,
				MassFlow: massFlow,
			})
		}

		err = json.NewEncoder(w).Encode(resp)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
}
