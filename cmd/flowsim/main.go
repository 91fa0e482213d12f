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

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bvinc/go-sqlite-lite/sqlite3"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"flowsim/pkg/data"
	"flowsim/pkg/scenario"
)

var (
	au        = aurora.NewAurora(true)
	dbPath    = flag.String("dbPath", "flowsim.db", "Path of the sqlite database for run results.")
	storeRun  = flag.Bool("storeRun", true, "Store run results in the database.")
	showTrace = flag.Bool("showTrace", true, "Show the scenario report.")
)

func main() {
	flag.Parse()

	startRunning := time.Now()
	logbuf := new(bytes.Buffer)
	logger := newLogger(logbuf)

	runner := scenario.NewRunner(scenario.Suite(), logger, scenario.NoopMetrics())

	fmt.Print("Running scenarios ... ")

	passed, failed, err := runner.Run(context.Background())
	if err != nil {
		panic(err.Error())
	}

	if *storeRun {
		storeResults(passed, failed, time.Since(startRunning))
	}

	if *showTrace {
		err = scenario.Report(passed, failed, time.Since(startRunning), logbuf.String(), os.Stdout)
		if err != nil {
			fmt.Printf("there was an error reporting the run: %s", err.Error())
		}
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}

func storeResults(passed, failed []scenario.Outcome, ranFor time.Duration) {
	conn, err := sqlite3.Open(*dbPath)
	if err != nil {
		fmt.Printf("there was an error opening the database: %s", err.Error())
		return
	}
	defer conn.Close()

	store := data.NewRunStore(conn)
	scenarioRunId, err := store.Store(passed, failed, "flowsim_cli", ranFor)
	if err != nil {
		fmt.Printf("there was an error saving data: %s", err.Error())
		return
	}

	fmt.Printf("#%d ", au.Bold(scenarioRunId))
}

func newLogger(buf io.Writer) *zap.SugaredLogger {
	sink := zapcore.AddSync(buf)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		zap.InfoLevel,
	)

	unsugaredLogger := zap.New(core)

	return unsugaredLogger.Named("flowsim").Sugar()
}
