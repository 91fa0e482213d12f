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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"flowsim/pkg/flowsheet"
)

// Report writes a human-readable account of a run: a summary line, one table
// of passed scenarios, one of failed scenarios, and finally the captured log
// output.
func Report(passed, failed []Outcome, ranFor time.Duration, logOutput string, writer io.Writer) error {
	au := aurora.NewAurora(true)
	printer := message.NewPrinter(language.AmericanEnglish)

	_, err := fmt.Fprintf(writer,
		"%5s      %18s %-8d  %18s %-8d  %15s %-12s\n\n",
		au.Bold("Done."),
		au.BgGreen("Scenarios passed"),
		au.Bold(len(passed)),
		au.BgBrown("Scenarios failed"),
		au.Bold(len(failed)),
		au.Cyan("Running time:"),
		ranFor.String(),
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(writer, au.BgGreen(fmt.Sprintf("%-44s  %-60s", "Scenario", "Final stream states")).Bold())
	for _, o := range passed {
		fmt.Fprintln(writer, printer.Sprintf("%-44s  %-60s", o.Scenario, streamStates(o.Streams)))
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, au.BgBrown(fmt.Sprintf("%-44s  %-60s  %-40s", "Scenario", "Final stream states", "Detail")).Bold())
	for _, o := range failed {
		fmt.Fprintln(writer, printer.Sprintf("%-44s  %-60s  %-40s", o.Scenario, streamStates(o.Streams), au.Red(o.Detail).String()))
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, au.Bold(fmt.Sprintf("%-105s", "          Log output")).BgBlue())
	fmt.Fprintln(writer, logOutput)

	return nil
}

func streamStates(streams []*flowsheet.Stream) string {
	states := make([]string, 0, len(streams))
	for _, s := range streams {
		states = append(states, fmt.Sprintf("%s=%.3f", s.Name(), s.MassFlow()))
	}
	return strings.Join(states, ", ")
}
