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

// language=sql
var OutcomesQuery = `
select scenario
     , passed
     , detail
from outcomes
where scenario_run_id = ?
order by id asc
;
`

// language=sql
var StreamStatesQuery = `
select o.scenario
     , s.name
     , s.mass_flow
from streams s
         join outcomes o on o.id = s.outcome_id
where o.scenario_run_id = ?
order by s.id asc
;
`

// language=sql
var RunSummaryQuery = `
select recorded
     , origin
     , ran_for
     , scenarios_passed
     , scenarios_failed
from scenario_runs
where id = ?
;
`
