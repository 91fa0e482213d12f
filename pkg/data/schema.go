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
var Schema = `create table if not exists scenario_runs
(
    id               integer primary key, -- aliases to rowid

    recorded         text        not null,

    origin           text        not null,

    ran_for          big integer not null,

    scenarios_passed integer     not null,
    scenarios_failed integer     not null
);

create table if not exists outcomes
(
    id              integer primary key,
    scenario        text    not null,
    passed          integer not null,
    detail          text    not null,

    scenario_run_id integer not null references scenario_runs (id)
);

create table if not exists streams
(
    id         integer primary key,
    name       text    not null,
    mass_flow  real    not null,

    outcome_id integer not null references outcomes (id)
)
`
