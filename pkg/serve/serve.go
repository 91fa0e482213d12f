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
	"context"
	"log"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// FlowsimServer exposes the scenario suite over HTTP. A GET on /run executes
// the suite, stores the run, and returns the outcomes as JSON.
type FlowsimServer struct {
	Addr   string
	DBPath string
	srv    *http.Server
}

func (fs *FlowsimServer) Serve() {
	router := chi.NewRouter()
	router.Use(middleware.NoCache)
	router.Use(middleware.Logger)

	router.Mount("/debug", middleware.Profiler())
	router.Handle("/run", gziphandler.GzipHandler(NewRunHandler(fs.DBPath)))

	fs.srv = &http.Server{
		Addr:    fs.Addr,
		Handler: router,
	}

	go func() {
		log.Println("Listening ...")
		log.Fatal(fs.srv.ListenAndServe())
	}()
}

func (fs *FlowsimServer) Shutdown() {
	log.Println("Shutting down ...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := fs.srv.Shutdown(ctx)
	if err != nil {
		log.Printf("error during shutdown: %s", err.Error())
	}
}
