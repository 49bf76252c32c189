// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program pathbrowser browses Nokia SR OS YANG releases: it derives
// flattened path lists and YIN trees per release with pyang, serves
// substring search and path resolution over the loaded release, and
// renders example gNMI queries for resolved nodes.
//
// Usage: pathbrowser [--models DIR] [--cache DIR] [--addr ADDR]
// and: pathbrowser --flatten DIR [--cache DIR] [--print]
//
// Without --flatten the program serves the browsing API on ADDR,
// preprocessing any release missing derived artifacts in the
// background.  With --flatten it preprocesses the single release root
// DIR and exits, reporting per-model path counts and the artifact
// locations.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pborman/getopt"
	"go.uber.org/zap"

	"github.com/openconfig/pathbrowser/pkg/browse"
	"github.com/openconfig/pathbrowser/pkg/pyang"
	"github.com/openconfig/pathbrowser/pkg/release"
	"github.com/openconfig/pathbrowser/pkg/server"
)

func main() {
	models := "7x50_YangModels"
	cache := "flat"
	addr := ":8080"
	flattenRoot := ""
	printTree := false
	getopt.CommandLine.StringVarLong(&models, "models", 0, "directory holding one subdirectory per release")
	getopt.CommandLine.StringVarLong(&cache, "cache", 0, "directory holding derived artifacts per release")
	getopt.CommandLine.StringVarLong(&addr, "addr", 0, "address to serve the browsing API on")
	getopt.CommandLine.StringVarLong(&flattenRoot, "flatten", 0, "flatten a single release root and exit")
	getopt.CommandLine.BoolVarLong(&printTree, "print", 0, "with --flatten, print the parsed trees")
	getopt.Parse()

	if flattenRoot != "" {
		if err := flatten(os.Stdout, flattenRoot, cache, printTree); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log, err := zap.NewProduction()
	if err != nil {
		log = zap.NewNop()
	}
	defer log.Sync()

	reg, err := release.NewRegistry(models, cache)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	compiler := &pyang.Compiler{ModelsDir: models, CacheDir: cache}
	svc := browse.New(reg, compiler, log)
	svc.LoadInitial()
	svc.Start()

	srv := server.New(svc, log)
	log.Info("serving", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
