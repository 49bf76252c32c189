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

// Package model holds the in-memory schema model for one release: the
// flattened path sets and parsed trees for the configuration and state
// namespaces, and the search, resolve, and example-generation
// operations that read them.
package model

import "fmt"

// A Kind names one of the two schema namespaces every release carries.
type Kind int

// Enumeration of the model kinds.
const (
	Conf = Kind(iota)
	State
)

// Kinds lists all model kinds in processing order.
var Kinds = []Kind{Conf, State}

// KindToName maps Kinds to their short names.
var KindToName = map[Kind]string{
	Conf:  "conf",
	State: "state",
}

func (k Kind) String() string {
	if s, ok := KindToName[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown-kind-%d", k)
}

// KindByName returns the Kind with the given short name.
func KindByName(name string) (Kind, bool) {
	for k, n := range KindToName {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// FlatFile returns the file name of the flattened path artifact for k.
func (k Kind) FlatFile() string { return fmt.Sprintf("nokia-%s-flat-paths.txt", k) }

// YinFile returns the file name of the parsed tree artifact for k.
func (k Kind) YinFile() string { return fmt.Sprintf("nokia-%s-pyang.yin", k) }

// SourceFile returns the standard source file name for k.
func (k Kind) SourceFile() string { return fmt.Sprintf("nokia-%s.yang", k) }

// topAliases maps the top container name of a query path to the model
// kind holding it.
var topAliases = map[string]Kind{
	"configure": Conf,
	"state":     State,
}
