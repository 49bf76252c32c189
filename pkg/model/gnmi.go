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

package model

import (
	"strings"

	"github.com/openconfig/pathbrowser/pkg/yin"
)

// gnmiTemplate prefixes every generated example query.
const gnmiTemplate = "gnmic get --path /"

// GNMIExample renders an example gNMI query for a resolved node.  For
// every ancestor list that declares a key, the list's segment gains a
// [key=example] placeholder.  Only the first of a multi-key list's
// keys is reflected; multi-key lists are not specially handled.
// Namespace prefixes are stripped from every segment.
func GNMIExample(r *Result) string {
	parts := strings.Split(strings.Trim(r.Path, "/"), "/")

	for id := r.ID; id != yin.InvalidID; id = r.Tree.Node(id).Parent {
		n := r.Tree.Node(id)
		if n.Kind != yin.ListNode || n.Key == "" {
			continue
		}
		key := strings.Fields(n.Key)[0]
		for i, part := range parts {
			if part == n.Name {
				parts[i] = n.Name + "[" + key + "=example]"
				break
			}
		}
	}

	for i, part := range parts {
		if j := strings.LastIndex(part, ":"); j >= 0 {
			parts[i] = part[j+1:]
		}
	}
	return gnmiTemplate + strings.Join(parts, "/")
}
