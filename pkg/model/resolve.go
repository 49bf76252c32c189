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

// A Result is a successful path resolution.  Partial reports that the
// walk stopped above the requested leaf: Path then names the deepest
// node reached.
type Result struct {
	Tree    *yin.Tree
	Kind    Kind
	ID      yin.NodeID
	Path    string // reconstructed /-joined path of the matched node
	Partial bool
}

// Node returns the matched node.
func (r *Result) Node() *yin.Node { return r.Tree.Node(r.ID) }

// Resolve walks the schema tree named by the path's top segment and
// returns the deepest matching node, or nil when nothing matched.
//
// The top segment may carry a namespace prefix (nokia-state:state);
// the bare name selects the model kind through a fixed alias table.
// Each following segment must name a direct child of the current node.
// Children of kind choice or case are never match candidates, and
// their own children are not searched through them; a segment nested
// only under a choice resolves to its nearest visible ancestor.  The
// walk halts at the first segment with no matching child and reports
// the node reached so far as a partial match.
func (m *Model) Resolve(path string) *Result {
	if path == "" || !strings.Contains(path, "/") {
		return nil
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")

	top := parts[0]
	if i := strings.LastIndex(top, ":"); i >= 0 {
		top = top[i+1:]
	}
	kind, ok := topAliases[top]
	if !ok {
		return nil
	}
	t := m.Trees[kind]
	if t == nil {
		return nil
	}

	cur := yin.InvalidID
	for _, c := range t.Node(t.Root()).Children {
		if n := t.Node(c); n.Kind == yin.ContainerNode && n.Name == top {
			cur = c
			break
		}
	}
	if cur == yin.InvalidID {
		return nil
	}

	deepest := cur
	for _, part := range parts[1:] {
		found := yin.InvalidID
		for _, c := range t.Node(cur).Children {
			n := t.Node(c)
			if n.Name == "" || n.Kind == yin.ChoiceNode || n.Kind == yin.CaseNode {
				continue
			}
			if n.Name == part {
				found = c
				break
			}
		}
		if found == yin.InvalidID {
			break
		}
		cur = found
		deepest = cur
	}

	resolved := t.Path(deepest)
	if len(resolved) > 0 && (resolved[0] == "nokia-state" || resolved[0] == "nokia-conf") {
		resolved = resolved[1:]
	}
	rp := "/" + strings.Join(resolved, "/")

	return &Result{
		Tree:    t,
		Kind:    kind,
		ID:      deepest,
		Path:    rp,
		Partial: Normalize(rp) != Normalize(path),
	}
}
