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

package yin

import (
	"fmt"
	"io"

	"github.com/openconfig/pathbrowser/pkg/indent"
)

// Print prints the tree rooted at id to w in human readable form.
func (t *Tree) Print(w io.Writer, id NodeID) {
	n := t.Node(id)
	switch {
	case len(n.Children) == 0 && n.Type != "":
		fmt.Fprintf(w, "%s %s\n", n.Type, n.Name)
		return
	case len(n.Children) == 0:
		fmt.Fprintf(w, "%s\n", n.Name)
		return
	case n.Kind == ListNode:
		fmt.Fprintf(w, "[%s]%s {\n", n.Key, n.Name) //}
	default:
		fmt.Fprintf(w, "%s {\n", n.Name) //}
	}
	for _, c := range n.Children {
		t.Print(indent.NewWriter(w, "  "), c)
	}
	// { to match the brace below to keep brace matching working
	fmt.Fprintln(w, "}")
}
