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

// Package yin reads YIN documents (the XML form of YANG, RFC 6020
// section 11) into an in-memory schema tree.  The tree is an arena:
// nodes live in a single slice owned by the Tree and refer to each
// other by index, with an explicit parent index for upward traversal.
package yin

import "fmt"

// Namespace is the XML namespace of YIN documents.
const Namespace = "urn:ietf:params:xml:ns:yang:yin:1"

// A NodeKind is the kind of statement a Node was built from.
type NodeKind int

// Enumeration of the schema statement kinds kept in the tree.
const (
	ModuleNode = NodeKind(iota)
	ContainerNode
	ListNode
	LeafNode
	LeafListNode
	ChoiceNode
	CaseNode
	AnyXMLNode
	AnyDataNode
	UsesNode
	GroupingNode
	TypedefNode
	AugmentNode
	NotificationNode
	RPCNode
	ActionNode
	IdentityNode
	FeatureNode
)

// NodeKindToName maps NodeKinds to their YIN statement names.
var NodeKindToName = map[NodeKind]string{
	ModuleNode:       "module",
	ContainerNode:    "container",
	ListNode:         "list",
	LeafNode:         "leaf",
	LeafListNode:     "leaf-list",
	ChoiceNode:       "choice",
	CaseNode:         "case",
	AnyXMLNode:       "anyxml",
	AnyDataNode:      "anydata",
	UsesNode:         "uses",
	GroupingNode:     "grouping",
	TypedefNode:      "typedef",
	AugmentNode:      "augment",
	NotificationNode: "notification",
	RPCNode:          "rpc",
	ActionNode:       "action",
	IdentityNode:     "identity",
	FeatureNode:      "feature",
}

// nameToNodeKind is the inverse of NodeKindToName, built at init.
var nameToNodeKind = map[string]NodeKind{}

func init() {
	for k, n := range NodeKindToName {
		nameToNodeKind[n] = k
	}
}

func (k NodeKind) String() string {
	if s, ok := NodeKindToName[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown-node-%d", k)
}

// A NodeID addresses a Node within its Tree's arena.  The zero NodeID
// is the root.
type NodeID int

// InvalidID is the parent of the root node.
const InvalidID = NodeID(-1)

// A Node is one schema statement.  Nodes are owned by their Tree; the
// Parent index is a non-owning upward reference used only to
// reconstruct paths.
type Node struct {
	Kind        NodeKind
	Name        string
	Key         string // key leaf name(s) when Kind is ListNode
	Type        string // named type for leafs and leaf-lists
	Description string

	Parent   NodeID
	Children []NodeID
}

// A Tree is a parsed YIN document.  Nodes[0] is the module node.
type Tree struct {
	Nodes []Node
}

// Root returns the ID of the module node.
func (t *Tree) Root() NodeID { return 0 }

// Node returns the node addressed by id.
func (t *Tree) Node(id NodeID) *Node { return &t.Nodes[id] }

// Path returns the names of the nodes from the root down to id,
// root-most first.  The walk up stops at the first unnamed ancestor.
func (t *Tree) Path(id NodeID) []string {
	var parts []string
	for ; id != InvalidID; id = t.Nodes[id].Parent {
		n := &t.Nodes[id]
		if n.Name == "" {
			break
		}
		parts = append(parts, n.Name)
	}
	// parts was collected leaf first.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}
