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
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a YIN document from r and returns its schema tree.
// Elements are matched by local name only; the document namespace is
// not enforced.  Statements that do not name a schema node, such as
// description, type, and key, are folded into their parent node.
func Parse(r io.Reader) (*Tree, error) {
	d := xml.NewDecoder(r)
	t := &Tree{}

	// stack[len-1] is the node currently being filled in.
	var stack []NodeID

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("yin: %v", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			kind, ok := nameToNodeKind[el.Name.Local]
			if !ok {
				if len(stack) > 0 {
					top := &t.Nodes[stack[len(stack)-1]]
					switch el.Name.Local {
					case "description":
						top.Description = strings.TrimSpace(descriptionText(d, el))
						continue
					case "type":
						top.Type = attr(el, "name")
					case "key":
						top.Key = attr(el, "value")
					}
				}
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("yin: %v", err)
				}
				continue
			}

			id := NodeID(len(t.Nodes))
			n := Node{
				Kind:   kind,
				Name:   attr(el, "name"),
				Parent: InvalidID,
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				n.Parent = parent
				t.Nodes[parent].Children = append(t.Nodes[parent].Children, id)
			}
			t.Nodes = append(t.Nodes, n)
			stack = append(stack, id)

		case xml.EndElement:
			if _, ok := nameToNodeKind[el.Name.Local]; ok && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(t.Nodes) == 0 {
		return nil, fmt.Errorf("yin: document contains no module")
	}
	if t.Nodes[0].Kind != ModuleNode {
		return nil, fmt.Errorf("yin: top-level statement is %v, not module", t.Nodes[0].Kind)
	}
	return t, nil
}

// ParseFile reads the YIN document at path.
func ParseFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return t, nil
}

// attr returns the value of the named attribute of el, or "".
func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// descriptionText consumes el, a description element, and returns the
// character data of its text child.
func descriptionText(d *xml.Decoder, el xml.StartElement) string {
	var text string
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return text
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "text" && depth == 1 {
				var s struct {
					Text string `xml:",chardata"`
				}
				if err := d.DecodeElement(&s, &t); err == nil {
					text = s.Text
				}
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text
}
