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
	"testing"

	"github.com/openconfig/pathbrowser/pkg/yin"
)

const stateDoc = `<?xml version="1.0" encoding="UTF-8"?>
<module name="nokia-state" xmlns="urn:ietf:params:xml:ns:yang:yin:1">
  <namespace uri="urn:nokia.com:sros:ns:yang:sr:state"/>
  <prefix value="nokia-state"/>
  <container name="state">
    <container name="system">
      <leaf name="oper-name">
        <type name="string"/>
      </leaf>
    </container>
    <list name="port">
      <key value="port-id"/>
      <leaf name="port-id">
        <type name="string"/>
      </leaf>
      <leaf name="description">
        <type name="string"/>
        <description>
          <text>Text description of the port.</text>
        </description>
      </leaf>
      <leaf name="admin-state">
        <type name="enumeration"/>
      </leaf>
      <choice name="rate-config">
        <case name="manual">
          <leaf name="rate">
            <type name="uint32"/>
          </leaf>
        </case>
      </choice>
    </list>
    <list name="lag">
      <key value="lag-name backup-name"/>
      <leaf name="lag-name">
        <type name="string"/>
      </leaf>
      <leaf name="backup-name">
        <type name="string"/>
      </leaf>
      <container name="statistics">
        <leaf name="octets"><type name="uint64"/></leaf>
      </container>
    </list>
  </container>
</module>
`

const confDoc = `<?xml version="1.0" encoding="UTF-8"?>
<module name="nokia-conf" xmlns="urn:ietf:params:xml:ns:yang:yin:1">
  <namespace uri="urn:nokia.com:sros:ns:yang:sr:conf"/>
  <prefix value="nokia-conf"/>
  <container name="configure">
    <container name="system">
      <leaf name="name">
        <type name="string"/>
      </leaf>
    </container>
  </container>
</module>
`

// testModel builds a Model over the test documents.  When confLoaded
// is false only the state tree is present.
func testModel(t *testing.T, confLoaded bool) *Model {
	t.Helper()
	m := &Model{
		Release: "test",
		Paths: map[Kind][]string{
			State: {
				"state/port/admin-state",
				"state/port/description",
				"state/system/oper-name",
			},
		},
		Trees: map[Kind]*yin.Tree{},
	}
	st, err := yin.Parse(strings.NewReader(stateDoc))
	if err != nil {
		t.Fatalf("parsing state doc: %v", err)
	}
	m.Trees[State] = st
	if confLoaded {
		cf, err := yin.Parse(strings.NewReader(confDoc))
		if err != nil {
			t.Fatalf("parsing conf doc: %v", err)
		}
		m.Trees[Conf] = cf
		m.Paths[Conf] = []string{"configure/system/name"}
	}
	return m
}

func TestResolve(t *testing.T) {
	m := testModel(t, true)

	for _, tt := range []struct {
		desc        string
		in          string
		wantPath    string
		wantPartial bool
		wantKind    yin.NodeKind
		wantNoMatch bool
	}{
		{
			desc:     "exact leaf",
			in:       "state/port/description",
			wantPath: "/state/port/description",
			wantKind: yin.LeafNode,
		}, {
			desc:     "exact list",
			in:       "state/port",
			wantPath: "/state/port",
			wantKind: yin.ListNode,
		}, {
			desc:     "exact conf leaf",
			in:       "configure/system/name",
			wantPath: "/configure/system/name",
			wantKind: yin.LeafNode,
		}, {
			desc:     "prefixed top segment",
			in:       "nokia-state:state/port/description",
			wantPath: "/state/port/description",
			wantKind: yin.LeafNode,
		}, {
			desc:     "leading and trailing separators",
			in:       "/state/system/oper-name/",
			wantPath: "/state/system/oper-name",
			wantKind: yin.LeafNode,
		}, {
			desc:        "bogus trailing segment is a partial match",
			in:          "state/port/bogus",
			wantPath:    "/state/port",
			wantPartial: true,
			wantKind:    yin.ListNode,
		}, {
			desc:        "walk halts at first miss",
			in:          "state/port/bogus/description",
			wantPath:    "/state/port",
			wantPartial: true,
			wantKind:    yin.ListNode,
		}, {
			desc:        "segment nested under a choice does not resolve",
			in:          "state/port/rate",
			wantPath:    "/state/port",
			wantPartial: true,
			wantKind:    yin.ListNode,
		}, {
			desc:        "choice name itself is not a match candidate",
			in:          "state/port/rate-config",
			wantPath:    "/state/port",
			wantPartial: true,
			wantKind:    yin.ListNode,
		}, {
			desc:        "no separator",
			in:          "state",
			wantNoMatch: true,
		}, {
			desc:        "empty path",
			in:          "",
			wantNoMatch: true,
		}, {
			desc:        "unknown top alias",
			in:          "bogus/port",
			wantNoMatch: true,
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			got := m.Resolve(tt.in)
			if tt.wantNoMatch {
				if got != nil {
					t.Fatalf("Resolve(%q) got %+v, want no match", tt.in, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Resolve(%q) got no match, want %q", tt.in, tt.wantPath)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Resolve(%q) path got %q, want %q", tt.in, got.Path, tt.wantPath)
			}
			if got.Partial != tt.wantPartial {
				t.Errorf("Resolve(%q) partial got %v, want %v", tt.in, got.Partial, tt.wantPartial)
			}
			if kind := got.Node().Kind; kind != tt.wantKind {
				t.Errorf("Resolve(%q) kind got %v, want %v", tt.in, kind, tt.wantKind)
			}
		})
	}
}

func TestResolveUnloadedKind(t *testing.T) {
	m := testModel(t, false)
	if got := m.Resolve("configure/system/name"); got != nil {
		t.Errorf("Resolve against an unloaded model got %+v, want no match", got)
	}
}

func TestResolveNodeDetails(t *testing.T) {
	m := testModel(t, true)
	res := m.Resolve("state/port/description")
	if res == nil {
		t.Fatal("Resolve(state/port/description) got no match")
	}
	n := res.Node()
	if n.Type != "string" {
		t.Errorf("type got %q, want %q", n.Type, "string")
	}
	if want := "Text description of the port."; n.Description != want {
		t.Errorf("description got %q, want %q", n.Description, want)
	}
}
