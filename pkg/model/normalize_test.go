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

import "testing"

func TestNormalize(t *testing.T) {
	for _, tt := range []struct {
		desc string
		in   string
		want string
	}{
		{
			desc: "plain path untouched",
			in:   "state/port/description",
			want: "state/port/description",
		}, {
			desc: "leading and trailing separators",
			in:   "/state/port/",
			want: "state/port",
		}, {
			desc: "state wrapper with colon",
			in:   "nokia-state:state/port",
			want: "state/port",
		}, {
			desc: "conf wrapper with slash",
			in:   "nokia-conf/configure/system",
			want: "configure/system",
		}, {
			desc: "list key selectors stripped",
			in:   "state/port[port-id=1/1/c1/1]/description",
			want: "state/port/description",
		}, {
			desc: "wrapper and selector together",
			in:   "/nokia-state:state/port[port-id=x]/",
			want: "state/port",
		}, {
			desc: "wrapper not at start untouched",
			in:   "state/nokia-conf/port",
			want: "state/nokia-conf/port",
		}, {
			desc: "empty",
			in:   "",
			want: "",
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) got %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize is not idempotent: Normalize(%q) = %q", got, again)
			}
		})
	}
}
