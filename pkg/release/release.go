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

// Package release enumerates the software releases found under a
// models root and tracks each release's preprocessing status.
package release

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/openconfig/pathbrowser/pkg/model"
)

// A State is a release's preprocessing state.  A release starts
// Pending and moves exactly once, to OK or to Error; neither OK nor
// Error ever reverts to Pending.
type State int

// Enumeration of release states.
const (
	Pending = State(iota)
	OK
	Error
)

// StateToName maps States to their names.
var StateToName = map[State]string{
	Pending: "pending",
	OK:      "ok",
	Error:   "error",
}

func (s State) String() string {
	if n, ok := StateToName[s]; ok {
		return n
	}
	return fmt.Sprintf("unknown-state-%d", s)
}

// A Status is a release's state plus the failure detail when the state
// is Error.
type Status struct {
	State  State
	Detail string
}

// String renders a Status the way the browsing surface displays it:
// "ok", "pending", or "error: detail".
func (s Status) String() string {
	if s.State == Error && s.Detail != "" {
		return "error: " + s.Detail
	}
	return s.State.String()
}

// A Registry knows every release under a models root and the status of
// each.  Status mutations come only from preprocessing results.
type Registry struct {
	modelsDir string
	cacheDir  string
	names     []string // sorted descending, newest release first

	mu     sync.Mutex
	status map[string]Status
}

// NewRegistry enumerates the subdirectories of modelsDir, excluding
// hidden entries, and computes each release's initial status from the
// existence of its four derived artifacts under cacheDir.  Artifact
// freshness is not consulted at this point.
func NewRegistry(modelsDir, cacheDir string) (*Registry, error) {
	entries, err := os.ReadDir(modelsDir)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		modelsDir: modelsDir,
		cacheDir:  cacheDir,
		status:    map[string]Status{},
	}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		r.names = append(r.names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(r.names)))

	for _, name := range r.names {
		st := Status{State: OK}
		if !ArtifactsExist(filepath.Join(cacheDir, name)) {
			st.State = Pending
		}
		r.status[name] = st
	}
	return r, nil
}

// ArtifactsExist reports whether all four derived artifacts are
// present in dir.
func ArtifactsExist(dir string) bool {
	for _, k := range model.Kinds {
		for _, f := range []string{k.FlatFile(), k.YinFile()} {
			if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
				return false
			}
		}
	}
	return true
}

// Names returns the releases, newest first.
func (r *Registry) Names() []string {
	return append([]string{}, r.names...)
}

// CacheDir returns the directory a release's derived artifacts live
// under.
func (r *Registry) CacheDir(name string) string {
	return filepath.Join(r.cacheDir, name)
}

// Lookup returns the status of the named release.
func (r *Registry) Lookup(name string) (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.status[name]
	return st, ok
}

// Statuses returns a snapshot of every release's status.
func (r *Registry) Statuses() map[string]Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Status, len(r.status))
	for k, v := range r.status {
		out[k] = v
	}
	return out
}

// MarkOK records a successful preprocessing of name.  Only a Pending
// release moves to OK; marking an OK release again is a no-op and an
// Error release is never revived.
func (r *Registry) MarkOK(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.status[name]; ok && st.State == Pending {
		r.status[name] = Status{State: OK}
	}
}

// MarkError records a failed preprocessing of name with its detail.
// Only a Pending release moves to Error.
func (r *Registry) MarkError(name, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.status[name]; ok && st.State == Pending {
		r.status[name] = Status{State: Error, Detail: detail}
	}
}
