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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/openconfig/pathbrowser/pkg/yin"
)

// A Model is the resident schema model for one release.  Its fields
// are never mutated once built; a new release is published by building
// a fresh Model and replacing the old one in the Store.
type Model struct {
	Release string
	Paths   map[Kind][]string // sorted, deduplicated
	Trees   map[Kind]*yin.Tree
}

// A MissingArtifactError reports a load attempted against a release
// whose derived artifacts are not all on disk.
type MissingArtifactError struct {
	Release string
	Path    string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("missing preprocessed file for release %s: %s", e.Release, e.Path)
}

// Load builds the Model for release from the derived artifacts in dir,
// the release's cache directory.  Lines of the flattened path files
// that contain no separator are discarded; the remainder is
// deduplicated and sorted.
func Load(release, dir string) (*Model, error) {
	m := &Model{
		Release: release,
		Paths:   make(map[Kind][]string, len(Kinds)),
		Trees:   make(map[Kind]*yin.Tree, len(Kinds)),
	}
	for _, k := range Kinds {
		paths, err := readFlat(release, filepath.Join(dir, k.FlatFile()))
		if err != nil {
			return nil, err
		}
		m.Paths[k] = paths

		yinPath := filepath.Join(dir, k.YinFile())
		t, err := yin.ParseFile(yinPath)
		if os.IsNotExist(err) {
			return nil, &MissingArtifactError{Release: release, Path: yinPath}
		}
		if err != nil {
			return nil, err
		}
		m.Trees[k] = t
	}
	return m, nil
}

// readFlat reads one flattened path artifact.
func readFlat(release, path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &MissingArtifactError{Release: release, Path: path}
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := map[string]bool{}
	var paths []string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if !strings.Contains(line, "/") || seen[line] {
			continue
		}
		seen[line] = true
		paths = append(paths, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Search returns, in lexicographic order, every path of the kind's
// flattened set containing substr.  An empty result is an ordinary
// outcome.
func (m *Model) Search(kind Kind, substr string) []string {
	var matches []string
	for _, p := range m.Paths[kind] {
		if strings.Contains(p, substr) {
			matches = append(matches, p)
		}
	}
	return matches
}

// A Store holds the single active Model.  Replace publishes a fully
// built Model atomically; readers see either the old or the new model
// in full, never a mix.
type Store struct {
	active atomic.Pointer[Model]
}

// Active returns the current Model, or nil when none has been loaded.
func (s *Store) Active() *Model { return s.active.Load() }

// Replace installs m as the active Model, discarding the previous one.
func (s *Store) Replace(m *Model) { s.active.Store(m) }
