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

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/openconfig/pathbrowser/pkg/model"
	"github.com/openconfig/pathbrowser/pkg/pyang"
)

// flatten preprocesses the single release root at root into cache,
// without the serving stack, and reports what was produced.
func flatten(w io.Writer, root, cache string, printTree bool) error {
	root = filepath.Clean(root)
	name := filepath.Base(root)
	compiler := &pyang.Compiler{
		ModelsDir: filepath.Dir(root),
		CacheDir:  cache,
	}

	for _, kind := range model.Kinds {
		if err := compiler.Preprocess(name, kind); err != nil {
			return err
		}
	}

	m, err := model.Load(name, filepath.Join(cache, name))
	if err != nil {
		return err
	}
	for _, kind := range model.Kinds {
		dir := filepath.Join(cache, name)
		fmt.Fprintf(w, "%s: %d paths\n", kind, len(m.Paths[kind]))
		fmt.Fprintf(w, "  %s\n", filepath.Join(dir, kind.FlatFile()))
		fmt.Fprintf(w, "  %s\n", filepath.Join(dir, kind.YinFile()))
		if printTree {
			t := m.Trees[kind]
			t.Print(w, t.Root())
		}
	}
	return nil
}
