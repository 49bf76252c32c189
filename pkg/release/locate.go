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

package release

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openconfig/pathbrowser/pkg/model"
)

// CombinedDir is the subdirectory holding the combined single-file
// models in the modern release layouts.
const CombinedDir = "nokia-combined"

// Sources locates the combined conf and state schema files of one
// release, as paths relative to the release root.
type Sources map[model.Kind]string

// A SourceNotFoundError reports a release root matching none of the
// known source layouts.
type SourceNotFoundError struct {
	Root string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("could not find combined or legacy conf/state YANG in %s", e.Root)
}

// LocateSources determines which files hold the combined conf and
// state models under root.  Three layouts are tried in order: the
// nokia-combined subdirectory with standard file names, the same
// subdirectory with -combined suffixed names, and legacy top-level
// files directly under root.
func LocateSources(root string) (Sources, error) {
	layouts := []Sources{
		{
			model.Conf:  filepath.Join(CombinedDir, model.Conf.SourceFile()),
			model.State: filepath.Join(CombinedDir, model.State.SourceFile()),
		},
		{
			model.Conf:  filepath.Join(CombinedDir, "nokia-conf-combined.yang"),
			model.State: filepath.Join(CombinedDir, "nokia-state-combined.yang"),
		},
		{
			model.Conf:  model.Conf.SourceFile(),
			model.State: model.State.SourceFile(),
		},
	}

	for _, layout := range layouts {
		ok := true
		for _, rel := range layout {
			if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
				ok = false
				break
			}
		}
		if ok {
			return layout, nil
		}
	}
	return nil, &SourceNotFoundError{Root: root}
}
