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

// Package pyang derives the cached artifacts of a release by invoking
// the external pyang compiler, regenerating only what is stale.
package pyang

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/openconfig/pathbrowser/pkg/model"
	"github.com/openconfig/pathbrowser/pkg/release"
)

// DefaultBinary is the compiler looked up on PATH when none is
// configured.
const DefaultBinary = "pyang"

// includeDirs are the sibling directories added to the compiler's
// module search path when present under a release root.
var includeDirs = []string{"ietf", "nokia-submodule"}

// A CompilerError reports a non-zero compiler exit.  It is fatal for
// its (release, kind) and is not retried.
type CompilerError struct {
	Release string
	Kind    model.Kind
	Format  string
	Stderr  string
}

func (e *CompilerError) Error() string {
	return fmt.Sprintf("pyang %s error for %s %s:\n%s", e.Format, e.Release, e.Kind, e.Stderr)
}

// runCommand runs the named program and returns its standard output
// and standard error.  It is a variable to make testing Preprocess
// possible without a pyang installation.
var runCommand = func(name string, args ...string) (stdout, stderr []byte, err error) {
	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// A Compiler derives flattened path lists and YIN trees from a
// release's schema sources into a cache directory.
type Compiler struct {
	Binary    string // compiler executable, DefaultBinary when empty
	ModelsDir string // root holding one subdirectory per release
	CacheDir  string // root holding one artifact subdirectory per release
}

// Preprocess brings both derived artifacts of (name, kind) up to date.
// An artifact is regenerated when it is missing or its modification
// time does not exceed the source file's; otherwise it is left
// untouched.  The compiler's output is captured in memory and written
// to the artifact only on a zero exit status, so a failed run never
// clobbers a previously valid artifact.  The compiler is given no
// deadline; a hang is surfaced only if it eventually exits non-zero.
func (c *Compiler) Preprocess(name string, kind model.Kind) error {
	root := filepath.Join(c.ModelsDir, name)
	srcs, err := release.LocateSources(root)
	if err != nil {
		return err
	}
	src := filepath.Join(root, srcs[kind])

	cacheDir := filepath.Join(c.CacheDir, name)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}

	for _, out := range []struct{ format, artifact string }{
		{"flatten", filepath.Join(cacheDir, kind.FlatFile())},
		{"yin", filepath.Join(cacheDir, kind.YinFile())},
	} {
		if !stale(out.artifact, src) {
			continue
		}
		if err := c.generate(name, kind, out.format, root, src, out.artifact); err != nil {
			return err
		}
	}
	return nil
}

// generate runs one compiler invocation and writes its output to
// artifact.
func (c *Compiler) generate(name string, kind model.Kind, format, root, src, artifact string) error {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	args := []string{"-f", format, "-p", root}
	for _, d := range includeDirs {
		if fi, err := os.Stat(filepath.Join(root, d)); err == nil && fi.IsDir() {
			args = append(args, "-p", filepath.Join(root, d))
		}
	}
	args = append(args, src)

	stdout, stderr, err := runCommand(binary, args...)
	if err != nil {
		return &CompilerError{Release: name, Kind: kind, Format: format, Stderr: string(stderr)}
	}
	return os.WriteFile(artifact, stdout, 0644)
}

// stale reports whether artifact must be regenerated from src: it is
// missing, unreadable, or not newer than src.
func stale(artifact, src string) bool {
	ai, err := os.Stat(artifact)
	if err != nil {
		return true
	}
	si, err := os.Stat(src)
	if err != nil {
		return true
	}
	return !ai.ModTime().After(si.ModTime())
}
