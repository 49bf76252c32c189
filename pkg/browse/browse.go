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

// Package browse ties the registry, the compiler, and the model store
// into the browsing service: background preprocessing of all releases,
// on-demand release switching, and the read-only search, resolve, and
// status operations.
package browse

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/openconfig/pathbrowser/pkg/model"
	"github.com/openconfig/pathbrowser/pkg/pyang"
	"github.com/openconfig/pathbrowser/pkg/release"
)

// ErrNoActiveModel is returned by Search and Resolve before any
// release has been loaded.
var ErrNoActiveModel = fmt.Errorf("no release loaded")

// A Service is the browsing facade.  Its read operations run
// concurrently with preprocessing and with each other; the model store
// is the only shared mutable state and is replaced atomically.
type Service struct {
	registry *release.Registry
	compiler *pyang.Compiler
	store    model.Store
	log      *zap.Logger

	// group single-flights preprocessing per release so a background
	// pass and an on-demand switch never run the compiler twice for
	// the same release.
	group singleflight.Group
}

// New returns a Service over the given registry and compiler.
func New(reg *release.Registry, c *pyang.Compiler, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{registry: reg, compiler: c, log: log}
}

// Start launches the background preprocessing pass.
func (s *Service) Start() {
	go s.Run()
}

// Run preprocesses every release that is not already ok, sequentially
// to keep the external compiler and the shared cache directory
// uncontended.  A release's failure is recorded on the registry and
// never aborts the remaining releases.
func (s *Service) Run() {
	for _, name := range s.registry.Names() {
		if st, _ := s.registry.Lookup(name); st.State == release.OK {
			continue
		}
		if err := s.ensure(name); err != nil {
			s.log.Error("preprocessing failed",
				zap.String("release", name),
				zap.Error(err))
			continue
		}
		s.log.Info("release preprocessed", zap.String("release", name))
	}
}

// ensure brings the named release's artifacts up to date for both
// model kinds, single-flighted per release, and records the outcome on
// the registry.
func (s *Service) ensure(name string) error {
	_, err, _ := s.group.Do(name, func() (interface{}, error) {
		// A completed attempt, successful or not, is never repeated.
		switch st, _ := s.registry.Lookup(name); st.State {
		case release.OK:
			return nil, nil
		case release.Error:
			return nil, fmt.Errorf("release %s failed preprocessing: %s", name, st.Detail)
		}
		for _, kind := range model.Kinds {
			if err := s.compiler.Preprocess(name, kind); err != nil {
				s.registry.MarkError(name, err.Error())
				return nil, err
			}
		}
		s.registry.MarkOK(name)
		return nil, nil
	})
	return err
}

// Active returns the currently loaded model, or nil.
func (s *Service) Active() *model.Model {
	return s.store.Active()
}

// Status returns a snapshot of every release's preprocessing status.
func (s *Service) Status() map[string]release.Status {
	return s.registry.Statuses()
}

// Search returns every path of the active model's kind set containing
// substr, lexicographically ordered.
func (s *Service) Search(kind model.Kind, substr string) ([]string, error) {
	m := s.store.Active()
	if m == nil {
		return nil, ErrNoActiveModel
	}
	if _, ok := m.Paths[kind]; !ok {
		return nil, fmt.Errorf("model %s not loaded for release %s", kind, m.Release)
	}
	return m.Search(kind, substr), nil
}

// Resolve resolves path against the active model.  A nil Result with a
// nil error means nothing matched.
func (s *Service) Resolve(path string) (*model.Result, error) {
	m := s.store.Active()
	if m == nil {
		return nil, ErrNoActiveModel
	}
	return m.Resolve(path), nil
}

// SwitchRelease makes name the active release.  A pending release is
// preprocessed synchronously first, which blocks for as long as the
// external compiler runs; concurrent queries keep reading the previous
// model until the new one is published.  Failures leave the previous
// model active.  A release already recorded as failed is not retried.
func (s *Service) SwitchRelease(name string) error {
	st, ok := s.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown release %q", name)
	}
	if m := s.store.Active(); m != nil && m.Release == name {
		return nil
	}

	switch st.State {
	case release.Error:
		return fmt.Errorf("release %s failed preprocessing: %s", name, st.Detail)
	case release.Pending:
		if err := s.ensure(name); err != nil {
			return err
		}
		if st, _ = s.registry.Lookup(name); st.State != release.OK {
			return fmt.Errorf("release %s failed preprocessing: %s", name, st.Detail)
		}
	}

	m, err := model.Load(name, s.registry.CacheDir(name))
	if err != nil {
		return err
	}
	s.store.Replace(m)
	s.log.Info("release loaded", zap.String("release", name))
	return nil
}

// LoadInitial loads the newest release whose artifacts are already
// present, if any, so the service starts with a model without waiting
// for preprocessing.
func (s *Service) LoadInitial() {
	for _, name := range s.registry.Names() {
		if st, _ := s.registry.Lookup(name); st.State != release.OK {
			continue
		}
		if err := s.SwitchRelease(name); err != nil {
			s.log.Warn("initial load failed",
				zap.String("release", name),
				zap.Error(err))
			continue
		}
		return
	}
}
