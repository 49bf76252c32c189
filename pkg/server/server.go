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

// Package server is the thin HTTP wrapper around the browsing
// service.  It translates query parameters and JSON; all semantics
// live in pkg/browse and below.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/openconfig/pathbrowser/pkg/browse"
	"github.com/openconfig/pathbrowser/pkg/model"
	"github.com/openconfig/pathbrowser/pkg/pyang"
	"github.com/openconfig/pathbrowser/pkg/release"
)

// A Server serves the browsing API.
type Server struct {
	svc *browse.Service
	log *zap.Logger
	mux chi.Router
}

// New returns a Server over svc.
func New(svc *browse.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{svc: svc, log: log, mux: chi.NewRouter()}
	s.mux.Get("/api/status", s.handleStatus)
	s.mux.Get("/api/search", s.handleSearch)
	s.mux.Get("/api/paths", s.handleResolve)
	s.mux.Post("/api/releases/{release}/activate", s.handleActivate)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// statusResponse mirrors the shape the original status endpoint
// exposed.
type statusResponse struct {
	Status        string            `json:"status"`
	ReleaseStatus map[string]string `json:"release_status"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Status: "ok", ReleaseStatus: map[string]string{}}
	for name, st := range s.svc.Status() {
		resp.ReleaseStatus[name] = st.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

type searchResponse struct {
	Release string   `json:"release"`
	Model   string   `json:"model"`
	Query   string   `json:"q"`
	Matches []string `json:"matches"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	kind, ok := model.KindByName(r.URL.Query().Get("model"))
	if !ok {
		writeError(w, http.StatusBadRequest, "model must be conf or state")
		return
	}
	if !s.switchIfRequested(w, r) {
		return
	}

	matches, err := s.svc.Search(kind, q)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	m := s.svc.Active()
	writeJSON(w, http.StatusOK, searchResponse{
		Release: m.Release,
		Model:   kind.String(),
		Query:   q,
		Matches: matches,
	})
}

// resolveResponse carries the fields the original details page showed.
type resolveResponse struct {
	Path           string `json:"path"`
	ResolvedPath   string `json:"resolved_path"`
	IsPartialMatch bool   `json:"is_partial_match"`
	Kind           string `json:"kind"`
	Type           string `json:"type,omitempty"`
	Description    string `json:"description,omitempty"`
	Key            string `json:"key,omitempty"`
	GnmiExample    string `json:"gnmi_example"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter path")
		return
	}
	if !s.switchIfRequested(w, r) {
		return
	}

	res, err := s.svc.Resolve(path)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "no information found for path: "+path)
		return
	}

	n := res.Node()
	writeJSON(w, http.StatusOK, resolveResponse{
		Path:           path,
		ResolvedPath:   model.Normalize(res.Path),
		IsPartialMatch: res.Partial,
		Kind:           n.Kind.String(),
		Type:           n.Type,
		Description:    n.Description,
		Key:            n.Key,
		GnmiExample:    model.GNMIExample(res),
	})
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "release")
	if err := s.svc.SwitchRelease(name); err != nil {
		s.log.Warn("release switch failed",
			zap.String("release", name),
			zap.Error(err))
		writeError(w, switchStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "release": name})
}

// switchIfRequested honors an optional release query parameter by
// switching before serving, the way the original's release dropdown
// behaved.  It reports whether the request should proceed.
func (s *Server) switchIfRequested(w http.ResponseWriter, r *http.Request) bool {
	name := r.URL.Query().Get("release")
	if name == "" {
		return true
	}
	if err := s.svc.SwitchRelease(name); err != nil {
		writeError(w, switchStatus(err), err.Error())
		return false
	}
	return true
}

// switchStatus maps a switch failure to an HTTP status: compiler and
// source failures are upstream errors, the rest are bad requests.
func switchStatus(err error) int {
	var ce *pyang.CompilerError
	var se *release.SourceNotFoundError
	var me *model.MissingArtifactError
	if errors.As(err, &ce) || errors.As(err, &se) || errors.As(err, &me) {
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
