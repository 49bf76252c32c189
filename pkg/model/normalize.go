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
	"regexp"
	"strings"
)

var (
	wrapperRE  = regexp.MustCompile(`^(nokia-(conf|state)[:/])`)
	selectorRE = regexp.MustCompile(`\[[^\]]+\]`)
)

// Normalize brings a schema path into canonical comparison form: the
// leading and trailing separators are trimmed, a leading nokia-conf or
// nokia-state wrapper token is removed, and every [...] list-key
// selector is stripped.  Normalize is idempotent.
func Normalize(p string) string {
	p = strings.Trim(p, "/")
	p = wrapperRE.ReplaceAllString(p, "")
	return selectorRE.ReplaceAllString(p, "")
}
