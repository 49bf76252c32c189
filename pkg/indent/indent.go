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

// Package indent indents lines of text with a prefix.
package indent

import (
	"bytes"
	"io"
	"strings"
)

// String returns s with each line prefixed by prefix.
func String(prefix, s string) string {
	if prefix == "" || s == "" {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return prefix + strings.Join(lines, prefix)
}

// Bytes returns b with each line prefixed by prefix.
func Bytes(prefix, b []byte) []byte {
	if len(prefix) == 0 || len(b) == 0 {
		return b
	}
	lines := bytes.SplitAfter(b, []byte{'\n'})
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return append(append([]byte{}, prefix...), bytes.Join(lines, prefix)...)
}

// NewWriter returns an io.Writer that writes to w, prefixing each line
// with prefix.  The count returned by Write is the number of bytes of
// the caller's data consumed, not the number of bytes, prefixes
// included, written to w.
func NewWriter(w io.Writer, prefix string) io.Writer {
	if prefix == "" {
		return w
	}
	return &indenter{w: w, prefix: []byte(prefix), bol: true}
}

type indenter struct {
	w      io.Writer
	prefix []byte
	bol    bool // at beginning of line
}

func (in *indenter) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	// Expand buf into out, inserting prefix at each beginning of line.
	out := make([]byte, 0, len(buf)+len(in.prefix))
	bol := in.bol
	for _, c := range buf {
		if bol {
			out = append(out, in.prefix...)
			bol = false
		}
		out = append(out, c)
		if c == '\n' {
			bol = true
		}
	}

	n, err := in.w.Write(out)

	// Map the n bytes of out actually written back into the number of
	// bytes of buf consumed.  Prefix bytes do not count as consumed; a
	// partially written prefix means its line was not reached at all.
	consumed := 0
	bol = in.bol
	for _, c := range buf {
		if bol {
			if n < len(in.prefix) {
				break
			}
			n -= len(in.prefix)
			bol = false
		}
		if n < 1 {
			break
		}
		n--
		consumed++
		if c == '\n' {
			bol = true
		}
	}
	in.bol = bol
	return consumed, err
}
