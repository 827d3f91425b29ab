// This file is part of stage2c - https://github.com/blearly/stage2c
//
// Copyright 2026 The stage2c Authors.
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

package compiler

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// objectWriter formats one fixed-column assembly line per call: a 6-column
// label field, a 4-column mnemonic field, a 9-column operand field, then a
// free-form comment (spec.md §4.8, §6).
type objectWriter struct {
	w   io.Writer
	err error
}

func newObjectWriter(w io.Writer) *objectWriter { return &objectWriter{w: w} }

// emit writes one object-code line. Once a write fails, emit skips every
// later write and o.err keeps that first wrapped error, matching
// ngaro/internal/ngi.ErrWriter's last-error-sticks behavior.
func (o *objectWriter) emit(label, mnemonic, operand, comment string) {
	if o.err != nil {
		return
	}
	_, err := fmt.Fprintf(o.w, "%-6s%-4s%-9s%s\n", label, mnemonic, operand, comment)
	if err != nil {
		o.err = errors.Wrap(err, "writing object file")
	}
}
