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

// Error is the compiler's single domain error kind: a source line number
// plus a message, matching the position/message pairs the listing trailer
// reports (spec.md §6, §7). The compiler aborts on the first Error raised;
// there is no recovery.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Compiler holds every piece of mutable state a single compilation threads
// through the lexer, parser, and emitter: the symbol table, the two
// expression stacks, the accumulator shadow, and the temp/label counters.
// It is not safe for concurrent or repeated use — construct one per
// Compile call.
type Compiler struct {
	lx *Lexer
	ch string // current token, analogous to the single-token lookahead slot

	sym       *SymbolTable
	operands  *stack
	operators *stack

	accReg string // current_a_register: external name resident in the A-register, or ""

	tempNo    int
	maxTempNo int
	labelNo   int

	object *objectWriter
}

func newCompiler(src io.Reader, listing, object io.Writer) *Compiler {
	c := &Compiler{
		sym:       newSymbolTable(),
		operands:  &stack{},
		operators: &stack{},
		tempNo:    -1,
		maxTempNo: -1,
		labelNo:   0,
	}
	c.lx = newLexer(newCharSource(src, listing))
	c.object = newObjectWriter(object)
	return c
}

// next advances the lookahead token and returns it, mirroring the
// NextToken/token coupling in the original implementation.
func (c *Compiler) next() string {
	c.ch = c.lx.next()
	return c.ch
}

// errorf raises a fail-stop compile error at the current source line. It
// never returns: callers rely on the panic unwinding to Compile's recover.
func (c *Compiler) errorf(format string, args ...interface{}) {
	panic(&Error{Line: c.lx.line(), Msg: fmt.Sprintf(format, args...)})
}

// Compile translates src into a listing (written to listing) and an object
// program (written to object). It returns nil on success, or the *Error
// that aborted compilation. A failure reading src is reported as a *Error
// like any other compile error; a failure writing the object program is
// returned wrapped with github.com/pkg/errors.
func Compile(src io.Reader, listing, object io.Writer) (err error) {
	c := newCompiler(src, listing, object)
	writeListingHeader(listing)

	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			writeListingTrailer(listing, ce)
			err = ce
		}
	}()

	if c.next() != "program" {
		c.errorf(`keyword "program" expected`)
	}
	c.parseProg()
	writeListingTrailer(listing, nil)
	return c.object.err
}

// CompileFiles is a convenience wrapper around Compile for callers working
// with file paths rather than already-open readers/writers, wrapping I/O
// errors with github.com/pkg/errors the way cmd/retro/main.go wraps image
// load failures.
func CompileFiles(sourcePath, listingPath, objectPath string) error {
	src, err := openFile(sourcePath)
	if err != nil {
		return errors.Wrap(err, "opening source file")
	}
	defer src.Close()

	lst, err := createFile(listingPath)
	if err != nil {
		return errors.Wrap(err, "creating listing file")
	}
	defer lst.Close()

	obj, err := createFile(objectPath)
	if err != nil {
		return errors.Wrap(err, "creating object file")
	}
	defer obj.Close()

	return Compile(src, lst, obj)
}
