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

import "strconv"

// maxSymbolTableSize mirrors the fixed 256-entry table in the original
// implementation; exceeding it is a TableOverflow compile error.
const maxSymbolTableSize = 256

// maxNameLength is the truncation width applied to every external name and
// constant value.
const maxNameLength = 15

type dataType int

const (
	typeInteger dataType = iota
	typeBoolean
	typeProgName
	typeUnknown
)

type storageMode int

const (
	modeVariable storageMode = iota
	modeConstant
)

type symbolEntry struct {
	internalName string
	externalName string
	dataType     dataType
	mode         storageMode
	value        string
	alloc        bool
	units        int
}

// SymbolTable is the compiler's flat, insertion-ordered symbol table. It
// supports no scoping: every name in a compilation unit lives in one table,
// per spec.
type SymbolTable struct {
	entries      []symbolEntry
	integerCount int
	booleanCount int
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make([]symbolEntry, 0, maxSymbolTableSize)}
}

func (s *SymbolTable) find(name string) (int, bool) {
	for i := range s.entries {
		if s.entries[i].externalName == name {
			return i, true
		}
	}
	return -1, false
}

func (s *SymbolTable) has(name string) bool {
	_, ok := s.find(name)
	return ok
}

func (s *SymbolTable) findIndexOfTrue() int {
	for i := range s.entries {
		if s.entries[i].dataType == typeBoolean && s.entries[i].value == "1" {
			return i
		}
	}
	return -1
}

func (s *SymbolTable) findIndexOfFalse() int {
	for i := range s.entries {
		if s.entries[i].dataType == typeBoolean && s.entries[i].value == "0" {
			return i
		}
	}
	return -1
}

// genInternalName mints the next compiler-internal label for the given type,
// using independent monotonic counters per type (see SPEC_FULL.md §12.1).
func (s *SymbolTable) genInternalName(dt dataType) string {
	switch dt {
	case typeProgName:
		return "P0"
	case typeBoolean:
		n := s.booleanCount
		s.booleanCount++
		return "B" + strconv.Itoa(n)
	default:
		n := s.integerCount
		s.integerCount++
		return "I" + strconv.Itoa(n)
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func splitNames(s string) []string {
	var names []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ',' || s[i] == ' ' {
			if start >= 0 {
				names = append(names, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		names = append(names, s[start:])
	}
	return names
}

// insert adds one or more names (comma- or space-separated in externalNames)
// to the symbol table with the given type/mode/value/alloc/units, minting
// internal names and normalizing boolean literals as described in
// spec.md §4.3.
func (c *Compiler) insert(externalNames string, dt dataType, md storageMode, value string, alloc bool, units int) {
	switch value {
	case "true":
		value = "1"
	case "false":
		value = "0"
	}
	value = truncate(value, maxNameLength)

	for _, rawName := range splitNames(externalNames) {
		name := truncate(rawName, maxNameLength)

		if c.sym.has(name) {
			c.errorf("multiple name definition: %q", name)
		}
		if len(c.sym.entries) >= maxSymbolTableSize {
			c.errorf("symbol table overflow")
		}
		if !(isNonKeyID(name) || isTempName(name) || isIntLiteral(name) || isBoolLiteral(name) ||
			name == "ZERO" || name == "TRUE" || name == "FALSE" ||
			name == "LOWERCASETRUE" || name == "LOWERCASEFALSE") {
			c.errorf("illegal use of keyword as identifier: %q", name)
		}

		var internalName string
		switch {
		case name == "TRUE":
			internalName = "TRUE"
		case name == "FALSE":
			internalName = "FALS"
		case name == "ZERO":
			internalName = "ZERO"
		case name != "" && name[0] >= 'A' && name[0] <= 'Z':
			internalName = name
		default:
			internalName = c.sym.genInternalName(dt)
		}

		externalName := name
		switch name {
		case "LOWERCASETRUE":
			externalName = "true"
		case "LOWERCASEFALSE":
			externalName = "false"
		}

		c.sym.entries = append(c.sym.entries, symbolEntry{
			internalName: internalName,
			externalName: externalName,
			dataType:     dt,
			mode:         md,
			value:        value,
			alloc:        alloc,
			units:        units,
		})
	}
}

// whichType reports the type of an operand: a literal, or any defined name
// (variable, constant, or temp). Constant-expression validation in
// parseConstStmts relies on this running before the "var" section is
// parsed, so no variable can yet be in scope there — the same lookup
// serves both that restricted context and the emitters' general operand
// type-checking.
func (c *Compiler) whichType(name string) dataType {
	if isIntLiteral(name) {
		return typeInteger
	}
	if isBoolLiteral(name) {
		return typeBoolean
	}
	idx, ok := c.sym.find(name)
	if !ok {
		c.errorf("reference to undefined name: %q", name)
	}
	return c.sym.entries[idx].dataType
}

func (c *Compiler) whichValue(name string) string {
	if isIntLiteral(name) || isBoolLiteral(name) {
		return name
	}
	idx, ok := c.sym.find(name)
	if !ok || c.sym.entries[idx].mode != modeConstant {
		c.errorf("reference to undefined constant: %q", name)
	}
	return c.sym.entries[idx].value
}

func (c *Compiler) whichMode(name string) storageMode {
	idx, ok := c.sym.find(name)
	if !ok {
		c.errorf("reference to undefined constant: %q", name)
	}
	return c.sym.entries[idx].mode
}

// findIndex returns the symbol table index of name, or fails the
// compilation if name is undefined. There is no path by which a caller
// observes an invalid index, resolving the ambiguity noted in spec.md §9.
func (c *Compiler) findIndex(name string) int {
	idx, ok := c.sym.find(name)
	if !ok {
		c.errorf("reference to undefined name: %q", name)
	}
	return idx
}
