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
	"bytes"
	"strings"
	"testing"
)

func newTestCompiler(t *testing.T) *Compiler {
	t.Helper()
	var listing, object bytes.Buffer
	return newCompiler(strings.NewReader(""), &listing, &object)
}

func TestInsertAndFind(t *testing.T) {
	c := newTestCompiler(t)
	c.insert("x,y,z", typeInteger, modeVariable, "", true, 1)

	for _, name := range []string{"x", "y", "z"} {
		if !c.sym.has(name) {
			t.Fatalf("expected %q to be present", name)
		}
	}
	idx := c.findIndex("y")
	if c.sym.entries[idx].internalName != "I1" {
		t.Fatalf("expected y to mint I1, got %q", c.sym.entries[idx].internalName)
	}
}

func TestInsertDuplicateIsAnError(t *testing.T) {
	c := newTestCompiler(t)
	c.insert("x", typeInteger, modeVariable, "", true, 1)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic on duplicate insertion")
		}
	}()
	c.insert("x", typeInteger, modeVariable, "", true, 1)
}

func TestGenInternalNameCountersAreIndependentPerType(t *testing.T) {
	c := newTestCompiler(t)
	c.insert("i1,i2", typeInteger, modeVariable, "", true, 1)
	c.insert("b1", typeBoolean, modeVariable, "", true, 1)
	c.insert("i3", typeInteger, modeVariable, "", true, 1)

	want := map[string]string{"i1": "I0", "i2": "I1", "b1": "B0", "i3": "I2"}
	for name, internal := range want {
		idx := c.findIndex(name)
		if got := c.sym.entries[idx].internalName; got != internal {
			t.Errorf("%q: got internal name %q, want %q", name, got, internal)
		}
	}
}

func TestNameTruncation(t *testing.T) {
	c := newTestCompiler(t)
	long := "abcdefghijklmnopqrstuvwxyz"
	c.insert(long, typeInteger, modeVariable, "", true, 1)
	idx := c.findIndex(long[:maxNameLength])
	if len(c.sym.entries[idx].externalName) != maxNameLength {
		t.Fatalf("expected external name truncated to %d chars, got %q", maxNameLength, c.sym.entries[idx].externalName)
	}
}

func TestLowercaseTrueFalseExternalNameRewrite(t *testing.T) {
	c := newTestCompiler(t)
	c.insert("LOWERCASETRUE", typeBoolean, modeConstant, "true", true, 1)
	idx := c.findIndex("true")
	if c.sym.entries[idx].internalName != "LOWERCASETRUE" {
		t.Fatalf("expected internal name LOWERCASETRUE, got %q", c.sym.entries[idx].internalName)
	}
	if c.sym.entries[idx].value != "1" {
		t.Fatalf("expected normalized value \"1\", got %q", c.sym.entries[idx].value)
	}
}

func TestSymbolTableOverflow(t *testing.T) {
	c := newTestCompiler(t)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic on table overflow")
		}
	}()
	for i := 0; i < maxSymbolTableSize+1; i++ {
		c.insert("v"+itoa(i), typeInteger, modeVariable, "", true, 1)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
