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

// stack is a simple LIFO of strings, used for both the operand and operator
// stacks described in spec.md §4.5.
type stack struct {
	items []string
}

func (s *stack) push(v string) { s.items = append(s.items, v) }

func (s *stack) pop() (string, bool) {
	n := len(s.items)
	if n == 0 {
		return "", false
	}
	v := s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

func (s *stack) top() (string, bool) {
	n := len(s.items)
	if n == 0 {
		return "", false
	}
	return s.items[n-1], true
}

func (c *Compiler) pushOperator(name string) { c.operators.push(name) }

func (c *Compiler) popOperator() string {
	v, ok := c.operators.pop()
	if !ok {
		c.errorf("operand/operator stack underflow")
	}
	return v
}

// pushOperand pushes name onto the operand stack, auto-interning it as a
// constant symbol the first time a numeric or boolean literal is seen
// (idempotent for true/false, of which only one symbol each is ever kept).
func (c *Compiler) pushOperand(name string) {
	if isIntLiteral(name) && !c.sym.has(name) {
		c.insert(name, c.whichType(name), modeConstant, name, true, 1)
	} else if name == "true" && !c.sym.has(name) {
		c.insert(name, c.whichType(name), modeConstant, name, true, 1)
	} else if name == "false" && !c.sym.has(name) {
		c.insert(name, c.whichType(name), modeConstant, name, true, 1)
	}
	c.operands.push(name)
}

func (c *Compiler) popOperand() string {
	v, ok := c.operands.pop()
	if !ok {
		c.errorf("operand/operator stack underflow")
	}
	return v
}

// getTemp mints (or reuses) the next temporary name, allocating a fresh
// symbol table entry only the first time a given depth is reached.
func (c *Compiler) getTemp() string {
	c.tempNo++
	name := "T" + strconv.Itoa(c.tempNo)
	if c.tempNo > c.maxTempNo {
		c.insert(name, typeUnknown, modeVariable, "", false, 1)
		c.maxTempNo++
	}
	return name
}

func (c *Compiler) freeTemp() {
	c.tempNo--
	if c.tempNo < -1 {
		c.errorf("internal error: current temp number underflowed")
	}
}

func (c *Compiler) getLabel() string {
	c.labelNo++
	return "L" + strconv.Itoa(c.labelNo)
}
