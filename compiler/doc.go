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

// Package compiler implements a single-pass compiler for a small
// block-structured procedural language, translating source text directly
// into symbolic assembly for a single-accumulator target machine. There is
// no intermediate representation: the recursive-descent parser and the
// instruction emitter are fused, with two expression stacks and a handful
// of counters standing in for what would otherwise be an AST.
//
// A Compiler value owns all of that state (symbol table, operand/operator
// stacks, the accumulator shadow, temp/label counters) for the duration of
// one Compile call and is not safe for concurrent or repeated use.
package compiler
