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

// Command stage2c compiles one source file into a listing file and an
// object file.
//
// Usage:
//
//	stage2c [-trace] source.src listing.lst object.obj
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/blearly/stage2c/compiler"
)

// tracingWriter echoes every write to trace in addition to passing it
// through to w, backing the -trace flag.
type tracingWriter struct {
	w     io.Writer
	trace io.Writer
}

func (t *tracingWriter) Write(p []byte) (int, error) {
	t.trace.Write(p)
	return t.w.Write(p)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-trace] source listing object\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	trace := flag.Bool("trace", false, "echo each emitted object-code line to stderr as it is produced")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(1)
	}

	sourcePath, listingPath, objectPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	src, err := os.Open(sourcePath)
	if err != nil {
		exitOn(errors.Wrap(err, "opening source file"), *trace)
	}
	defer src.Close()

	lst, err := os.Create(listingPath)
	if err != nil {
		exitOn(errors.Wrap(err, "creating listing file"), *trace)
	}
	defer lst.Close()

	obj, err := os.Create(objectPath)
	if err != nil {
		exitOn(errors.Wrap(err, "creating object file"), *trace)
	}
	defer obj.Close()

	var objectOut io.Writer = obj
	if *trace {
		objectOut = &tracingWriter{w: obj, trace: os.Stderr}
	}

	if err := compiler.Compile(src, lst, objectOut); err != nil {
		exitOn(err, *trace)
	}
}

// exitOn reports err and exits 1. With -trace, the full wrapped error
// chain is printed; otherwise only the message of its underlying cause
// (errors.Cause) is, matching
// ngaro/cmd/retro/main.go's debug-gated atExit helper.
func exitOn(err error, trace bool) {
	if trace {
		fmt.Fprintf(os.Stderr, "stage2c: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "stage2c: %v\n", errors.Cause(err))
	}
	os.Exit(1)
}
