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
)

// compilerBanner names this compiler in the listing header (spec.md §6).
// The original student implementation this system is modeled on hardcoded
// its authors' names here; a generic banner is used instead.
const compilerBanner = "STAGE2 COMPILER"

func writeListingHeader(w io.Writer) {
	fmt.Fprintf(w, "STAGE2:  %s\n", compilerBanner)
	fmt.Fprint(w, "LINE NO.              SOURCE STATEMENT\n\n")
}

func writeListingTrailer(w io.Writer, err *Error) {
	if err == nil {
		fmt.Fprint(w, "\nCOMPILATION TERMINATED      0 ERRORS ENCOUNTERED\n")
		return
	}
	fmt.Fprintf(w, "\nError: Line %d: %s\n\nCOMPILATION TERMINATED      1 ERRORS ENCOUNTERED\n", err.Line, err.Msg)
}
