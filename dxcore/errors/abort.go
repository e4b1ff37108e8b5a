/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errors

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// ExitInvalidArgument is the process exit status used by the default abort
// handler. It is the value of EINVAL on Linux.
const ExitInvalidArgument = 22

// Report describes a fatal abort: where it was raised and why.
type Report struct {
	// File is the base name of the source file of the reported frame.
	File string

	// Line is the line number of the reported frame.
	Line int

	// Function is the fully qualified name of the reported function.
	Function string

	// Message is the text passed to Abort.
	Message string
}

// String formats the report as
//
//	"{File}({Line}) `{Function}`: {Message}"
//
// When the location could not be resolved, only the message is returned.
func (r Report) String() string {
	if r.File == "" {
		return r.Message
	}
	return fmt.Sprintf("%s(%d) `%s`: %s", r.File, r.Line, r.Function, r.Message)
}

// Handler receives abort reports. The default handler writes the report to
// stderr and exits the process with ExitInvalidArgument.
type Handler func(Report)

var (
	handlerMu sync.RWMutex
	handler   Handler = exitHandler
)

func exitHandler(r Report) {
	fmt.Fprintln(os.Stderr, r.String())
	os.Exit(ExitInvalidArgument)
}

// SetHandler replaces the abort handler and returns a function restoring the
// previous one. Passing nil installs the default exit handler.
//
// This exists for tests and for embedding programs that want to route the
// report through their own logger before exiting. A handler that returns
// does not resume the aborted operation: Abort panics with the Report.
func SetHandler(h Handler) (restore func()) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	if h == nil {
		h = exitHandler
	}
	handler = h
	return func() {
		handlerMu.Lock()
		defer handlerMu.Unlock()
		handler = prev
	}
}

// Abort reports a fatal precondition violation at the caller's location and
// terminates. There is no recovery path: Abort never returns.
func Abort(message string) {
	AbortDepth(1, message)
}

// AbortDepth is like Abort but attributes the report to a frame further up the
// stack. A depth of 0 is the caller of AbortDepth; library code uses 1 to blame
// its own caller.
func AbortDepth(depth int, message string) {
	r := Report{Message: message}
	if pc, file, line, ok := runtime.Caller(depth + 1); ok {
		r.File = filepath.Base(file)
		r.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			r.Function = fn.Name()
		}
	}

	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()

	h(r)
	panic(r)
}
