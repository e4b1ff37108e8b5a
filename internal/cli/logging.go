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

package cli

import (
	"io"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// NewLogger creates a logr.Logger backed by a logrus.Logger writing to w.
// logr V(1) maps to logrus debug.
func NewLogger(level logrus.Level, w io.Writer) (logr.Logger, error) {
	logrusLog := logrus.New()
	logrusLog.SetOutput(w)
	logrusLog.SetLevel(level)
	log := logrusr.New(logrusLog)
	return log, nil
}
