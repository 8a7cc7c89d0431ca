// Copyright 2025 the winsw authors
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

package diag

import "fmt"

// 🎯 Sink receives interpreter diagnostics. Every outcome of an
// interpretation pass is observable only through a Sink; there is no return
// code distinguishing partial from full success. Implementations must be
// safe for use from a single goroutine (the batch is sequential).
type Sink interface {
	// Info records a routine/progress event.
	Info(msg string)
	// Warn records an error or warning event.
	Warn(msg string)
}

// Infof writes a formatted routine event to s.
func Infof(s Sink, format string, args ...interface{}) {
	s.Info(fmt.Sprintf(format, args...))
}

// Warnf writes a formatted warning event to s.
func Warnf(s Sink, format string, args ...interface{}) {
	s.Warn(fmt.Sprintf(format, args...))
}

// 🔀 MultiSink fans every event out to each wrapped sink in order.
type MultiSink []Sink

func (m MultiSink) Info(msg string) {
	for _, s := range m {
		s.Info(msg)
	}
}

func (m MultiSink) Warn(msg string) {
	for _, s := range m {
		s.Warn(msg)
	}
}
