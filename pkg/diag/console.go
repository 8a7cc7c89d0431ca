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

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🖥️ ConsoleSink renders events to a console writer and mirrors them into a
// zerolog logger for structured output.
type ConsoleSink struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 NewConsoleSink creates a console sink writing human-readable lines to
// console and structured events to zlog.
func NewConsoleSink(console io.Writer, zlog zerolog.Logger) *ConsoleSink {
	return &ConsoleSink{
		zlog:    zlog,
		console: console,
	}
}

// 📝 Info logs a routine event
func (s *ConsoleSink) Info(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.console, "%s %s\n", color.New(color.FgCyan).Sprint("•"), msg)
	s.zlog.Info().Msg(msg)
}

// 📝 Warn logs an error or warning event
func (s *ConsoleSink) Warn(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.console, "%s %s\n", color.New(color.FgYellow).Sprint("⚠"), color.New(color.FgYellow).Sprint(msg))
	s.zlog.Warn().Msg(msg)
}
