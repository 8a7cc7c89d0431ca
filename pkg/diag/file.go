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
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 🗄️ FileSink writes structured events to a size-capped rolling log file.
// Supervised services run headless, so the wrapper log is often the only
// place an interpretation pass is visible.
type FileSink struct {
	zlog   zerolog.Logger
	closer *lumberjack.Logger
}

// 🏭 NewFileSink creates a rolling-file sink at path. maxSizeMB caps each
// log file before rotation; maxBackups bounds how many rotated files are
// kept. Zero values fall back to lumberjack defaults.
func NewFileSink(path string, maxSizeMB, maxBackups int) *FileSink {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
	return &FileSink{
		zlog:   zerolog.New(w).With().Timestamp().Logger(),
		closer: w,
	}
}

// 📝 Info logs a routine event
func (s *FileSink) Info(msg string) {
	s.zlog.Info().Msg(msg)
}

// 📝 Warn logs an error or warning event
func (s *FileSink) Warn(msg string) {
	s.zlog.Warn().Msg(msg)
}

// Close flushes and closes the underlying log file.
func (s *FileSink) Close() error {
	return s.closer.Close()
}
