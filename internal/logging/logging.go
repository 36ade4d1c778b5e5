// Package logging provides the implementations behind the
// interfaces.Logger contract: a no-op logger, a JSON-lines stdout logger
// for development, and a zap-backed production logger (zap.go).
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/raysh454/linkscope/internal/interfaces"
)

// Logger and Field alias the interfaces package so callers can import a
// single package for both the contract and the implementations.
type (
	Logger = interfaces.Logger
	Field  = interfaces.Field
)

// NopLogger discards everything. The CLI uses it in -json mode so log
// lines never mix with the export document on stdout.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (NopLogger) Debug(string, ...interfaces.Field) {}
func (NopLogger) Info(string, ...interfaces.Field)  {}
func (NopLogger) Warn(string, ...interfaces.Field)  {}
func (NopLogger) Error(string, ...interfaces.Field) {}
func (n NopLogger) With(...interfaces.Field) interfaces.Logger {
	return n
}

// StdoutLogger writes one JSON object per entry. Child loggers from With
// carry their accumulated fields on every entry.
type StdoutLogger struct {
	out    io.Writer
	fields []interfaces.Field
}

// NewStdoutLogger creates a StdoutLogger writing to os.Stdout. component is
// optional and becomes a persistent field when non-empty.
func NewStdoutLogger(component string) *StdoutLogger {
	l := &StdoutLogger{out: os.Stdout}
	if component != "" {
		l.fields = []interfaces.Field{{Key: "component", Value: component}}
	}
	return l
}

func (s *StdoutLogger) log(level, msg string, fields []interfaces.Field) {
	entry := make(map[string]any, len(s.fields)+len(fields)+3)
	for _, f := range s.fields {
		entry[f.Key] = f.Value
	}
	for _, f := range fields {
		entry[f.Key] = f.Value
	}
	entry["level"] = level
	entry["msg"] = msg
	entry["time"] = time.Now().UTC().Format(time.RFC3339)

	enc, err := json.Marshal(entry)
	if err != nil {
		// Fallback plain formatting if a field value can't be marshaled.
		fmt.Fprintf(s.out, "%s %s\n", level, msg)
		return
	}
	fmt.Fprintln(s.out, string(enc))
}

func (s *StdoutLogger) Debug(msg string, fields ...interfaces.Field) {
	s.log("debug", msg, fields)
}

func (s *StdoutLogger) Info(msg string, fields ...interfaces.Field) {
	s.log("info", msg, fields)
}

func (s *StdoutLogger) Warn(msg string, fields ...interfaces.Field) {
	s.log("warn", msg, fields)
}

func (s *StdoutLogger) Error(msg string, fields ...interfaces.Field) {
	s.log("error", msg, fields)
}

func (s *StdoutLogger) With(fields ...interfaces.Field) interfaces.Logger {
	child := &StdoutLogger{out: s.out}
	child.fields = append(append([]interfaces.Field{}, s.fields...), fields...)
	return child
}
