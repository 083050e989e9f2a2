// Package testlog records log entries so tests can assert on what a
// component logged.
package testlog

import (
	"sync"

	"ecodeli-dispatch/internal/logx"
)

// Entry is one recorded log call. Level is lower case: debug, info, warn, error.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Value returns the value of the first field named key.
func (e Entry) Value(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Recorder collects entries from every Logger it hands out. Safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger writing into r.
func (r *Recorder) Logger() logx.Logger {
	return recLogger{rec: r}
}

// Entries returns a snapshot of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// HasMsg reports whether msg was logged at level.
func (r *Recorder) HasMsg(level, msg string) bool {
	for _, e := range r.Entries() {
		if e.Level == level && e.Msg == msg {
			return true
		}
	}
	return false
}

// Count returns the number of entries at level.
func (r *Recorder) Count(level string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (r *Recorder) record(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
	r.mu.Unlock()
}

type recLogger struct {
	rec  *Recorder
	with []logx.Field
}

func (l recLogger) log(level, msg string, fields []logx.Field) {
	all := make([]logx.Field, 0, len(l.with)+len(fields))
	all = append(all, l.with...)
	all = append(all, fields...)
	l.rec.record(level, msg, all)
}

func (l recLogger) Debug(msg string, f ...logx.Field) { l.log("debug", msg, f) }
func (l recLogger) Info(msg string, f ...logx.Field)  { l.log("info", msg, f) }
func (l recLogger) Warn(msg string, f ...logx.Field)  { l.log("warn", msg, f) }
func (l recLogger) Error(msg string, f ...logx.Field) { l.log("error", msg, f) }

func (l recLogger) With(f ...logx.Field) logx.Logger {
	with := make([]logx.Field, 0, len(l.with)+len(f))
	with = append(with, l.with...)
	return recLogger{rec: l.rec, with: append(with, f...)}
}

func (l recLogger) Sync() error { return nil }
