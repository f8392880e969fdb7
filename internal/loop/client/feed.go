package client

import (
	"sync"

	"go.uber.org/zap/zapcore"
)

// Feed is a zapcore.Core that keeps the most recent log messages so the HUD
// can show game events as they happen. Fields are dropped; only the message
// text is kept.
type Feed struct {
	zapcore.LevelEnabler

	mu    sync.Mutex
	size  int
	lines []string
}

// NewFeed creates a feed holding up to size messages at or above enab.
func NewFeed(size int, enab zapcore.LevelEnabler) *Feed {
	return &Feed{
		LevelEnabler: enab,
		size:         size,
		lines:        make([]string, 0, size),
	}
}

// With implements zapcore.Core. Fields are not shown in the feed, so the
// same core is returned.
func (f *Feed) With([]zapcore.Field) zapcore.Core {
	return f
}

// Check implements zapcore.Core.
func (f *Feed) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if f.Enabled(ent.Level) {
		return ce.AddCore(ent, f)
	}
	return ce
}

// Write implements zapcore.Core.
func (f *Feed) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	if f.size <= 0 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.lines) == f.size {
		copy(f.lines, f.lines[1:])
		f.lines = f.lines[:f.size-1]
	}
	f.lines = append(f.lines, ent.Message)
	return nil
}

// Sync implements zapcore.Core.
func (f *Feed) Sync() error {
	return nil
}

// Lines returns the kept messages, oldest first.
func (f *Feed) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

// Reset drops every kept message.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = f.lines[:0]
}

var _ zapcore.Core = (*Feed)(nil)
