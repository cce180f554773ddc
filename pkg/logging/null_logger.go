package logging

// NullLogger discards all log output. It is the default logger
// of the assertion engine.
type NullLogger struct{}

// Info is a no-op.
func (NullLogger) Info(_ string, _ ...Field) {}

// Warn is a no-op.
func (NullLogger) Warn(_ string, _ ...Field) {}

// Error is a no-op.
func (NullLogger) Error(_ string, _ ...Field) {}

// Debug is a no-op.
func (NullLogger) Debug(_ string, _ ...Field) {}

// WithFields returns the NullLogger itself.
func (n NullLogger) WithFields(_ ...Field) Logger { return n }

// Close is a no-op.
func (NullLogger) Close() error { return nil }
