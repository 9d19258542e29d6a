package core

// Logger is the logging sink used by the renderer for progress output
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything written to it
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
