package interfaces

// Logger is the narrow structured-logging contract every component takes.
// Implementations live in internal/logging (JSON stdout during
// development, zap in the daemon); components never construct their own
// backend and derive scoped children via With.
type Logger interface {
	// Debug logs at debug level.
	Debug(msg string, fields ...Field)

	// Info logs at info level.
	Info(msg string, fields ...Field)

	// Warn logs at warn level.
	Warn(msg string, fields ...Field)

	// Error logs at error level.
	Error(msg string, fields ...Field)

	// With returns a child logger carrying fields on every entry.
	With(fields ...Field) Logger
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}
