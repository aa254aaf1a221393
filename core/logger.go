package core

// Logger is the app-wide logging contract. Implementations may ship
// Warn/Error/Fatal entries to an external error tracker; extra args are
// attached as context.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
