package wirelog

// Logger is the interface applications implement to receive exchanges.
// Pass NoopLogger to disable recording.
type Logger interface {
	// Log records an exchange. Implementations must be safe for
	// concurrent use and should return quickly; blocking stalls requests.
	Log(ex Exchange)
}

// NoopLogger discards all exchanges. Usable as a zero value.
type NoopLogger struct{}

// Log discards the exchange.
func (NoopLogger) Log(Exchange) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

// MultiLogger sends exchanges to multiple loggers, e.g. a file log plus
// console mirroring via SlogAdapter.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger over the given loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log sends the exchange to all configured loggers.
func (m *MultiLogger) Log(ex Exchange) {
	for _, l := range m.loggers {
		l.Log(ex)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
