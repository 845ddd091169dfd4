package ports

// Logger is the narrow logging surface the core and its adapters depend
// on. Implementations decide format (pretty, JSON) and destination; the
// core only ever reports informational progress and escalation-worthy
// errors, never raw fmt output.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs informational progress, e.g. one line per processed
	// target.
	Info(msg string)

	// Warn logs a non-fatal condition worth surfacing, e.g. a plugin
	// expansion that needed several iterations to converge.
	Warn(msg string)

	// Error logs a fatal condition. Implementations should unwrap a
	// zerr chain into a readable "caused by" trail where possible.
	Error(err error)
}
