package ports

// Logger defines the interface for logging.
// Info and Warn accept trailing key/value pairs in the log/slog convention.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(err error)
}
