package logger

// Logger defines the logging interface.
//
// The first argument is the message. When the remaining arguments come in
// key/value pairs with string keys they are emitted as structured attributes,
// otherwise everything is concatenated into the message.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
	// With returns a Logger that adds the given key/value pairs to every record.
	With(args ...interface{}) Logger
}
