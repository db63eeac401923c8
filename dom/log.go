package dom

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger used to report conversion failures and missing
// or mistyped object fields, and returns the previous logger. If lg == nil,
// diagnostics are discarded. SetLogger is not safe for concurrent use with
// other functions of this package.
func SetLogger(lg *zap.Logger) *zap.Logger {
	old := logger
	if lg == nil {
		lg = zap.NewNop()
	}
	logger = lg
	return old
}

func logMismatch(msg string, want Kind, got Value, fields ...zap.Field) {
	logger.Debug(msg, append(fields,
		zap.Stringer("want", want),
		zap.Stringer("got", KindOf(got)),
	)...)
}
