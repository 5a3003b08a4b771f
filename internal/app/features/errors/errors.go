// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/memberhub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// ErrorLogger pairs logging with the JSON error responses handlers send.
// The log entry carries the diagnostic detail; the response body is only
// ever {"message": ...} with the mapped status code.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger writing to the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

func (e *ErrorLogger) logIt(r *http.Request, level, logMsg string, err error) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	switch level {
	case "warn":
		e.log.Warn(logMsg, fields...)
	default:
		e.log.Error(logMsg, fields...)
	}
}

// LogBadRequest responds 400 with userMsg and logs the detail.
// Used for missing required fields and unparseable input.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.logIt(r, "warn", logMsg, err)
	httpjson.WriteMessage(w, http.StatusBadRequest, userMsg)
}

// LogUnauthorized responds 401 with userMsg and logs the detail.
// Used for failed credential checks; the log never includes the password.
func (e *ErrorLogger) LogUnauthorized(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.logIt(r, "warn", logMsg, err)
	httpjson.WriteMessage(w, http.StatusUnauthorized, userMsg)
}

// LogNotFound responds 404 with userMsg and logs the detail.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.logIt(r, "warn", logMsg, err)
	httpjson.WriteMessage(w, http.StatusNotFound, userMsg)
}

// LogServerError responds 500 with a generic message and logs the detail.
// Unexpected store or service failures all funnel through here; callers
// never leak the underlying error to the client.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	e.logIt(r, "error", logMsg, err)
	httpjson.WriteMessage(w, http.StatusInternalServerError, "Server error")
}
