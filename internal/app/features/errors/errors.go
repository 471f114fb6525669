// internal/app/features/errors/errors.go
package errors

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/bankadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/bankadmin/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ErrorLogger logs a handler failure and renders the matching error page in
// one call, so handlers never forget one half of the pair.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

// LogBadRequest logs at warn and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(logMsg, requestFields(r, err)...)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogNotFound logs at info and renders a 404 page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Info(logMsg, requestFields(r, err)...)
	RenderNotFound(w, r, userMsg, backURL)
}

// LogServerError logs at error and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg, requestFields(r, err)...)
	RenderServerError(w, r, userMsg, backURL)
}

func requestFields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message template.HTML
}

func newPageData(r *http.Request, status int, title, msg, backURL string) pageData {
	if backURL == "" {
		backURL = "/"
	}
	base := viewdata.NewBaseVM(r, title, backURL)
	return pageData{
		BaseVM:  base,
		Status:  status,
		Message: htmlsanitize.Message("%s", msg),
	}
}
