package http

import (
	"bufio"
	"errors"
	"net"
	"net/http"

	"telemetry-dashboard/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

var errHijackUnsupported = errors.New("response writer does not support hijacking")

// appResponseWriter wraps http.ResponseWriter so middleware can read the status and
// the service error after the handler ran. It forwards Hijack for websocket upgrades.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	hijacked bool
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

func (w *appResponseWriter) Hijacked() bool {
	return w.hijacked
}

// Status reports 101 once the connection has been hijacked.
func (w *appResponseWriter) Status() int {
	if w.hijacked {
		return http.StatusSwitchingProtocols
	}
	return w.WrapResponseWriter.Status()
}

func (w *appResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.WrapResponseWriter.Unwrap().(http.Hijacker)
	if !ok {
		return nil, nil, errHijackUnsupported
	}
	conn, rw, err := hijacker.Hijack()
	if err == nil {
		w.hijacked = true
	}
	return conn, rw, err
}
