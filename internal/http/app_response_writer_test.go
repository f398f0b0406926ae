package http

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"telemetry-dashboard/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Empty(t, appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("DSH_1000", "invalid time range", nil))
	assert.Equal(t, "DSH_1000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Empty(t, appWriter.ErrorCode())
}

func TestAppResponseWriter_Status(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusAccepted)
	_, err := appWriter.Write([]byte(`{"rpm":1800}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, appWriter.Status())
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, `{"rpm":1800}`, rr.Body.String())
}

func TestAppResponseWriter_Hijack(t *testing.T) {
	t.Parallel()

	t.Run("unsupported writer", func(t *testing.T) {
		t.Parallel()
		appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)

		_, _, err := appWriter.Hijack()

		assert.ErrorIs(t, err, errHijackUnsupported)
		assert.Zero(t, appWriter.Status())
	})

	t.Run("hijacked connection reports switching protocols", func(t *testing.T) {
		t.Parallel()
		server, client := net.Pipe()
		t.Cleanup(func() {
			server.Close()
			client.Close()
		})
		appWriter := newAppResponseWriter(&hijackableRecorder{ResponseRecorder: httptest.NewRecorder(), conn: server}, 1)

		conn, rw, err := appWriter.Hijack()

		require.NoError(t, err)
		assert.Same(t, server, conn)
		assert.NotNil(t, rw)
		assert.Equal(t, http.StatusSwitchingProtocols, appWriter.Status())
	})
}

type hijackableRecorder struct {
	*httptest.ResponseRecorder
	conn net.Conn
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return h.conn, bufio.NewReadWriter(bufio.NewReader(h.conn), bufio.NewWriter(h.conn)), nil
}
