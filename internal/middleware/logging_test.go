package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := WithRequestLogging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/algorithms?x=1", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/algorithms?x=1", fields["uri"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, 5, fields["size"])
}

func TestWithRequestLogging_ImplicitOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := WithRequestLogging(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("OPTIONS", "/algorithms", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest("GET", "/algorithms", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
