package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunnu1028/kkutu-korea-hack/internal/testutil"
)

func TestLoggingAssignsRequestID(t *testing.T) {
	h := Logging(testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "given-id", rr.Header().Get(RequestIDHeader))
}

func TestRecoveryHandlesPanic(t *testing.T) {
	h := Recovery(testutil.NopLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() { h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil)) })
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRecoveryUsesPanicHandler(t *testing.T) {
	var got any
	h := Recovery(testutil.NopLogger(), func(w http.ResponseWriter, r *http.Request, recovered any) {
		got = recovered
		w.WriteHeader(http.StatusServiceUnavailable)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "boom", got)
}

func TestRecoveryLogsRouteTemplate(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	r := mux.NewRouter()
	r.Use(Recovery(logger, nil))
	r.HandleFunc("/words/{word}", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/words/"+url.PathEscape("사과"), nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "handler panicked", entry["msg"])
	assert.Equal(t, "/words/{word}", entry["route"])
	assert.Equal(t, "api", entry["component"])
}

func TestRecoveryReraisesAbort(t *testing.T) {
	h := Recovery(testutil.NopLogger(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
