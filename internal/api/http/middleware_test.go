package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	m := NewTimeoutMiddleware(time.Millisecond)
	h := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)

		select {
		case <-r.Context().Done():
		default:
			t.Error("request context not canceled")
		}
	}

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	m(h)(nil, r)
}

func TestNewRequestLogMiddleware(t *testing.T) {
	t.Parallel()

	l, hook := test.NewNullLogger()
	m := NewRequestLogMiddleware(l)
	h := m(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generated request id", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/api/insights", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("request id from header", func(t *testing.T) {
		hook.Reset()

		r, _ := http.NewRequest(http.MethodGet, "/api/insights", nil)
		r.Header.Set("X-Request-Id", "abc")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, "abc", w.Header().Get("X-Request-Id"))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "abc", entry.Data["request_id"])
		assert.Equal(t, http.StatusTeapot, entry.Data["status"])
		assert.Equal(t, "/api/insights", entry.Data["path"])
	})
}
