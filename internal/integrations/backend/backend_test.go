package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/config"
	"github.com/Dan9191/custlysis-dashboard/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(&config.Config{BackendURL: srv.URL + "/api", RequestTimeout: 2 * time.Second}, log)
}

func TestClient_GetDecodesJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`[{"customerId":1,"name":"Asha"}]`))
	})

	var out []map[string]any
	require.NoError(t, c.Get(context.Background(), "/customers", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Asha", out[0]["name"])
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Savings", body["accountType"])
		assert.Nil(t, body["customerId"])
		w.Write([]byte(`{"accountId":9}`))
	})

	var out map[string]any
	err := c.Post(context.Background(), "/accounts", map[string]any{"accountType": "Savings", "customerId": nil}, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 9, out["accountId"])
}

func TestClient_NonSuccessStatusIsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := c.Get(context.Background(), "/products", nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "HTTP error! status: 500", se.Error())
}

func TestClient_EmptyBodyOnDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/4", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, c.Delete(context.Background(), "/products/4"))
}

func TestClient_NetworkFailure(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewClient(&config.Config{BackendURL: "http://127.0.0.1:1", RequestTimeout: time.Second}, log)

	err := c.Get(context.Background(), "/customers", nil)
	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestClient_InFlightGaugeIsAlwaysCleared(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/bad" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	})

	before := testutil.ToFloat64(metrics.BackendInFlight)
	_ = c.Get(context.Background(), "/ok", nil)
	_ = c.Get(context.Background(), "/bad", nil)
	assert.Equal(t, before, testutil.ToFloat64(metrics.BackendInFlight))
}

func TestClient_Ping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "client error still reachable", status: http.StatusNotFound},
		{name: "server error", status: http.StatusServiceUnavailable, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/", r.URL.Path)
				w.WriteHeader(tt.status)
			})
			err := c.Ping(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResourceOf(t *testing.T) {
	assert.Equal(t, "customers", resourceOf("/customers"))
	assert.Equal(t, "accounts", resourceOf("/accounts/12"))
	assert.Equal(t, "recommendations", resourceOf("/recommendations/detailed"))
	assert.Equal(t, "root", resourceOf("/"))
}
