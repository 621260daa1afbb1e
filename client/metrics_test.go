package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	c := newTestClient(t, server.URL, func(cfg *Config) {
		cfg.Metrics = m
	})

	require.NoError(t, c.Save(context.Background()))
	require.NoError(t, c.Save(context.Background()))

	count := testutil.ToFloat64(m.requestsTotal.WithLabelValues("PUT", "200"))
	assert.Equal(t, float64(2), count)
}

func TestMetrics_RecordsTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	c := newTestClient(t, deadURL, func(cfg *Config) {
		cfg.Metrics = m
	})

	err := c.Save(context.Background())
	require.Error(t, err)

	count := testutil.ToFloat64(m.requestsTotal.WithLabelValues("PUT", "error"))
	assert.Equal(t, float64(1), count)
}

func TestMetrics_NilRecordsNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// No Metrics configured; the nil receiver must be a no-op.
	c := newTestClient(t, server.URL, nil)
	assert.NoError(t, c.Save(context.Background()))
}
