package client

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

var quiet = log.New(io.Discard, "", 0)

func TestIPEchoClientParsesIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, http.MethodGet)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ip":"203.0.113.7"}`)
	}))
	defer srv.Close()

	ip, err := NewIPEchoClient(srv.URL, time.Second, quiet).Query(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, ip, "203.0.113.7")
}

func TestIPEchoClientSingleAttemptOnServerError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewIPEchoClient(srv.URL, time.Second, quiet).Query(context.Background())
	assert.ErrorContains(t, err, "status: 503")
	assert.Equal(t, hits.Load(), int32(1))
}

func TestIPEchoClientMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"address":"203.0.113.7"}`)
	}))
	defer srv.Close()

	_, err := NewIPEchoClient(srv.URL, time.Second, quiet).Query(context.Background())
	assert.ErrorContains(t, err, "no ip field")
}

func TestIPEchoClientBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>`)
	}))
	defer srv.Close()

	_, err := NewIPEchoClient(srv.URL, time.Second, quiet).Query(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestIPEchoClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewIPEchoClient(url, time.Second, quiet).Query(context.Background())
	assert.ErrorContains(t, err, "failed to reach")
}
