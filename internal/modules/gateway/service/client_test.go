package service_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ledgerdesk/internal/modules/gateway/domain"
	gatewayout "ledgerdesk/internal/modules/gateway/port/out"
	"ledgerdesk/internal/modules/gateway/service"
	"ledgerdesk/internal/platform/clock"
	apperrors "ledgerdesk/internal/platform/errors"
)

type fixedID struct{}

func (fixedID) New() string { return "req-1" }

func newClient(baseURL string, token string) *service.Client {
	tokens := gatewayout.TokenSourceFunc(func() (string, bool) { return token, token != "" })
	return service.NewClient(baseURL, http.DefaultClient, tokens, fixedID{}, clock.Fixed(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), zerolog.Nop())
}

func TestDoAttachesTokenAndJSONBody(t *testing.T) {
	t.Parallel()
	var seen *http.Request
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	raw, err := newClient(srv.URL+"/api/", "tok-a").Do(context.Background(), domain.MethodPost, "/invoices", map[string]any{"title": "Rent"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1}`, string(raw))
	require.Equal(t, "/api/invoices", seen.URL.Path)
	require.Equal(t, http.MethodPost, seen.Method)
	require.Equal(t, "Bearer tok-a", seen.Header.Get("Authorization"))
	require.Equal(t, "application/json", seen.Header.Get("Content-Type"))
	require.Equal(t, "req-1", seen.Header.Get("X-Request-ID"))
	require.JSONEq(t, `{"title":"Rent"}`, string(body))
}

func TestDoWithoutTokenStillFires(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	var seen *http.Request
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		seen = r
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	raw, err := newClient(srv.URL, "").Do(context.Background(), domain.MethodGet, "/invoices", nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw))
	require.EqualValues(t, 1, hits.Load())
	_, hasAuth := seen.Header["Authorization"]
	require.False(t, hasAuth)
	require.Equal(t, "application/json", seen.Header.Get("Content-Type"))
	require.Empty(t, body)
}

func TestDoNormalizesGatewayErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`upstream exploded`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	client := newClient(srv.URL, "")

	var gwErr *domain.GatewayError
	_, err := client.Do(context.Background(), domain.MethodPost, "/auth/login", map[string]string{"email": "a@b.com"})
	require.True(t, errors.As(err, &gwErr))
	require.Equal(t, "Invalid credentials", err.Error())
	require.Equal(t, http.StatusUnauthorized, gwErr.StatusCode)

	_, err = client.Do(context.Background(), domain.MethodGet, "/broken", nil)
	require.EqualError(t, err, "API Error: 500")

	_, err = client.Do(context.Background(), domain.MethodDelete, "/missing", nil)
	require.EqualError(t, err, "API Error: 404")
}

func TestDoTransportFailures(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	client := newClient(srv.URL, "tok")

	var transportErr *domain.TransportError
	_, err := client.Do(context.Background(), domain.MethodGet, "/invoices", nil)
	require.True(t, errors.As(err, &transportErr))
	require.ErrorIs(t, err, apperrors.ErrInvalidResponse)

	srv.Close()
	_, err = client.Do(context.Background(), domain.MethodGet, "/invoices", nil)
	require.True(t, errors.As(err, &transportErr), "closed server should surface a transport error, got %v", err)
}

func TestDoEmptySuccessBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	raw, err := newClient(srv.URL, "tok").Do(context.Background(), domain.MethodDelete, "/invoices/3", nil)
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestDoRejectsUnsupportedMethodLocally(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hits.Add(1) }))
	defer srv.Close()
	_, err := newClient(srv.URL, "").Do(context.Background(), domain.Method("PATCH"), "/invoices/1", nil)
	require.ErrorIs(t, err, apperrors.ErrUnsupportedMethod)
	require.Zero(t, hits.Load())
}

func TestDoEncodeFailureIsLocal(t *testing.T) {
	t.Parallel()
	_, err := newClient("http://127.0.0.1:1", "").Do(context.Background(), domain.MethodPost, "/invoices", map[string]any{"bad": make(chan int)})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	var transportErr *domain.TransportError
	require.False(t, errors.As(err, &transportErr))
}
