package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/wifi-whitelist/pkg/app/errors"
	"github.com/chainsafe/wifi-whitelist/pkg/config"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var got ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.ConflictError(errors.New("row exists"), "This SSID is already whitelisted.")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	got := decodeError(t, rec)
	assert.Equal(t, "This SSID is already whitelisted.", got.ErrMsg)
	assert.Equal(t, http.StatusConflict, got.ErrMsgCode)
}

func TestHandleError_UnknownErrorIsHidden(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return errors.New("pq: password authentication failed")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unexpected Service Error", decodeError(t, rec).ErrMsg)
}

func TestHandleError_NoErrorLeavesResponse(t *testing.T) {
	h := HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		WriteJSON(w, http.StatusCreated, map[string]string{"ok": "yes"})
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}

func TestServeAndWait_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}
	err := ServeAndWait(ctx, http.NotFoundHandler(), zap.NewNop(), cfg)
	assert.NoError(t, err)
}

func TestServeAndWait_RejectsNilArguments(t *testing.T) {
	assert.Error(t, ServeAndWait(context.Background(), nil, nil, &config.ServerConfig{}))
	assert.Error(t, ServeAndWait(context.Background(), http.NotFoundHandler(), nil, nil))
}

func TestServeAndWait_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: port}

	err = ServeAndWait(context.Background(), http.NotFoundHandler(), zap.NewNop(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}

func TestServe_HandlesRequestsUntilCanceled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	srv := NewServer(handler, &config.ServerConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln, zap.NewNop(), time.Second) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
