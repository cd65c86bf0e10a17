package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chapterhub/internal/domain"
	"chapterhub/internal/services"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// memStore is an in-memory CatalogStore backing the real catalog service in
// handler tests.
type memStore struct {
	initial *domain.Catalog
}

func (m *memStore) Load(_ context.Context) (*domain.Catalog, error) {
	if m.initial != nil {
		return m.initial, nil
	}
	return &domain.Catalog{}, nil
}

func (m *memStore) Save(_ context.Context, _ *domain.Catalog) error { return nil }

func newCatalog(t *testing.T, initial *domain.Catalog) domain.CatalogService {
	t.Helper()
	svc, err := services.NewCatalogService(context.Background(), &memStore{initial: initial})
	require.NoError(t, err)
	return svc
}

// envelope mirrors helpers.APIResponse with Data left raw for per-test decoding.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, handler http.HandlerFunc, method, target string, body any, pathValues map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, buf)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func decodeData(t *testing.T, env envelope, dest any) {
	t.Helper()
	require.NotNil(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}
