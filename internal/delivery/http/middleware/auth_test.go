package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chapterhub/internal/delivery/http/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGate implements domain.AdminGate for middleware tests.
type fakeGate struct {
	checkErr error
}

func (f *fakeGate) Login(_ context.Context, _, _ string) (string, error) { return "", nil }
func (f *fakeGate) Logout(_ context.Context, _ string) error             { return nil }
func (f *fakeGate) Check(_ context.Context, _ string) error              { return f.checkErr }

func TestRequireAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		authHeader string
		gate       *fakeGate
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "accepted token calls next",
			authHeader: "Bearer good-token",
			gate:       &fakeGate{},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "missing header answers 401",
			authHeader: "",
			gate:       &fakeGate{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer header answers 401",
			authHeader: "Basic dXNlcjpwYXNz",
			gate:       &fakeGate{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected session answers 401",
			authHeader: "Bearer stale-token",
			gate:       &fakeGate{checkErr: errors.New("session closed")},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := RequireAdmin(tt.gate, logger)(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.wantStatus == http.StatusUnauthorized {
				var resp helpers.APIResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, resp.Error.Code)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"bearer with padding", "Bearer   abc123", "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, BearerToken(r))
		})
	}
}
