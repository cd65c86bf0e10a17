package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGate implements domain.AdminGate for handler tests.
type fakeGate struct {
	token      string
	loginErr   error
	logoutErr  error
	checkErr   error
	lastLogout string
}

func (f *fakeGate) Login(_ context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeGate) Logout(_ context.Context, token string) error {
	f.lastLogout = token
	return f.logoutErr
}

func (f *fakeGate) Check(_ context.Context, _ string) error { return f.checkErr }

func TestAuthLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		gate       *fakeGate
		wantStatus int
		wantCode   string
		wantToken  string
	}{
		{
			name:       "valid credentials return a token",
			body:       LoginRequest{Email: "admin@ieee.org", Password: "admin123"},
			gate:       &fakeGate{token: "jwt-token"},
			wantStatus: http.StatusOK,
			wantToken:  "jwt-token",
		},
		{
			name:       "invalid credentials answer 401",
			body:       LoginRequest{Email: "admin@ieee.org", Password: "wrong"},
			gate:       &fakeGate{loginErr: domain.ErrInvalidCredentials},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeInvalidCredentials,
		},
		{
			name:       "missing fields answer 400",
			body:       LoginRequest{},
			gate:       &fakeGate{token: "never"},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "gate failure answers 500",
			body:       LoginRequest{Email: "admin@ieee.org", Password: "admin123"},
			gate:       &fakeGate{loginErr: errors.New("session file unwritable")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAuthController(testLogger, tt.gate)
			rec, env := doRequest(t, c.Login, http.MethodPost, "/auth/login", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			var resp LoginResponse
			decodeData(t, env, &resp)
			assert.Equal(t, tt.wantToken, resp.Token)
		})
	}
}

func TestAuthLogout(t *testing.T) {
	gate := &fakeGate{}
	c := NewAuthController(testLogger, gate)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	rec := httptest.NewRecorder()
	c.Logout(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, env.Error)
	assert.Equal(t, "the-token", gate.lastLogout, "logout passes the bearer token to the gate")
}

func TestAuthLogout_WithoutTokenStillSucceeds(t *testing.T) {
	gate := &fakeGate{}
	c := NewAuthController(testLogger, gate)

	rec, env := doRequest(t, c.Logout, http.MethodPost, "/auth/logout", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, env.Error)
}
