package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL)), srv
}

func TestDoRetriesOnceAfterRefresh(t *testing.T) {
	var apiCalls, refreshCalls int

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "old-refresh", body["refresh_token"])
		json.NewEncoder(w).Encode(TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"})
	})
	mux.HandleFunc("/api/instruments", func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		if r.Header.Get("Authorization") != "Bearer new-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]Instrument{{ID: 1, Name: "Balance"}})
	})

	c, _ := newTestClient(t, mux)
	c.Tokens().Set(AccessTokenKey, "stale-access")
	c.Tokens().Set(RefreshTokenKey, "old-refresh")

	instruments, err := c.Instruments.GetAll(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, instruments, 1)
	assert.Equal(t, "Balance", instruments[0].Name)

	assert.Equal(t, 2, apiCalls, "original request plus exactly one replay")
	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, "new-access", c.Tokens().Get(AccessTokenKey))
	assert.Equal(t, "new-refresh", c.Tokens().Get(RefreshTokenKey))
}

func TestDoSecondUnauthorizedPropagates(t *testing.T) {
	var apiCalls int

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"})
	})
	mux.HandleFunc("/api/instruments", func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, _ := newTestClient(t, mux)
	c.Tokens().Set(AccessTokenKey, "stale-access")
	c.Tokens().Set(RefreshTokenKey, "old-refresh")

	_, err := c.Instruments.GetAll(context.Background(), "org-1")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, 2, apiCalls, "no retry loop after a failed replay")
}

func TestRefreshFailureClearsTokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "refresh token is invalid or expired"})
	})
	mux.HandleFunc("/api/instruments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, _ := newTestClient(t, mux)
	c.Tokens().Set(AccessTokenKey, "stale-access")
	c.Tokens().Set(RefreshTokenKey, "dead-refresh")

	_, err := c.Instruments.GetAll(context.Background(), "org-1")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, c.Tokens().Get(AccessTokenKey))
	assert.Empty(t, c.Tokens().Get(RefreshTokenKey))
}

func TestDoWithoutRefreshTokenFailsFast(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/instruments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, _ := newTestClient(t, mux)
	c.Tokens().Set(AccessTokenKey, "stale-access")

	_, err := c.Instruments.GetAll(context.Background(), "org-1")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestLoginUnauthorizedIsNotRefreshed(t *testing.T) {
	var refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
	})
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid username or password"})
	})

	c, _ := newTestClient(t, mux)

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid username or password", apiErr.Message)
	assert.Zero(t, refreshCalls)
}

func TestValidationErrorFlattening(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detail": []map[string]interface{}{
				{"loc": []string{"body", "lab_pin_code"}, "msg": "Invalid PIN code format"},
				{"loc": []string{"body", "lab_name"}, "msg": "field required"},
			},
		})
	})

	c, _ := newTestClient(t, mux)

	_, err := c.Organizations.Create(context.Background(), map[string]interface{}{"lab_name": ""})
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "lab_pin_code: Invalid PIN code format; lab_name: field required", apiErr.Message)
}
