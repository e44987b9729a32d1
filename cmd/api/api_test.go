package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ruchi/internal/auth"
	"ruchi/internal/chat"
	"ruchi/internal/geocode"
	"ruchi/internal/ratelimiter"
	"ruchi/internal/sharecode"
	"ruchi/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAdminEmail = "admin@ruchi.test"

func newTestApplication(t *testing.T, cfg config) *application {
	t.Helper()

	codec, err := sharecode.New("test-salt")
	require.NoError(t, err)

	cfg.auth.token = tokenConfig{
		secret:        "test-secret",
		refreshSecret: "test-refresh-secret",
		iss:           "test",
	}
	if cfg.auth.adminEmails == nil {
		cfg.auth.adminEmails = []string{testAdminEmail}
	}
	if cfg.rateLimiter.RequestsPerTimeFrame == 0 {
		cfg.rateLimiter = ratelimiter.Config{RequestsPerTimeFrame: 1000, TimeFrame: time.Minute}
	}

	return &application{
		config: cfg,
		logger: zap.NewNop().Sugar(),
		store:  store.NewMemoryStorage(),
		authenticator: auth.NewJWTAuthenticator(auth.Config{
			Secret:        cfg.auth.token.secret,
			RefreshSecret: cfg.auth.token.refreshSecret,
			Issuer:        cfg.auth.token.iss,
		}),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		geocoder:    geocode.NewClient(cfg.geocode.url, time.Second),
		assistant:   chat.NewClient(cfg.chat),
		shareCodes:  codec,
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

// doJSON sends body as JSON with an optional bearer token.
func doJSON(t *testing.T, mux http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return executeRequest(req, mux)
}

func decodeData[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var env struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env), rr.Body.String())
	return env.Data
}

func checkResponseCode(t *testing.T, expected int, rr *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, expected, rr.Code, "body: %s", rr.Body.String())
}

// signUp registers an account and returns its session.
func signUp(t *testing.T, mux http.Handler, name, email string) TokenResponse {
	t.Helper()

	rr := doJSON(t, mux, http.MethodPost, "/v1/authentication/user", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	checkResponseCode(t, http.StatusCreated, rr)
	return decodeData[TokenResponse](t, rr)
}

func validSpot() map[string]any {
	return map[string]any{
		"name":       "Rahmath Hotel",
		"speciality": "Beef Biryani",
		"foodTypes":  []string{"Non-Veg"},
		"district":   "Kozhikode",
		"area":       "Kuttichira",
	}
}
