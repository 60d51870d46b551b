package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/gateway"
	"github.com/telclab/topup-sandbox/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zap.NewNop()

	sim := gateway.New(gateway.Config{
		SlowDelay:   30 * time.Millisecond,
		ChargeDelay: 5 * time.Millisecond,
	}, logger)

	group := NewHandlerGroup(Dependencies{
		Logger:       logger,
		Users:        memory.NewUserRepository(),
		Transactions: memory.NewTransactionRepository(),
		Gateway:      sim,
	})

	return NewRouter(group, logger)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))

	return m
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
	}{
		{
			name:           "ValidRequest",
			body:           map[string]any{"email": "qa@example.com", "password": "pass1234"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "MissingEmail",
			body:           map[string]any{"password": "pass1234"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MalformedEmail",
			body:           map[string]any{"email": "not-an-email", "password": "pass1234"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MissingPassword",
			body:           map[string]any{"email": "qa@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t)

			rec := doJSON(t, router, http.MethodPost, "/api/register", tc.body)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", map[string]any{"email": "qa@example.com", "password": "a"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same email with different case and whitespace is still a duplicate.
	rec = doJSON(t, router, http.MethodPost, "/api/register", map[string]any{"email": " QA@Example.COM ", "password": "b"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", decodeBody(t, rec)["status"])
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", map[string]any{"email": "qa@example.com", "password": "pass1234"})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{"email": "QA@example.com", "password": "pass1234"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, MockToken, decodeBody(t, rec)["token"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{"email": "qa@example.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{"email": "nobody@example.com", "password": "pass1234"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOTPRequest(t *testing.T) {
	router := newTestRouter(t)

	t.Run("AlwaysAcceptsWellFormedEmail", func(t *testing.T) {
		// No registration required; OTP request is not correlated to users.
		rec := doJSON(t, router, http.MethodPost, "/api/auth/otp/request", map[string]any{"email": "nobody@example.com"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/otp/request", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOTPVerify(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
	}{
		{
			name:           "CorrectCode",
			body:           map[string]any{"email": "qa@example.com", "otp": "1234"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "CorrectCodeUnknownEmail",
			body:           map[string]any{"email": "nobody@example.com", "otp": "1234"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "WrongCode",
			body:           map[string]any{"email": "qa@example.com", "otp": "0000"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "MissingCode",
			body:           map[string]any{"email": "qa@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/auth/otp/verify", tc.body)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestResetPassword(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", map[string]any{"email": "qa@example.com", "password": "old"})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", map[string]any{"email": "qa@example.com", "newPassword": "new"})
		require.Equal(t, http.StatusOK, rec.Code)

		// Old password no longer works, new one does.
		rec = doJSON(t, router, http.MethodPost, "/api/login", map[string]any{"email": "qa@example.com", "password": "old"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/login", map[string]any{"email": "qa@example.com", "password": "new"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", map[string]any{"email": "nobody@example.com", "newPassword": "new"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MissingNewPassword", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/reset-password", map[string]any{"email": "qa@example.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}
