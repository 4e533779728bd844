package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler() *AuthHandler {
	svc, _ := newTestUserService()
	return NewAuthHandler(svc, newTestJWTService())
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success returns user and token", func(t *testing.T) {
		h := newTestAuthHandler()

		body := `{"name":"John Doe","email":"john@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, "john@example.com", resp.User.Email)
	})

	t.Run("invalid body", func(t *testing.T) {
		h := newTestAuthHandler()

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		h.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		h := newTestAuthHandler()

		body := `{"name":"John","email":"john@example.com","password":"short"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation error")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		h := newTestAuthHandler()

		body := `{"name":"John","email":"dup@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		h.Register(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Register(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	svc, _ := newTestUserService()
	h := NewAuthHandler(svc, newTestJWTService())

	registerBody := `{"name":"Jane","email":"jane@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
	h.Register(httptest.NewRecorder(), req)

	t.Run("success", func(t *testing.T) {
		body := `{"email":"jane@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"email":"jane@example.com","password":"wrong-password"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Login(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		body := `{"password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Login(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_UpdatePasswordWithUserID(t *testing.T) {
	svc, _ := newTestUserService()
	h := NewAuthHandler(svc, newTestJWTService())

	registerBody := `{"name":"Pat","email":"pat@example.com","password":"oldpassword1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	t.Run("wrong current password", func(t *testing.T) {
		body := `{"current_password":"nope","new_password":"newpassword1"}`
		req := httptest.NewRequest(http.MethodPut, "/auth/password", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.UpdatePasswordWithUserID(rec, req, registered.User.ID)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		body := `{"current_password":"oldpassword1","new_password":"newpassword1"}`
		req := httptest.NewRequest(http.MethodPut, "/auth/password", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.UpdatePasswordWithUserID(rec, req, registered.User.ID)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password updated successfully")
	})
}

func TestExtractValidationErrors(t *testing.T) {
	err := (&types.LoginRequest{}).Validate()
	require.Error(t, err)
	msg := extractValidationErrors(err)
	assert.Contains(t, msg, "validation error")
}
