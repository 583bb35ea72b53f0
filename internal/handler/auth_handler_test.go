package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repodosen/repositori-backend/internal/config"
	"github.com/repodosen/repositori-backend/internal/service"
)

func TestLoginReturnsTokenForKnownDosen(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("D001", "Ada", 1)

	token := e.login(t, "Ada", "D001")

	claims, err := e.auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "D001", claims.Subject)
}

func TestLoginRejectsUnknownPair(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("D001", "Ada", 1)

	rec := e.do(t, http.MethodPost, "/login", gin.H{"nama_lengkap": "Bob", "nip": "D001"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestLoginMissingFields(t *testing.T) {
	e := newEnv()

	rec := e.do(t, http.MethodPost, "/login", gin.H{"nip": "D001"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Fields, "nama_lengkap")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	e := newEnv()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/dosen"},
		{http.MethodPost, "/dosen"},
		{http.MethodGet, "/document"},
		{http.MethodGet, "/prodi"},
		{http.MethodPost, "/logout"},
	}
	for _, p := range paths {
		rec := e.do(t, p.method, p.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestProtectedRoutesRejectBadToken(t *testing.T) {
	e := newEnv()

	rec := e.do(t, http.MethodGet, "/dosen", nil, "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRejectExpiredToken(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("D001", "Ada", 1)

	// Mint an already expired token with the same secret the router verifies.
	staleIssuer := service.NewAuthService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: -time.Minute,
	}, &fakeDosenRepo{s: e.store})
	token, _, err := staleIssuer.Login(context.Background(), "Ada", "D001")
	require.NoError(t, err)

	rec := e.do(t, http.MethodGet, "/dosen", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRejectedRequestsMutateNothing(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")

	rec := e.do(t, http.MethodPost, "/dosen", gin.H{
		"nip": "D002", "nama_lengkap": "Bob", "prodi_id": 1,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, e.store.dosen)
}

func TestLogoutConfirms(t *testing.T) {
	e := newEnv()
	e.seedProdi("TI", "Teknik Informatika")
	e.seedDosen("D001", "Ada", 1)
	token := e.login(t, "Ada", "D001")

	rec := e.do(t, http.MethodPost, "/logout", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Stateless tokens: the same token still works after logout.
	rec = e.do(t, http.MethodGet, "/prodi", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
