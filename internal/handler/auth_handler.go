package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/repodosen/repositori-backend/internal/middleware"
	"github.com/repodosen/repositori-backend/internal/response"
	"github.com/repodosen/repositori-backend/internal/service"
	"github.com/repodosen/repositori-backend/internal/validator"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	NIP         string `json:"nip" binding:"required"`
}

// Login godoc
// POST /login
// Matches nama_lengkap+nip against the dosen table and returns a JWT whose
// subject is the lecturer's NIP.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, dosen, err := h.authService.Login(c.Request.Context(), req.NamaLengkap, req.NIP)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login berhasil.",
		"token":   token,
		"nip":     dosen.NIP,
	})
}

// Logout godoc
// POST /logout
// Tokens are stateless; no server-side revocation happens here. The client
// is expected to discard the token, which stays valid until natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := middleware.GetClaims(c); claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logout berhasil."})
}
