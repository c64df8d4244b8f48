package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/arielstudio/nail-scheduler/internal/config"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login compara a credencial estática configurada e emite o token do
// painel. Hardening fica fora daqui de propósito: é um site de uma
// profissional só.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Username != h.config.AdminUser || !h.passwordMatches(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"username": h.config.AdminUser, "role": "admin"},
		"token": token,
	})
}

func (h *AuthHandler) passwordMatches(password string) bool {
	if h.config.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(h.config.AdminPasswordHash),
			[]byte(password),
		) == nil
	}

	return h.config.AdminPassword != "" && password == h.config.AdminPassword
}

// --------- JWT ---------

func (h *AuthHandler) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  h.config.AdminUser,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
