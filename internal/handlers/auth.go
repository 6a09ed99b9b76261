// Package handlers contains HTTP request handlers for the auth service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirmarwat09/wp-assign/internal/logger"
	"github.com/yasirmarwat09/wp-assign/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SigninRequest represents the signin request payload.
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new user account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	_, err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User Already Exists"})
			return
		}
		logger.FromRequest(c.Request).Err(err).Msg("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during signup"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User Created Successfully"})
}

// Signin verifies credentials and returns a signed bearer token.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	token, err := h.authService.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Both rejections are 400 on purpose; only the message text differs.
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User Not Found"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Credentials"})
		default:
			logger.FromRequest(c.Request).Err(err).Msg("signin failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during signin"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User Logged In Successfully",
		"token":   token,
	})
}
