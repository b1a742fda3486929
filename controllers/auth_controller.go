package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/efeurhobobullish/SwiftBuy/models"
	"github.com/efeurhobobullish/SwiftBuy/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// sessionHint lets a guest session carry its cart into the logged-in
// session: login on an existing X-Session-Id keeps the same id.
func sessionHint(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-Session-Id"))
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, token, err := ctrl.Auth.Register(c.Request.Context(), req, sessionHint(c))
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Email already exists"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    gin.H{"token": token, "user": user},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password, or with a provider (google, facebook)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var (
		user  models.User
		token string
		err   error
	)
	if req.Provider != "" {
		user, token, err = ctrl.Auth.LoginWithProvider(c.Request.Context(), req.Provider, sessionHint(c))
	} else {
		user, token, err = ctrl.Auth.Login(c.Request.Context(), req.Email, req.Password, sessionHint(c))
	}

	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    gin.H{"token": token, "user": user},
	})
}

// GetProfile godoc
// @Summary Get user profile
// @Description Get current user profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user, ok := ctrl.Auth.CurrentUser(c.Request.Context(), c.GetString("session_id"))
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Session expired"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": user})
}

// Logout godoc
// @Summary Logout
// @Description Discard the logged-in user for this session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.Auth.Logout(c.Request.Context(), c.GetString("session_id")); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Logout failed"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}
