// Package controller provides the HTTP request handlers for the
// tickpanel REST API.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickpanel/logger"
	"tickpanel/web/service"
)

// AuthController handles registration, login and the password-reset
// flow.
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController creates a new AuthController and sets up its routes.
func NewAuthController(g *gin.RouterGroup, authService *service.AuthService) *AuthController {
	a := &AuthController{authService: authService}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/auth")

	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.POST("/forgot-password", a.forgotPassword)
	g.GET("/verify-reset-token/:token", a.verifyResetToken)
	g.POST("/reset-password", a.resetPassword)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *AuthController) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	profile, err := a.authService.Register(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		jsonError(c, err)
		return
	}

	logger.Infof("user %s registered from %s", profile.Username, getRemoteIp(c))
	jsonMsgObj(c, http.StatusCreated, "User registered successfully", profile)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthController) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	token, profile, err := a.authService.Login(req.Email, req.Password)
	if err != nil {
		jsonError(c, err)
		return
	}

	logger.Infof("user %s logged in from %s", profile.Username, getRemoteIp(c))
	jsonObj(c, http.StatusOK, gin.H{
		"token": token,
		"user":  profile,
	})
}

// logout is advisory: tokens are stateless, the client discards its
// copy and nothing changes server-side.
func (a *AuthController) logout(c *gin.Context) {
	jsonMsg(c, http.StatusOK, "User logged out successfully")
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (a *AuthController) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := a.authService.ForgotPassword(req.Email); err != nil {
		jsonError(c, err)
		return
	}

	// Identical response whether or not the account exists.
	jsonMsg(c, http.StatusOK, "If an account with that email exists, a password reset link has been sent.")
}

func (a *AuthController) verifyResetToken(c *gin.Context) {
	if err := a.authService.VerifyResetToken(c.Param("token")); err != nil {
		jsonError(c, err)
		return
	}
	jsonMsg(c, http.StatusOK, "Token is valid")
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (a *AuthController) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := a.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		jsonError(c, err)
		return
	}
	jsonMsg(c, http.StatusOK, "Password has been reset successfully")
}
