package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "tradehub/internal/models"
	"tradehub/services/auction/helpers"
	"tradehub/utils"
)

type AccountServiceInterface interface {
	Register(email, password string) (model.User, error)
	Authenticate(email, password string) (model.User, string, error)
	VerifyEmail(tokenStr string) (string, error)
	GetUser(userID string) (model.User, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterHandler: failed to register user", map[string]any{
			"handler": "RegisterHandler",
			"email":   req.Email,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToUserResponse(user),
		"please check your email to verify your account")
	helpers.LogSuccess("RegisterHandler", "user registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
}

// LoginHandler handles POST /login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, session, err := h.service.Authenticate(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: authentication failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	resp := helpers.SessionResponse{
		Token: session,
		User:  helpers.ToUserResponse(user),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.ID,
	})
}

// VerifyEmailHandler handles GET /verify_email/:token
func (h *AccountHandler) VerifyEmailHandler(c *gin.Context) {
	tokenStr := c.Param("token")

	email, err := h.service.VerifyEmail(tokenStr)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("VerifyEmailHandler: verification failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"email": email},
		"your email has been verified, you can now log in")
	helpers.LogSuccess("VerifyEmailHandler", "email verified", map[string]any{"email": email})
}

// MeHandler handles GET /users/me
func (h *AccountHandler) MeHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)

	user, err := h.service.GetUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MeHandler: failed to load account", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "account retrieved successfully")
}
