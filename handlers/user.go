package handlers

import (
	"net/http"

	"blueriver/models"
	"blueriver/services/user"
	"blueriver/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, login and profile endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Invalid registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, "Registration failed", err)
		return
	}
	logger.Info("User registered", zap.String("userID", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, "Login failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /api/users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user")
		return
	}
	usr, err := h.UserService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, "User not available", err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
