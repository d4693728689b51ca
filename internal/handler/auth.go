package handler

import (
	"errors"
	"net/http"

	"github.com/bookwyrm/backend/internal/model"
	"github.com/bookwyrm/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Login
// @Description Verifies username and password and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Login failed"})
		return
	}

	token, expiresIn, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid username or password"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
