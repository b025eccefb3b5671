package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/ledger"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/utils"
)

type AuthHandler struct {
	Store *ledger.Store
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": user.Email,
		"role":  user.Role,
	})
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.CreateUser(req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"email": user.Email, "role": user.Role})
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users := h.Store.Users()
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"email": u.Email, "role": u.Role})
	}
	c.JSON(http.StatusOK, out)
}
