package controllers

import (
	"errors"
	"net/http"
	"strings"

	"orderdesk-backend/models"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles the admin session.
type AuthController struct {
	Accounts *services.AdminAccounts
	Tokens   utils.TokenConfig
}

func adminJSON(user *models.AdminUser) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ac.Accounts.Authenticate(c.Request.Context(), strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	token, err := utils.GenerateToken(ac.Tokens, user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie(
		utils.TokenCookie,
		token,
		int(ac.Tokens.Expiry.Seconds()),
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"admin": adminJSON(user),
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ac *AuthController) Me(c *gin.Context) {
	adminID := c.GetString("adminId")
	if adminID == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Admin not found in context")
		return
	}

	user, err := ac.Accounts.Get(c.Request.Context(), adminID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": adminJSON(user)})
}
