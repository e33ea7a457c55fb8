package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/LarzzCode/LarGarage/repository"
	"github.com/LarzzCode/LarGarage/utils"
)

type UserController struct {
	*Workshop
}

func NewUserController(w *Workshop) *UserController {
	return &UserController{Workshop: w}
}

// Login user -> return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.Users.FindByEmail(c.Request.Context(), strings.TrimSpace(input.Email))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			utils.ErrorLogger.Printf("Login lookup failed: %v", err)
		}
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User %s logged in", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Login success", gin.H{
		"token": token,
		"user":  user,
	})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.Users.Get(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile", user)
}

// Logout mem-blacklist token sampai kadaluarsa
func (uc *UserController) Logout(c *gin.Context) {
	token := c.GetString("token")
	var expiry time.Time
	if v, ok := c.Get("token_expiry"); ok {
		expiry, _ = v.(time.Time)
	}
	utils.BlacklistToken(token, expiry)
	utils.RespondJSON(c, http.StatusOK, "Logout success", nil)
}
