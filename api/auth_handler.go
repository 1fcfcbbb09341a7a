package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lacancha/court-booking-backend/auth"
)

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("/signup", h.SignUp)
	rg.POST("/signin", h.SignIn)
	rg.POST("/signout", authRequired, h.SignOut)
	rg.GET("/me", authRequired, h.Me)
	rg.PUT("/profile", authRequired, h.UpdateProfile)
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	user, token, err := h.service.SignUp(c.Request.Context(), req.Email, req.Password, req.Name, req.Phone)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	user, token, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token := c.MustGet("token").(string)

	h.service.SignOut(token)

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	c.IndentedJSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req updateProfileRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), user.ID, req.Name, req.Phone)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}
