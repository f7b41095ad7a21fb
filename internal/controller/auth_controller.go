package controller

import (
	"encoding/json"
	"errors"
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "Signup payload"
// @Success 201 {object} util.Response{data=object} "User created"
// @Failure 400 {object} util.Response "Invalid input or email/username taken"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	id, err := c.AuthService.Signup(ctx.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		renderError(ctx, err)
		return
	}

	util.Created(ctx, "User created successfully", gin.H{"user_id": id})
}

// Login godoc
// @Summary Log in
// @Description Credentials may be sent as query parameters, as a JSON body, or split between both.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   email query string false "Email"
// @Param   password query string false "Password"
// @Param   body body LoginRequest false "Login payload"
// @Success 200 {object} util.Response{data=service.LoginResult} "Logged in"
// @Failure 401 {object} util.Response "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, "Invalid request body")
		return
	}
	// Query parameters take precedence over body fields.
	if email := ctx.Query("email"); email != "" {
		req.Email = email
	}
	if password := ctx.Query("password"); password != "" {
		req.Password = password
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	res, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "Login successful", res)
}
