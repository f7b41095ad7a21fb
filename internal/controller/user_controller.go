package controller

import (
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetUser godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "Unknown user"
// @Router /users/{user_id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.UserService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags users
// @Accept  multipart/form-data
// @Produce  json
// @Param   user_id path int true "User ID"
// @Param   file formData file true "Image file (max 5 MB)"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Missing or invalid file"
// @Router /users/{user_id}/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, util.MaxAvatarSize+1<<20)
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.BadRequest(ctx, "cannot read uploaded file")
		return
	}
	defer file.Close()

	url, err := c.UserService.UpdateProfilePicture(ctx.Request.Context(), userID, service.Avatar{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		renderError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "Profile picture updated", gin.H{"profile_pic": url})
}
