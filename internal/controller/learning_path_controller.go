package controller

import (
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	Service *service.LearningPathService
}

func NewLearningPathController(s *service.LearningPathService) *LearningPathController {
	return &LearningPathController{Service: s}
}

// swagger:model GeneratePathRequest
type GeneratePathRequest struct {
	UserGoal string `json:"user_goal" binding:"required"`
}

// Generate godoc
// @Summary Generate a learning path
// @Description Copies the catalog content of user_goal into a new path owned by the user.
// @Tags learning_path
// @Accept  json
// @Produce  json
// @Param   user_id path int true "User ID"
// @Param   body body GeneratePathRequest true "Topic"
// @Success 200 {object} util.Response{data=object} "Generated path"
// @Failure 400 {object} util.Response "Unknown topic"
// @Failure 404 {object} util.Response "Unknown user"
// @Router /learning_path/generate/{user_id} [post]
func (c *LearningPathController) Generate(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	var req GeneratePathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	path, err := c.Service.Generate(ctx.Request.Context(), userID, req.UserGoal)
	if err != nil {
		renderError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "Learning path generated", gin.H{
		"path_id":   path.ID,
		"path_name": path.PathName,
		"path":      path.Path,
	})
}

// MyPaths godoc
// @Summary List a user's learning paths
// @Tags learning_path
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=[]service.PathResponse}
// @Router /learning_path/my_paths/{user_id} [get]
func (c *LearningPathController) MyPaths(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	paths, err := c.Service.MyPaths(ctx.Request.Context(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, paths)
}

// Topics godoc
// @Summary List catalog topics
// @Tags learning_path
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /learning_path/topics [get]
func (c *LearningPathController) Topics(ctx *gin.Context) {
	util.Success(ctx, gin.H{"topics": c.Service.Topics()})
}
