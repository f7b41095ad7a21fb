package controller

import (
	"errors"
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(s *service.ProgressService) *ProgressController {
	return &ProgressController{Service: s}
}

// swagger:model CompleteChapterRequest
type CompleteChapterRequest struct {
	ExperienceLevel string `json:"experience_level" binding:"max=100"`
}

// CompleteChapter godoc
// @Summary Mark a chapter as completed
// @Description Awards 20 XP the first time a (path, step, chapter, experience level) is completed. Repeats are no-ops.
// @Tags progress
// @Accept  json
// @Produce  json
// @Param   user_id path int true "User ID"
// @Param   path_id path int true "Learning path ID"
// @Param   step path int true "Step number"
// @Param   chapter path int true "Chapter number"
// @Param   body body CompleteChapterRequest false "Experience level, defaults to Beginner"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 400 {object} util.Response "Invalid parameters"
// @Router /progress/complete_chapter/{user_id}/{path_id}/{step}/{chapter} [post]
func (c *ProgressController) CompleteChapter(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}
	pathID, err := util.ParamUint(ctx, "path_id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	step, err := util.ParamInt(ctx, "step")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	chapter, err := util.ParamInt(ctx, "chapter")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req CompleteChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BindError(ctx, err)
		return
	}

	res, err := c.Service.CompleteChapter(ctx.Request.Context(), service.ChapterKey{
		UserID:          userID,
		PathID:          pathID,
		Step:            step,
		Chapter:         chapter,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		renderError(ctx, err)
		return
	}

	if res.AlreadyCompleted {
		util.SuccessWithMessage(ctx, "Chapter already completed", res)
		return
	}
	util.SuccessWithMessage(ctx, "Chapter completed! +20 XP", res)
}

// GetProgress godoc
// @Summary Get a user's progress
// @Tags progress
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response "No progress yet"
// @Router /progress/{user_id} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	progress, err := c.Service.GetProgress(ctx.Request.Context(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// Badges godoc
// @Summary List a user's badges
// @Tags progress
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=[]model.UserBadge}
// @Router /progress/badges/{user_id} [get]
func (c *ProgressController) Badges(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	badges, err := c.Service.ListBadges(ctx.Request.Context(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// Completed godoc
// @Summary List a user's completed chapters
// @Tags progress
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=[]service.CompletedChapter}
// @Router /progress/completed/{user_id} [get]
func (c *ProgressController) Completed(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	completed, err := c.Service.ListCompleted(ctx.Request.Context(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, completed)
}

// Leaderboard godoc
// @Summary Top users by XP
// @Tags progress
// @Produce  json
// @Param   limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /progress/leaderboard [get]
func (c *ProgressController) Leaderboard(ctx *gin.Context) {
	limit := util.DefaultLeaderboardSize
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			util.BadRequest(ctx, "limit must be a positive integer")
			return
		}
		limit = n
	}

	board, err := c.Service.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, board)
}
