package controller

import (
	"errors"
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RewardController struct {
	Service *service.RewardService
}

func NewRewardController(s *service.RewardService) *RewardController {
	return &RewardController{Service: s}
}

// ClaimGift godoc
// @Summary Claim a random gift
// @Tags rewards
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=object} "Gift drawn"
// @Failure 404 {object} util.Response "No gifts available"
// @Router /rewards/claim_gift/{user_id} [post]
func (c *RewardController) ClaimGift(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	award, err := c.Service.ClaimGift(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, util.ErrNoInventory) {
			util.NotFound(ctx, "No gifts available")
			return
		}
		renderError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "You received a gift!", gin.H{"reward": award.RewardName})
}

// ClaimBigMotivator godoc
// @Summary Claim a big motivator
// @Description Requires at least 5 previously claimed gifts.
// @Tags rewards
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=object} "Motivator drawn"
// @Failure 400 {object} util.Response "Fewer than 5 gifts"
// @Failure 404 {object} util.Response "No big motivators available"
// @Router /rewards/claim_big_motivator/{user_id} [post]
func (c *RewardController) ClaimBigMotivator(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	award, err := c.Service.ClaimBigMotivator(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, util.ErrNoInventory) {
			util.NotFound(ctx, "No big motivators available")
			return
		}
		renderError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "Big motivator unlocked!", gin.H{"motivator": award.RewardName})
}

// MyRewards godoc
// @Summary List a user's rewards
// @Tags rewards
// @Produce  json
// @Param   user_id path int true "User ID"
// @Success 200 {object} util.Response{data=[]model.UserReward}
// @Router /rewards/my_rewards/{user_id} [get]
func (c *RewardController) MyRewards(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}

	rewards, err := c.Service.MyRewards(ctx.Request.Context(), userID)
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, rewards)
}

// Catalog godoc
// @Summary List the reward pools
// @Tags rewards
// @Produce  json
// @Success 200 {object} util.Response{data=service.RewardCatalog}
// @Router /rewards/catalog [get]
func (c *RewardController) Catalog(ctx *gin.Context) {
	cat, err := c.Service.Catalog(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	util.Success(ctx, cat)
}
