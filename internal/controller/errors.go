package controller

import (
	"errors"
	"finlit_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// renderError maps service errors onto the response envelope.
func renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidParam),
		errors.Is(err, util.ErrUnknownTopic),
		errors.Is(err, util.ErrIneligible):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrConflict):
		util.BadRequest(ctx, "Email or username already exists")
	case errors.Is(err, util.ErrUnauthorized):
		util.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, util.ErrForbidden):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrNoInventory), errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func userIDParam(ctx *gin.Context) (uint, bool) {
	id, err := util.ParamUint(ctx, "user_id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return 0, false
	}
	return id, true
}
