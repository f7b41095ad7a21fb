package util

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamUint reads a positive integer path parameter.
func ParamUint(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidParam, name)
	}
	return uint(v), nil
}

// ParamInt reads a non-negative integer path parameter.
func ParamInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidParam, name)
	}
	return v, nil
}
