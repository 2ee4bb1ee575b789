// Package common provides shared HTTP handler utilities.
package common

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/interfaces/http/middleware"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
	apperrors "github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterValidations(v)
	}
}

// Actor returns the request actor or writes a 401 and returns false.
func Actor(c *gin.Context) (user.Actor, bool) {
	if actor, ok := middleware.GetActor(c); ok {
		return actor, true
	}
	utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
	return user.Actor{}, false
}

// ParseID parses a positive numeric path parameter.
func ParseID(c *gin.Context, param string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid " + param, raw)
	}
	return uint(id), nil
}

// BindJSON binds the request body and writes a 400 on failure.
func BindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		utils.ErrorResponseWithError(c, utils.DescribeValidationError(err))
		return false
	}
	return true
}

// BindOptionalJSON is BindJSON for endpoints whose body may be empty.
func BindOptionalJSON(c *gin.Context, target interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponseWithError(c, utils.DescribeValidationError(err))
		return false
	}
	return true
}

// QueryBool parses an optional boolean query parameter.
func QueryBool(c *gin.Context, key string, defaultVal bool) bool {
	if v := c.Query(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
