package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"weekplanner/usecase"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
)

// pathInt64 parses a numeric path parameter, responding 400 itself when the
// value is malformed.
func pathInt64(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}

func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}

// respondError maps service errors onto HTTP responses: validation failures
// are 400 with every violation, missing records are 404, the rest are 500.
func respondError(c *gin.Context, err error) {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		utils.ValidationFailed(c, verr)
		return
	}
	switch {
	case errors.Is(err, usecase.ErrWeekNotFound),
		errors.Is(err, usecase.ErrCurrentWeekNotFound),
		errors.Is(err, usecase.ErrTaskNotFound),
		errors.Is(err, usecase.ErrMealNotFound),
		errors.Is(err, usecase.ErrDailyDataNotFound),
		errors.Is(err, usecase.ErrTemplateNotFound):
		utils.NotFound(c, err.Error())
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		utils.InternalError(c, "Internal server error")
	}
}
