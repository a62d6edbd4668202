package controller

import (
	"strconv"

	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/gin-gonic/gin"
)

// idParam parses a positive integer path parameter, answering 400 itself on
// garbage input.
func idParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func pageParams(ctx *gin.Context, defaultSort string) (page, size int, sortBy, sortDir string) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(ctx.DefaultQuery("size", "10"))
	if size < 1 || size > 100 {
		size = 10
	}
	sortBy = ctx.DefaultQuery("sortBy", defaultSort)
	sortDir = ctx.DefaultQuery("sortDir", "desc")
	return page, size, sortBy, sortDir
}
