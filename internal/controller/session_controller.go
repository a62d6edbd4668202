package controller

import (
	"strconv"
	"time"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

type CreateSessionRequest struct {
	Title     string `json:"title" binding:"required"`
	TeacherID uint   `json:"teacherId" binding:"required"`
}

func (c *SessionController) GetSessions(ctx *gin.Context) {
	page, size, sortBy, sortDir := pageParams(ctx, "id")

	sessions, total, err := c.SessionService.GetAll(page, size, sortBy, sortDir)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: sessions, Total: total, Page: page, Size: size})
}

func (c *SessionController) GetSession(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.SessionService.GetByID(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// GetSessionByCode is the public join endpoint; it is registered outside the
// authenticated groups.
func (c *SessionController) GetSessionByCode(ctx *gin.Context) {
	session, err := c.SessionService.GetByCode(ctx.Param("code"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

func (c *SessionController) GetSessionsByTeacher(ctx *gin.Context) {
	teacherID, ok := idParam(ctx, "teacherId")
	if !ok {
		return
	}

	sessions, err := c.SessionService.GetByTeacher(teacherID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

func (c *SessionController) GetActiveSessions(ctx *gin.Context) {
	sessions, err := c.SessionService.GetActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

func (c *SessionController) FilterSessions(ctx *gin.Context) {
	page, size, sortBy, sortDir := pageParams(ctx, "createdAt")

	var filter repository.SessionFilter
	if status := ctx.Query("status"); status != "" {
		filter.Status = model.SessionStatus(status)
	}
	if teacherStr := ctx.Query("teacherId"); teacherStr != "" {
		teacherID, err := strconv.ParseUint(teacherStr, 10, 64)
		if err != nil {
			util.BadRequest(ctx, "invalid teacherId")
			return
		}
		filter.TeacherID = uint(teacherID)
	}
	if startStr := ctx.Query("startDate"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			util.BadRequest(ctx, "invalid startDate, expected RFC3339")
			return
		}
		filter.StartDate = start
	}
	if endStr := ctx.Query("endDate"); endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			util.BadRequest(ctx, "invalid endDate, expected RFC3339")
			return
		}
		filter.EndDate = end
	}

	sessions, total, err := c.SessionService.Filter(filter, page, size, sortBy, sortDir)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: sessions, Total: total, Page: page, Size: size})
}

func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req CreateSessionRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	session, err := c.SessionService.Create(req.Title, req.TeacherID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

func (c *SessionController) StartSession(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.SessionService.Start(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

func (c *SessionController) EndSession(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.SessionService.End(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

func (c *SessionController) DeleteSession(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.SessionService.Delete(id); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
