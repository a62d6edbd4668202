package controller

import (
	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

func (c *AnalyticsController) GetSessionAnalytics(ctx *gin.Context) {
	sessionID, ok := idParam(ctx, "sessionId")
	if !ok {
		return
	}

	analytics, err := c.AnalyticsService.GetSessionAnalytics(sessionID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, analytics)
}

func (c *AnalyticsController) GetTeacherDashboard(ctx *gin.Context) {
	teacherID, ok := idParam(ctx, "teacherId")
	if !ok {
		return
	}

	dashboard, err := c.AnalyticsService.GetTeacherDashboard(teacherID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}
