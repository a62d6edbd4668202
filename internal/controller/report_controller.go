package controller

import (
	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

func (c *ReportController) GetPlatformReport(ctx *gin.Context) {
	report, err := c.ReportService.GeneratePlatformReport()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
