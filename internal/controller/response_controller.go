package controller

import (
	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/internal/util"
	"github.com/Raam751/ClassPulse/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	ResponseService *service.ResponseService
}

func NewResponseController(responseService *service.ResponseService) *ResponseController {
	return &ResponseController{ResponseService: responseService}
}

type SubmitResponseRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	UserID     uint   `json:"userId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type UpdateResponseRequest struct {
	Answer string `json:"answer" binding:"required"`
}

func (c *ResponseController) GetResponses(ctx *gin.Context) {
	responses, err := c.ResponseService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, responses)
}

func (c *ResponseController) GetResponse(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.ResponseService.GetByID(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, response)
}

func (c *ResponseController) GetResponsesByQuestion(ctx *gin.Context) {
	questionID, ok := idParam(ctx, "questionId")
	if !ok {
		return
	}
	page, size, sortBy, sortDir := pageParams(ctx, "id")

	responses, total, err := c.ResponseService.GetPageByQuestion(questionID, page, size, sortBy, sortDir)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: responses, Total: total, Page: page, Size: size})
}

func (c *ResponseController) GetResponsesByUser(ctx *gin.Context) {
	userID, ok := idParam(ctx, "userId")
	if !ok {
		return
	}

	responses, err := c.ResponseService.GetByUser(userID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, responses)
}

func (c *ResponseController) SubmitResponse(ctx *gin.Context) {
	var req SubmitResponseRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	response, err := c.ResponseService.Submit(req.QuestionID, req.UserID, req.Answer)
	if err != nil {
		switch {
		case util.IsConflict(err):
			monitoring.ResponseSubmissions.WithLabelValues("duplicate").Inc()
		case util.IsInvalidState(err):
			monitoring.ResponseSubmissions.WithLabelValues("rejected").Inc()
		}
		util.HandleServiceError(ctx, err)
		return
	}

	monitoring.ResponseSubmissions.WithLabelValues("accepted").Inc()
	util.Created(ctx, response)
}

func (c *ResponseController) UpdateResponse(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateResponseRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	response, err := c.ResponseService.Update(id, req.Answer)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, response)
}

func (c *ResponseController) DeleteResponse(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.ResponseService.Delete(id); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
