package controller

import (
	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type CreateQuestionRequest struct {
	SessionID   uint   `json:"sessionId" binding:"required"`
	Text        string `json:"text" binding:"required"`
	Type        string `json:"type" binding:"required"`
	OptionsJSON string `json:"optionsJson"`
}

type UpdateQuestionRequest struct {
	Text        string `json:"text" binding:"required"`
	Type        string `json:"type" binding:"required"`
	OptionsJSON string `json:"optionsJson"`
}

func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	questions, err := c.QuestionService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	question, err := c.QuestionService.GetByID(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

func (c *QuestionController) GetQuestionsBySession(ctx *gin.Context) {
	sessionID, ok := idParam(ctx, "sessionId")
	if !ok {
		return
	}

	questions, err := c.QuestionService.GetBySession(sessionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	question, err := c.QuestionService.Create(req.SessionID, req.Text, model.QuestionType(req.Type), req.OptionsJSON)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateQuestionRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	question, err := c.QuestionService.Update(id, req.Text, model.QuestionType(req.Type), req.OptionsJSON)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.QuestionService.Delete(id); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
