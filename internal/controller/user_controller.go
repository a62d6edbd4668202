package controller

import (
	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=student teacher"`
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.UserService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}

func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.UserService.GetByID(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

func (c *UserController) GetUserByEmail(ctx *gin.Context) {
	user, err := c.UserService.GetByEmail(ctx.Param("email"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

func (c *UserController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.UserService.GetTeachers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, teachers)
}

func (c *UserController) GetStudents(ctx *gin.Context) {
	students, err := c.UserService.GetStudents()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, students)
}

func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user, err := c.UserService.Update(id, req.Name, req.Email, model.UserRole(req.Role))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.UserService.Delete(id); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
