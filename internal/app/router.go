package app

import (
	"github.com/Raam751/ClassPulse/internal/middleware"
	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/pkg/monitoring"
)

func (a *App) registerRoutes() {
	a.Engine.GET("/health", a.healthController.Check)
	a.Engine.GET("/metrics", monitoring.PrometheusHandler())

	api := a.Engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", a.authController.Register)
		auth.POST("/login", a.authController.Login)
	}

	// Students look up a session by its join code before authenticating,
	// so the lookup stays public.
	api.GET("/sessions/code/:code", a.sessionController.GetSessionByCode)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(a.Config))

	authed.GET("/auth/profile", a.authController.GetProfile)

	teacherOnly := middleware.RoleMiddleware(model.Teacher)

	sessions := authed.Group("/sessions")
	{
		sessions.GET("", a.sessionController.GetSessions)
		sessions.GET("/:id", a.sessionController.GetSession)
		sessions.GET("/active", a.sessionController.GetActiveSessions)
		sessions.GET("/filter", a.sessionController.FilterSessions)
		sessions.GET("/teacher/:teacherId", a.sessionController.GetSessionsByTeacher)

		sessions.POST("", teacherOnly, a.sessionController.CreateSession)
		sessions.POST("/:id/start", teacherOnly, a.sessionController.StartSession)
		sessions.POST("/:id/end", teacherOnly, a.sessionController.EndSession)
		sessions.DELETE("/:id", teacherOnly, a.sessionController.DeleteSession)
	}

	questions := authed.Group("/questions")
	{
		questions.GET("", a.questionController.GetQuestions)
		questions.GET("/:id", a.questionController.GetQuestion)
		questions.GET("/session/:sessionId", a.questionController.GetQuestionsBySession)

		questions.POST("", teacherOnly, a.questionController.CreateQuestion)
		questions.PUT("/:id", teacherOnly, a.questionController.UpdateQuestion)
		questions.DELETE("/:id", teacherOnly, a.questionController.DeleteQuestion)
	}

	responses := authed.Group("/responses")
	{
		responses.GET("", teacherOnly, a.responseController.GetResponses)
		responses.GET("/:id", a.responseController.GetResponse)
		responses.GET("/question/:questionId", teacherOnly, a.responseController.GetResponsesByQuestion)
		responses.GET("/user/:userId", a.responseController.GetResponsesByUser)

		responses.POST("", a.responseController.SubmitResponse)
		responses.PUT("/:id", a.responseController.UpdateResponse)
		responses.DELETE("/:id", a.responseController.DeleteResponse)
	}

	analytics := authed.Group("/analytics", teacherOnly)
	{
		analytics.GET("/sessions/:sessionId", a.analyticsController.GetSessionAnalytics)
		analytics.GET("/teachers/:teacherId/dashboard", a.analyticsController.GetTeacherDashboard)
	}

	authed.GET("/reports/platform", teacherOnly, a.reportController.GetPlatformReport)

	users := authed.Group("/users")
	{
		users.GET("", teacherOnly, a.userController.GetUsers)
		users.GET("/:id", a.userController.GetUser)
		users.GET("/email/:email", teacherOnly, a.userController.GetUserByEmail)
		users.GET("/teachers", a.userController.GetTeachers)
		users.GET("/students", teacherOnly, a.userController.GetStudents)
		users.PUT("/:id", a.userController.UpdateUser)
		users.DELETE("/:id", a.userController.DeleteUser)
	}

	files := authed.Group("/files")
	{
		files.POST("", a.fileController.Upload)
		files.GET("/:filename", a.fileController.Download)
		files.DELETE("/:filename", teacherOnly, a.fileController.Delete)
	}
}
