package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the same error
// translation the production config uses, so duplicate-key detection
// behaves identically.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	DB        *gorm.DB
	Users     *repository.UserRepository
	Sessions  *repository.SessionRepository
	Questions *repository.QuestionRepository
	Responses *repository.ResponseRepository
}

func newTestEnv(t *testing.T) *testEnv {
	db := newTestDB(t)
	return &testEnv{
		DB:        db,
		Users:     repository.NewUserRepository(db),
		Sessions:  repository.NewSessionRepository(db),
		Questions: repository.NewQuestionRepository(db),
		Responses: repository.NewResponseRepository(db),
	}
}

func (e *testEnv) sessionService() *SessionService {
	return NewSessionService(e.Sessions, e.Users, nil, e.DB)
}

func (e *testEnv) questionService() *QuestionService {
	return NewQuestionService(e.Questions, e.Sessions, e.DB)
}

func (e *testEnv) responseService() *ResponseService {
	return NewResponseService(e.Responses, e.Questions, e.Users, e.DB)
}

func (e *testEnv) analyticsService() *AnalyticsService {
	return NewAnalyticsService(e.Sessions, e.Questions, e.Responses, e.Users, nil, 30*time.Second)
}

func (e *testEnv) reportService() *ReportService {
	return NewReportService(e.Users, e.Sessions, e.Questions, e.Responses)
}

func (e *testEnv) seedUser(t *testing.T, name string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, e.Users.Create(user))
	return user
}

func (e *testEnv) seedSession(t *testing.T, teacher *model.User, code string, status model.SessionStatus) *model.Session {
	t.Helper()
	session := &model.Session{
		Title:       "Session " + code,
		Code:        code,
		Status:      status,
		CreatedByID: teacher.ID,
	}
	require.NoError(t, e.Sessions.Create(session))
	return session
}

func (e *testEnv) seedQuestion(t *testing.T, session *model.Session, text string, questionType model.QuestionType) *model.Question {
	t.Helper()
	question := &model.Question{
		SessionID: session.ID,
		Text:      text,
		Type:      questionType,
	}
	require.NoError(t, e.Questions.Create(question))
	return question
}

func (e *testEnv) seedResponse(t *testing.T, question *model.Question, user *model.User, answer string) *model.Response {
	t.Helper()
	response := &model.Response{
		QuestionID: question.ID,
		UserID:     user.ID,
		Answer:     answer,
	}
	require.NoError(t, e.DB.Create(response).Error)
	return response
}
