package service

import (
	"testing"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAnalyticsEmptySession(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()
	teacher := env.seedUser(t, "Len Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "600001", model.SessionCreated)

	analytics, err := svc.GetSessionAnalytics(session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, analytics.SessionID)
	assert.Equal(t, 0, analytics.TotalQuestions)
	assert.Equal(t, 0, analytics.TotalResponses)
	assert.Equal(t, 0, analytics.UniqueParticipants)
	assert.Equal(t, 0.0, analytics.AverageResponsesPerQuestion)
	assert.Empty(t, analytics.QuestionAnalytics)
}

func TestSessionAnalyticsUnknownSession(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()

	_, err := svc.GetSessionAnalytics(999)
	assert.True(t, util.IsNotFound(err))
}

func TestSessionAnalyticsAggregation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()
	teacher := env.seedUser(t, "Mia Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "600002", model.SessionEnded)

	mcq := env.seedQuestion(t, session, "Pick a letter", model.QuestionMCQ)
	text := env.seedQuestion(t, session, "Any comments?", model.QuestionText)

	students := []*model.User{
		env.seedUser(t, "Ned Student", model.Student),
		env.seedUser(t, "Opal Student", model.Student),
		env.seedUser(t, "Pia Student", model.Student),
	}

	env.seedResponse(t, mcq, students[0], "A")
	env.seedResponse(t, mcq, students[1], "A")
	env.seedResponse(t, mcq, students[2], "B")
	env.seedResponse(t, text, students[0], "great")

	analytics, err := svc.GetSessionAnalytics(session.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.TotalQuestions)
	assert.Equal(t, 4, analytics.TotalResponses)
	assert.Equal(t, 3, analytics.UniqueParticipants)
	assert.Equal(t, 2.0, analytics.AverageResponsesPerQuestion)

	require.Len(t, analytics.QuestionAnalytics, 2)
	qa := analytics.QuestionAnalytics[0]
	assert.Equal(t, mcq.ID, qa.QuestionID)
	assert.Equal(t, 3, qa.ResponseCount)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, qa.AnswerDistribution)
	assert.Nil(t, qa.AverageRating)
}

func TestRatingAverageTreatsUnparseableAsZero(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()
	teacher := env.seedUser(t, "Raj Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "600003", model.SessionEnded)
	rating := env.seedQuestion(t, session, "Rate 1-5", model.QuestionRating)

	answers := []string{"4", "5", "bad", "3"}
	for i, answer := range answers {
		student := env.seedUser(t, "Rater "+string(rune('A'+i)), model.Student)
		env.seedResponse(t, rating, student, answer)
	}

	analytics, err := svc.GetSessionAnalytics(session.ID)
	require.NoError(t, err)
	require.Len(t, analytics.QuestionAnalytics, 1)

	qa := analytics.QuestionAnalytics[0]
	assert.Equal(t, 4, qa.ResponseCount)
	// (4+5+0+3) / 4 responses
	require.NotNil(t, qa.AverageRating)
	assert.Equal(t, 3.0, *qa.AverageRating)
}

func TestRatingAverageZeroResponses(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()
	teacher := env.seedUser(t, "Sol Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "600004", model.SessionActive)
	env.seedQuestion(t, session, "Unanswered rating", model.QuestionRating)

	analytics, err := svc.GetSessionAnalytics(session.ID)
	require.NoError(t, err)
	require.Len(t, analytics.QuestionAnalytics, 1)

	qa := analytics.QuestionAnalytics[0]
	require.NotNil(t, qa.AverageRating)
	assert.Equal(t, 0.0, *qa.AverageRating)
}

func TestTeacherDashboard(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()
	teacher := env.seedUser(t, "Tia Teacher", model.Teacher)
	other := env.seedUser(t, "Uri Teacher", model.Teacher)

	active := env.seedSession(t, teacher, "600005", model.SessionActive)
	ended := env.seedSession(t, teacher, "600006", model.SessionEnded)
	env.seedSession(t, other, "600007", model.SessionActive)

	q1 := env.seedQuestion(t, active, "Q1", model.QuestionText)
	q2 := env.seedQuestion(t, ended, "Q2", model.QuestionText)
	env.seedQuestion(t, ended, "Q3", model.QuestionMCQ)

	s1 := env.seedUser(t, "Val Student", model.Student)
	s2 := env.seedUser(t, "Wyn Student", model.Student)
	env.seedResponse(t, q1, s1, "a")
	env.seedResponse(t, q1, s2, "b")
	env.seedResponse(t, q2, s1, "c")

	dashboard, err := svc.GetTeacherDashboard(teacher.ID)
	require.NoError(t, err)

	assert.Equal(t, teacher.ID, dashboard.TeacherID)
	assert.Equal(t, 2, dashboard.TotalSessions)
	assert.Equal(t, 1, dashboard.ActiveSessions)
	assert.Equal(t, 1, dashboard.EndedSessions)
	assert.Equal(t, 3, dashboard.TotalQuestions)
	assert.Equal(t, 3, dashboard.TotalResponses)
	assert.Equal(t, 2, dashboard.TotalUniqueStudents)
	assert.Equal(t, 1.5, dashboard.AverageResponsesPerSession)
	assert.Equal(t, 1.5, dashboard.AverageQuestionsPerSession)
}

func TestTeacherDashboardIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()
	teacher := env.seedUser(t, "Xan Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "600008", model.SessionActive)
	question := env.seedQuestion(t, session, "Stable?", model.QuestionText)
	student := env.seedUser(t, "Yuri Student", model.Student)
	env.seedResponse(t, question, student, "yes")

	first, err := svc.GetTeacherDashboard(teacher.ID)
	require.NoError(t, err)
	second, err := svc.GetTeacherDashboard(teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTeacherDashboardUnknownTeacher(t *testing.T) {
	env := newTestEnv(t)
	svc := env.analyticsService()

	_, err := svc.GetTeacherDashboard(999)
	assert.True(t, util.IsNotFound(err))
}
