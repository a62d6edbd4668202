package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/Raam751/ClassPulse/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformReportTotals(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reportService()

	teacher := env.seedUser(t, "Amy Teacher", model.Teacher)
	student := env.seedUser(t, "Bea Student", model.Student)
	env.seedUser(t, "Cy Student", model.Student)

	active := env.seedSession(t, teacher, "700001", model.SessionActive)
	env.seedSession(t, teacher, "700002", model.SessionCreated)
	question := env.seedQuestion(t, active, "Counted?", model.QuestionText)
	env.seedResponse(t, question, student, "yes")

	report, err := svc.GeneratePlatformReport()
	require.NoError(t, err)

	assert.EqualValues(t, 3, report.TotalUsers)
	assert.EqualValues(t, 1, report.TotalTeachers)
	assert.EqualValues(t, 2, report.TotalStudents)
	assert.EqualValues(t, 2, report.TotalSessions)
	assert.EqualValues(t, 1, report.ActiveSessions)
	assert.EqualValues(t, 1, report.TotalQuestions)
	assert.EqualValues(t, 1, report.TotalResponses)
}

func TestTopTeachersRankingAndTies(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reportService()

	first := env.seedUser(t, "Dee Teacher", model.Teacher)
	second := env.seedUser(t, "Edd Teacher", model.Teacher)
	third := env.seedUser(t, "Fin Teacher", model.Teacher)

	seed := func(teacher *model.User, n int, base string) {
		for i := 0; i < n; i++ {
			env.seedSession(t, teacher, fmt.Sprintf("%s%02d", base, i), model.SessionEnded)
		}
	}
	seed(first, 5, "7100")
	seed(second, 5, "7200")
	seed(third, 2, "7300")

	report, err := svc.GeneratePlatformReport()
	require.NoError(t, err)
	require.Len(t, report.TopTeachers, 3)

	// 5-5-2 with the tie resolved in id order.
	assert.Equal(t, first.ID, report.TopTeachers[0].TeacherID)
	assert.Equal(t, second.ID, report.TopTeachers[1].TeacherID)
	assert.Equal(t, third.ID, report.TopTeachers[2].TeacherID)
	assert.Equal(t, 5, report.TopTeachers[0].SessionCount)
	assert.Equal(t, 2, report.TopTeachers[2].SessionCount)
}

func TestTopTeachersLimit(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reportService()

	for i := 0; i < 7; i++ {
		teacher := env.seedUser(t, fmt.Sprintf("Bulk Teacher %d", i), model.Teacher)
		for j := 0; j <= i; j++ {
			env.seedSession(t, teacher, fmt.Sprintf("8%d%02d00", i, j)[:6], model.SessionCreated)
		}
	}

	report, err := svc.GeneratePlatformReport()
	require.NoError(t, err)
	require.Len(t, report.TopTeachers, 5)

	// Descending session counts: 7,6,5,4,3.
	for i := 0; i < 4; i++ {
		assert.GreaterOrEqual(t, report.TopTeachers[i].SessionCount, report.TopTeachers[i+1].SessionCount)
	}
	assert.Equal(t, 7, report.TopTeachers[0].SessionCount)
	assert.Equal(t, 3, report.TopTeachers[4].SessionCount)
}

func TestRecentSessionsOrderAndLimit(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reportService()
	teacher := env.seedUser(t, "Gil Teacher", model.Teacher)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		session := &model.Session{
			Title:       fmt.Sprintf("Lecture %d", i),
			Code:        fmt.Sprintf("90%04d", i),
			Status:      model.SessionEnded,
			CreatedByID: teacher.ID,
		}
		session.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, env.Sessions.Create(session))
	}

	report, err := svc.GeneratePlatformReport()
	require.NoError(t, err)
	require.Len(t, report.RecentSessions, 10)

	// Newest first; the two oldest fall off.
	assert.Equal(t, "Lecture 11", report.RecentSessions[0].SessionTitle)
	assert.Equal(t, "Lecture 2", report.RecentSessions[9].SessionTitle)
	assert.Equal(t, teacher.Name, report.RecentSessions[0].TeacherName)
}

func TestRecentSessionsCounts(t *testing.T) {
	env := newTestEnv(t)
	svc := env.reportService()
	teacher := env.seedUser(t, "Hope Teacher", model.Teacher)
	student := env.seedUser(t, "Ian Student", model.Student)

	session := env.seedSession(t, teacher, "910001", model.SessionEnded)
	q1 := env.seedQuestion(t, session, "One", model.QuestionText)
	env.seedQuestion(t, session, "Two", model.QuestionText)
	env.seedResponse(t, q1, student, "hi")

	report, err := svc.GeneratePlatformReport()
	require.NoError(t, err)
	require.Len(t, report.RecentSessions, 1)

	stats := report.RecentSessions[0]
	assert.EqualValues(t, 2, stats.QuestionCount)
	assert.EqualValues(t, 1, stats.ResponseCount)
	assert.Equal(t, model.SessionEnded, stats.Status)
}
