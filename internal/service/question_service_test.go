package service

import (
	"testing"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionCreate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.questionService()
	teacher := env.seedUser(t, "Quinn Teacher", model.Teacher)

	created := env.seedSession(t, teacher, "400001", model.SessionCreated)
	active := env.seedSession(t, teacher, "400002", model.SessionActive)
	ended := env.seedSession(t, teacher, "400003", model.SessionEnded)

	q1, err := svc.Create(created.ID, "What is 2+2?", model.QuestionMCQ, `["3","4","5"]`)
	require.NoError(t, err)
	assert.Equal(t, created.ID, q1.SessionID)

	_, err = svc.Create(active.ID, "Rate the pace", model.QuestionRating, "")
	require.NoError(t, err)

	_, err = svc.Create(ended.ID, "Too late", model.QuestionText, "")
	require.True(t, util.IsInvalidState(err))

	_, err = svc.Create(999, "Nowhere", model.QuestionText, "")
	assert.True(t, util.IsNotFound(err))
}

func TestQuestionUpdateBlockedOnEndedSession(t *testing.T) {
	env := newTestEnv(t)
	svc := env.questionService()
	teacher := env.seedUser(t, "Rae Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "400010", model.SessionActive)
	question := env.seedQuestion(t, session, "Original text", model.QuestionText)

	updated, err := svc.Update(question.ID, "Edited text", model.QuestionText, "")
	require.NoError(t, err)
	assert.Equal(t, "Edited text", updated.Text)

	require.NoError(t, env.DB.Model(session).Update("status", model.SessionEnded).Error)

	_, err = svc.Update(question.ID, "Post-mortem edit", model.QuestionText, "")
	require.True(t, util.IsInvalidState(err))
	assert.Contains(t, err.Error(), "ENDED")

	// The rejected edit must not have leaked through.
	reloaded, err := svc.GetByID(question.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited text", reloaded.Text)
}

func TestQuestionDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := env.questionService()
	teacher := env.seedUser(t, "Sam Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "400020", model.SessionActive)
	question := env.seedQuestion(t, session, "Disposable", model.QuestionText)

	require.NoError(t, svc.Delete(question.ID))
	assert.True(t, util.IsNotFound(svc.Delete(question.ID)))

	_, err := svc.GetByID(question.ID)
	assert.True(t, util.IsNotFound(err))
}

func TestQuestionGetBySession(t *testing.T) {
	env := newTestEnv(t)
	svc := env.questionService()
	teacher := env.seedUser(t, "Tess Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "400030", model.SessionActive)
	other := env.seedSession(t, teacher, "400031", model.SessionActive)

	env.seedQuestion(t, session, "First", model.QuestionText)
	env.seedQuestion(t, session, "Second", model.QuestionMCQ)
	env.seedQuestion(t, other, "Elsewhere", model.QuestionText)

	questions, err := svc.GetBySession(session.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "First", questions[0].Text)
	assert.Equal(t, "Second", questions[1].Text)
}
