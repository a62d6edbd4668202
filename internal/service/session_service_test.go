package service

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var joinCodePattern = regexp.MustCompile(`^\d{6}$`)

func TestSessionCreate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	teacher := env.seedUser(t, "Alice Teacher", model.Teacher)

	session, err := svc.Create("Algebra Review", teacher.ID)
	require.NoError(t, err)

	assert.Equal(t, "Algebra Review", session.Title)
	assert.Equal(t, model.SessionCreated, session.Status)
	assert.Equal(t, teacher.ID, session.CreatedByID)
	assert.Regexp(t, joinCodePattern, session.Code)
}

func TestSessionCreateUnknownTeacher(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()

	_, err := svc.Create("Orphan Session", 999)
	assert.True(t, util.IsNotFound(err))
}

func TestSessionCreateCodesAreUnique(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	teacher := env.seedUser(t, "Bob Teacher", model.Teacher)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		session, err := svc.Create("Session", teacher.ID)
		require.NoError(t, err)
		assert.Regexp(t, joinCodePattern, session.Code)
		assert.False(t, seen[session.Code], "code %s issued twice", session.Code)
		seen[session.Code] = true
	}
}

func TestSessionCreateResamplesOnCodeCollision(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	teacher := env.seedUser(t, "Nel Teacher", model.Teacher)

	// Learn the first code the generator will sample, then hand that code
	// to an existing session.
	rand.Seed(42)
	taken := generateJoinCode()
	env.seedSession(t, teacher, taken, model.SessionCreated)

	// Replay the sequence: the first candidate collides and Create must
	// come back with a different code.
	rand.Seed(42)
	session, err := svc.Create("Collision", teacher.ID)
	require.NoError(t, err)
	assert.Regexp(t, joinCodePattern, session.Code)
	assert.NotEqual(t, taken, session.Code)
}

func TestSessionCodeUniqueIndex(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.seedUser(t, "Carol Teacher", model.Teacher)
	env.seedSession(t, teacher, "123456", model.SessionCreated)

	err := env.Sessions.Create(&model.Session{
		Title:       "Duplicate",
		Code:        "123456",
		Status:      model.SessionCreated,
		CreatedByID: teacher.ID,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSessionLifecycleTransitions(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	teacher := env.seedUser(t, "Dora Teacher", model.Teacher)

	session, err := svc.Create("Lifecycle", teacher.ID)
	require.NoError(t, err)

	// CREATED -> end is illegal and must not touch the row.
	_, err = svc.End(session.ID)
	require.True(t, util.IsInvalidState(err))
	assert.Contains(t, err.Error(), "CREATED")

	unchanged, err := svc.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCreated, unchanged.Status)

	started, err := svc.Start(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionActive, started.Status)

	// ACTIVE -> start again is illegal.
	_, err = svc.Start(session.ID)
	require.True(t, util.IsInvalidState(err))
	assert.Contains(t, err.Error(), "ACTIVE")

	ended, err := svc.End(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionEnded, ended.Status)

	// ENDED is terminal in both directions.
	_, err = svc.Start(session.ID)
	assert.True(t, util.IsInvalidState(err))
	_, err = svc.End(session.ID)
	assert.True(t, util.IsInvalidState(err))

	final, err := svc.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionEnded, final.Status)
}

func TestSessionTransitionUnknownID(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()

	_, err := svc.Start(42)
	assert.True(t, util.IsNotFound(err))
	_, err = svc.End(42)
	assert.True(t, util.IsNotFound(err))
}

func TestSessionGetByCode(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	teacher := env.seedUser(t, "Eve Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "654321", model.SessionActive)

	found, err := svc.GetByCode("654321")
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	require.NotNil(t, found.CreatedBy)
	assert.Equal(t, teacher.Name, found.CreatedBy.Name)

	_, err = svc.GetByCode("000000")
	assert.True(t, util.IsNotFound(err))
}

func TestSessionDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	teacher := env.seedUser(t, "Frank Teacher", model.Teacher)
	session := env.seedSession(t, teacher, "111222", model.SessionCreated)

	require.NoError(t, svc.Delete(session.ID))
	assert.True(t, util.IsNotFound(svc.Delete(session.ID)))

	_, err := svc.GetByID(session.ID)
	assert.True(t, util.IsNotFound(err))
}

func TestSessionFilter(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	alice := env.seedUser(t, "Alice Filter", model.Teacher)
	bob := env.seedUser(t, "Bob Filter", model.Teacher)

	env.seedSession(t, alice, "200001", model.SessionActive)
	env.seedSession(t, alice, "200002", model.SessionEnded)
	env.seedSession(t, bob, "200003", model.SessionActive)

	active, total, err := svc.Filter(repository.SessionFilter{Status: model.SessionActive}, 1, 10, "id", "asc")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, active, 2)

	aliceOnly, total, err := svc.Filter(repository.SessionFilter{TeacherID: alice.ID}, 1, 10, "id", "asc")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, s := range aliceOnly {
		assert.Equal(t, alice.ID, s.CreatedByID)
	}

	both, total, err := svc.Filter(repository.SessionFilter{Status: model.SessionActive, TeacherID: bob.ID}, 1, 10, "id", "asc")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, both, 1)
	assert.Equal(t, "200003", both[0].Code)
}

func TestSessionGetByTeacher(t *testing.T) {
	env := newTestEnv(t)
	svc := env.sessionService()
	teacher := env.seedUser(t, "Grace Teacher", model.Teacher)
	env.seedSession(t, teacher, "300001", model.SessionCreated)
	env.seedSession(t, teacher, "300002", model.SessionActive)

	sessions, err := svc.GetByTeacher(teacher.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	_, err = svc.GetByTeacher(999)
	assert.True(t, util.IsNotFound(err))
}
