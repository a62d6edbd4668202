package service

import (
	"testing"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoleListings(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.Users)

	env.seedUser(t, "Ada Teacher", model.Teacher)
	env.seedUser(t, "Bel Student", model.Student)
	env.seedUser(t, "Cam Student", model.Student)

	teachers, err := svc.GetTeachers()
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Ada Teacher", teachers[0].Name)

	students, err := svc.GetStudents()
	require.NoError(t, err)
	assert.Len(t, students, 2)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.Users)
	user := env.seedUser(t, "Dot Student", model.Student)
	env.seedUser(t, "Eda Student", model.Student)

	updated, err := svc.Update(user.ID, "Dot Promoted", "dot.promoted@example.com", model.Teacher)
	require.NoError(t, err)
	assert.Equal(t, model.Teacher, updated.Role)
	assert.Equal(t, "dot.promoted@example.com", updated.Email)

	// Stealing another account's email is a conflict.
	_, err = svc.Update(user.ID, "Dot Promoted", "eda.student@example.com", model.Teacher)
	assert.True(t, util.IsConflict(err))

	_, err = svc.Update(999, "Ghost", "ghost@example.com", model.Student)
	assert.True(t, util.IsNotFound(err))
}

func TestUserDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.Users)
	user := env.seedUser(t, "Fox Student", model.Student)

	require.NoError(t, svc.Delete(user.ID))
	assert.True(t, util.IsNotFound(svc.Delete(user.ID)))

	_, err := svc.GetByEmail("fox.student@example.com")
	assert.True(t, util.IsNotFound(err))
}
