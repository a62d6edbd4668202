package util

import (
	"testing"
	"time"

	"github.com/Raam751/ClassPulse/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Name:  "Jo Teacher",
		Email: "jo@example.com",
		Role:  model.Teacher,
	}
	user.ID = 12

	token, err := GenerateJWT(user, "unit-test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)
	assert.Equal(t, "jo@example.com", claims.Email)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "jo@example.com", Role: model.Student}
	user.ID = 3

	token, err := GenerateJWT(user, "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "late@example.com", Role: model.Student}
	user.ID = 4

	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
