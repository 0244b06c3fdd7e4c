package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExercisesListIsStable(t *testing.T) {
	svc := NewCalmService(testDB(t))
	exercises := svc.Exercises()
	require.Len(t, exercises, 5)
	assert.Equal(t, "box-breathing", exercises[0].Slug)
}

func TestLogSessionSkipsUnknownExercise(t *testing.T) {
	svc := NewCalmService(testDB(t))

	session, err := svc.LogSession(1, "primal-scream", 120)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogAndListSessions(t *testing.T) {
	svc := NewCalmService(testDB(t))

	_, err := svc.LogSession(1, "box-breathing", 240)
	require.NoError(t, err)
	session, err := svc.LogSession(1, "body-scan", -5)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 0, session.Seconds)

	sessions, err := svc.RecentSessions(1, 0)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	sessions, err = svc.RecentSessions(1, 1)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}
