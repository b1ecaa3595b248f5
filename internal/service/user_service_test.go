package service

import (
	"testing"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	store := newTestStore(t)
	return NewUserService(store, NewStreakService(store))
}

func TestLogin_CreatesFreshBeginner(t *testing.T) {
	svc := newUserService(t)

	result, err := svc.Login("alice")
	require.NoError(t, err)

	assert.Equal(t, model.Beginner, result.Progress.CurrentLevel)
	assert.Empty(t, result.Progress.CompletedResources)
	assert.False(t, result.Progress.LastUpdated.IsZero())
	assert.Equal(t, 1, result.Streak.CurrentStreak)
}

func TestLogin_SecondLoginKeepsState(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Login("alice")
	require.NoError(t, err)
	_, err = svc.SetLevel("alice", model.Intermediate)
	require.NoError(t, err)

	result, err := svc.Login("alice")
	require.NoError(t, err)
	assert.Equal(t, model.Intermediate, result.Progress.CurrentLevel)
	// Two logins on the same day are one day of activity.
	assert.Equal(t, 1, result.Streak.CurrentStreak)
	assert.Equal(t, time.Now().Format(model.DateLayout), result.Streak.LastActiveDate)
}

func TestLogin_BlankUsername(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Login("   ")
	assert.ErrorIs(t, err, util.ErrBlankUsername)
}

func TestSetLevel_Unknown(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.SetLevel("alice", model.Level("expert"))
	assert.ErrorIs(t, err, util.ErrUnknownLevel)
}

func TestSetLevel_KeepsCompletions(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store, NewStreakService(store))
	progress := NewProgressService(store, store)

	_, err := progress.MarkCompleted("alice", "b1")
	require.NoError(t, err)

	got, err := users.SetLevel("alice", model.Advanced)
	require.NoError(t, err)
	assert.Equal(t, model.Advanced, got.CurrentLevel)
	assert.Equal(t, []string{"b1"}, got.CompletedResources)
}
