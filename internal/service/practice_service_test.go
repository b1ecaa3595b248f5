package service

import (
	"math/rand"
	"testing"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPracticeService(t *testing.T) *PracticeService {
	t.Helper()
	store := newTestStore(t)
	return NewPracticeServiceWithSource(store, store, rand.NewSource(1))
}

func TestProblems_PlatformFilter(t *testing.T) {
	svc := newPracticeService(t)

	problems := svc.Problems(model.PlatformLeetCode, "", "", "", false)
	require.NotEmpty(t, problems)
	for _, p := range problems {
		assert.Equal(t, model.PlatformLeetCode, p.Platform)
	}
}

func TestProblems_HideCompleted(t *testing.T) {
	svc := newPracticeService(t)

	require.NoError(t, svc.MarkCompleted("alice", "lc1"))

	visible := svc.Problems("", "", "", "alice", true)
	for _, p := range visible {
		assert.NotEqual(t, "lc1", p.ID)
	}
	assert.Len(t, svc.Problems("", "", "", "alice", false), len(visible)+1)
}

func TestProblemsForUser_MatchesLevelDifficulty(t *testing.T) {
	svc := newPracticeService(t)

	// A fresh user is a beginner, so only Easy and Basic problems apply.
	problems := svc.ProblemsForUser("fresh")
	require.NotEmpty(t, problems)
	for _, p := range problems {
		assert.Contains(t, []string{"Easy", "Basic"}, p.Difficulty)
	}
}

func TestMarkCompleted_UnknownProblem(t *testing.T) {
	svc := newPracticeService(t)

	err := svc.MarkCompleted("alice", "nope")
	assert.ErrorIs(t, err, util.ErrProblemNotFound)
}

func TestPracticeMarkCompleted_Idempotent(t *testing.T) {
	svc := newPracticeService(t)

	require.NoError(t, svc.MarkCompleted("alice", "lc1"))
	require.NoError(t, svc.MarkCompleted("alice", "lc1"))

	assert.Equal(t, []string{"lc1"}, svc.Completed("alice"))
}

func TestUnmarkCompleted_RemovesSolve(t *testing.T) {
	svc := newPracticeService(t)

	require.NoError(t, svc.MarkCompleted("alice", "lc1"))
	require.NoError(t, svc.UnmarkCompleted("alice", "lc1"))

	assert.Empty(t, svc.Completed("alice"))
}

func TestRecommend_ExcludesSolvedAndCapped(t *testing.T) {
	svc := newPracticeService(t)

	require.NoError(t, svc.MarkCompleted("alice", "lc1"))

	got := svc.Recommend("alice")
	assert.LessOrEqual(t, len(got), PracticeRecommendationCount)
	for _, p := range got {
		assert.NotEqual(t, "lc1", p.ID)
	}
}

func TestStats_AggregatesByPlatformAndDifficulty(t *testing.T) {
	svc := newPracticeService(t)

	require.NoError(t, svc.MarkCompleted("alice", "lc1"))
	require.NoError(t, svc.MarkCompleted("alice", "hr1"))

	stats := svc.Stats("alice")
	assert.Equal(t, 2, stats.TotalSolved)
	assert.Equal(t, 1, stats.ByPlatform[model.PlatformLeetCode])
	assert.Equal(t, 1, stats.ByPlatform[model.PlatformHackerRank])
}

func TestStats_FreshUserIsZero(t *testing.T) {
	svc := newPracticeService(t)

	stats := svc.Stats("nobody")
	assert.Equal(t, 0, stats.TotalSolved)
	assert.Empty(t, stats.ByPlatform)
}
