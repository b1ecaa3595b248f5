package service

import (
	"fmt"
	"testing"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/jsonfile"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore backs the services with a seeded flat-file store in a
// throwaway directory.
func newTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	return store
}

func newProgressService(t *testing.T) (*ProgressService, *jsonfile.Store) {
	t.Helper()
	store := newTestStore(t)
	return NewProgressService(store, store), store
}

func syntheticResources(n int, level model.Level) []model.Resource {
	out := make([]model.Resource, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Resource{ID: fmt.Sprintf("r%d", i), Level: level})
	}
	return out
}

func TestLevelCompletion_NoResourcesAtLevel(t *testing.T) {
	pct := LevelCompletion(nil, []string{"r0"}, model.Beginner)
	assert.Equal(t, 0.0, pct)
}

func TestLevelCompletion_ExactThreshold(t *testing.T) {
	resources := syntheticResources(10, model.Beginner)
	completed := []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6"}

	pct := LevelCompletion(resources, completed, model.Beginner)
	assert.Equal(t, 70.0, pct)
	assert.GreaterOrEqual(t, pct, LevelUpThreshold)
}

func TestLevelCompletion_JustBelowThreshold(t *testing.T) {
	resources := syntheticResources(10, model.Beginner)
	completed := []string{"r0", "r1", "r2", "r3", "r4", "r5"}

	pct := LevelCompletion(resources, completed, model.Beginner)
	assert.Equal(t, 60.0, pct)
	assert.Less(t, pct, LevelUpThreshold)
}

func TestLevelCompletion_IgnoresOtherLevels(t *testing.T) {
	resources := append(syntheticResources(4, model.Beginner), model.Resource{ID: "x1", Level: model.Intermediate})

	pct := LevelCompletion(resources, []string{"r0", "r1", "x1"}, model.Beginner)
	assert.Equal(t, 50.0, pct)
}

func TestMarkCompleted_UnknownResource(t *testing.T) {
	svc, _ := newProgressService(t)

	_, err := svc.MarkCompleted("alice", "nope")
	assert.ErrorIs(t, err, util.ErrResourceNotFound)
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	svc, _ := newProgressService(t)

	_, err := svc.MarkCompleted("alice", "b1")
	require.NoError(t, err)
	progress, err := svc.MarkCompleted("alice", "b1")
	require.NoError(t, err)

	assert.Equal(t, []string{"b1"}, progress.CompletedResources)
}

func TestUnmarkCompleted_RemovesFromSet(t *testing.T) {
	svc, _ := newProgressService(t)

	_, err := svc.MarkCompleted("alice", "b1")
	require.NoError(t, err)
	_, err = svc.MarkCompleted("alice", "b2")
	require.NoError(t, err)

	progress, err := svc.UnmarkCompleted("alice", "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b2"}, progress.CompletedResources)
}

func completeBeginner(t *testing.T, svc *ProgressService, n int) {
	t.Helper()
	ids := []string{"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8"}
	for _, id := range ids[:n] {
		_, err := svc.MarkCompleted("alice", id)
		require.NoError(t, err)
	}
}

func TestIsLevelUpEligible_AboveThreshold(t *testing.T) {
	svc, _ := newProgressService(t)

	// 6 of 8 beginner resources is 75 percent.
	completeBeginner(t, svc, 6)
	assert.True(t, svc.IsLevelUpEligible("alice"))
}

func TestIsLevelUpEligible_BelowThreshold(t *testing.T) {
	svc, _ := newProgressService(t)

	// 5 of 8 is 62.5 percent.
	completeBeginner(t, svc, 5)
	assert.False(t, svc.IsLevelUpEligible("alice"))
}

func TestLevelUp_AdvancesAndKeepsCompletions(t *testing.T) {
	svc, _ := newProgressService(t)
	completeBeginner(t, svc, 6)

	progress, err := svc.LevelUp("alice")
	require.NoError(t, err)

	assert.Equal(t, model.Intermediate, progress.CurrentLevel)
	assert.Len(t, progress.CompletedResources, 6)
}

func TestLevelUp_NotEligible(t *testing.T) {
	svc, _ := newProgressService(t)
	completeBeginner(t, svc, 3)

	_, err := svc.LevelUp("alice")
	assert.ErrorIs(t, err, util.ErrNotEligible)
}

func TestLevelUp_AtMaxLevel(t *testing.T) {
	svc, store := newProgressService(t)
	require.NoError(t, store.SaveUserProgress("alice", nil, model.Advanced))

	_, err := svc.LevelUp("alice")
	assert.ErrorIs(t, err, util.ErrMaxLevel)
}

func TestReplaceProgress_ReconcilesWholeState(t *testing.T) {
	svc, _ := newProgressService(t)
	completeBeginner(t, svc, 3)

	progress, err := svc.ReplaceProgress("alice", []string{"b5", "i1"}, model.Intermediate)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"b5", "i1"}, progress.CompletedResources)
	assert.Equal(t, model.Intermediate, progress.CurrentLevel)
}

func TestReplaceProgress_RejectsUnknownLevel(t *testing.T) {
	svc, _ := newProgressService(t)

	_, err := svc.ReplaceProgress("alice", nil, model.Level("wizard"))
	assert.ErrorIs(t, err, util.ErrUnknownLevel)
}

func TestReplaceProgress_RejectsUnknownResource(t *testing.T) {
	svc, _ := newProgressService(t)
	completeBeginner(t, svc, 2)

	_, err := svc.ReplaceProgress("alice", []string{"b1", "zzz"}, model.Beginner)
	assert.ErrorIs(t, err, util.ErrResourceNotFound)

	// Nothing was written.
	assert.ElementsMatch(t, []string{"b1", "b2"}, svc.Progress.UserProgress("alice").CompletedResources)
}

func TestOverview_FreshUser(t *testing.T) {
	svc, _ := newProgressService(t)

	overview := svc.Overview("nobody")

	assert.Equal(t, model.Beginner, overview.Progress.CurrentLevel)
	assert.Equal(t, 0.0, overview.CurrentPercentage)
	assert.Equal(t, 0.0, overview.OverallPercentage)
	assert.False(t, overview.LevelUpEligible)
	require.Len(t, overview.Levels, 3)
	for _, ls := range overview.Levels {
		assert.Equal(t, 8, ls.Total)
		assert.Equal(t, 0, ls.Completed)
	}
}

func TestOverview_RecentCompletionsCapped(t *testing.T) {
	svc, _ := newProgressService(t)
	completeBeginner(t, svc, 7)

	overview := svc.Overview("alice")
	assert.Len(t, overview.RecentCompletions, RecentCompletionLimit)
	assert.True(t, overview.LevelUpEligible)
	assert.InDelta(t, 100.0*7/24, overview.OverallPercentage, 0.001)
}
