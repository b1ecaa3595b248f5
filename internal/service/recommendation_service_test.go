package service

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationService(t *testing.T) (*RecommendationService, *ProgressService) {
	t.Helper()
	store := newTestStore(t)
	rec := NewRecommendationServiceWithSource(store, store, rand.NewSource(1))
	return rec, NewProgressService(store, store)
}

func idSetOf(resources []model.Resource) map[string]struct{} {
	set := map[string]struct{}{}
	for _, r := range resources {
		set[r.ID] = struct{}{}
	}
	return set
}

func TestRecommend_OnlyUncompletedAtCurrentLevel(t *testing.T) {
	rec, progress := newRecommendationService(t)

	// 5 of 8 beginner resources completed: 62.5 percent, below overflow.
	completeBeginner(t, progress, 5)

	got := rec.Recommend("alice", 10)
	require.Len(t, got, 3)

	set := idSetOf(got)
	for _, id := range []string{"b6", "b7", "b8"} {
		assert.Contains(t, set, id)
	}
	for _, r := range got {
		assert.Equal(t, model.Beginner, r.Level)
	}
}

func TestRecommend_OverflowNearLevelCompletion(t *testing.T) {
	rec, progress := newRecommendationService(t)

	// 7 of 8 is 87.5 percent, above the overflow threshold.
	completeBeginner(t, progress, 7)

	got := rec.Recommend("alice", 10)
	require.Len(t, got, 3)

	beginners, intermediates := 0, 0
	for _, r := range got {
		switch r.Level {
		case model.Beginner:
			beginners++
			assert.Equal(t, "b8", r.ID)
		case model.Intermediate:
			intermediates++
		}
	}
	assert.Equal(t, 1, beginners)
	assert.Equal(t, OverflowCount, intermediates)
}

// catalogStore opens a flat-file store over a hand-built resource catalog,
// written before New so the seeded defaults do not apply.
func catalogStore(t *testing.T, resources []model.Resource) *jsonfile.Store {
	t.Helper()
	dir := t.TempDir()
	data, err := json.Marshal(resources)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resources.json"), data, 0644))
	store, err := jsonfile.New(dir)
	require.NoError(t, err)
	return store
}

func TestRecommend_OverflowAtExactThreshold(t *testing.T) {
	// The default catalog has 8 resources per level, which cannot land on
	// the threshold exactly; 8 of 10 completed is precisely 80 percent.
	resources := make([]model.Resource, 0, 13)
	for i := 1; i <= 10; i++ {
		resources = append(resources, model.Resource{
			ID:    fmt.Sprintf("c%d", i),
			Title: fmt.Sprintf("Course %d", i),
			Level: model.Beginner,
		})
	}
	for i := 1; i <= 3; i++ {
		resources = append(resources, model.Resource{
			ID:    fmt.Sprintf("m%d", i),
			Title: fmt.Sprintf("Module %d", i),
			Level: model.Intermediate,
		})
	}

	store := catalogStore(t, resources)
	rec := NewRecommendationServiceWithSource(store, store, rand.NewSource(1))
	progress := NewProgressService(store, store)

	for i := 1; i <= 8; i++ {
		_, err := progress.MarkCompleted("alice", fmt.Sprintf("c%d", i))
		require.NoError(t, err)
	}

	// The trigger is inclusive, so next-level resources already join here.
	got := rec.Recommend("alice", 10)
	require.Len(t, got, 2+OverflowCount)

	intermediates := 0
	for _, r := range got {
		if r.Level == model.Intermediate {
			intermediates++
		}
	}
	assert.Equal(t, OverflowCount, intermediates)
}

func TestRecommend_LimitApplied(t *testing.T) {
	rec, _ := newRecommendationService(t)

	got := rec.Recommend("fresh", 3)
	require.Len(t, got, 3)
	for _, r := range got {
		assert.Equal(t, model.Beginner, r.Level)
	}
}

func TestRecommend_DefaultLimit(t *testing.T) {
	rec, _ := newRecommendationService(t)

	got := rec.Recommend("fresh", 0)
	assert.Len(t, got, DefaultRecommendationLimit)
}

func TestRecommend_NothingLeft(t *testing.T) {
	rec, progress := newRecommendationService(t)

	// Everything at every level done: the pool is empty.
	all := []string{
		"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8",
		"i1", "i2", "i3", "i4", "i5", "i6", "i7", "i8",
		"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8",
	}
	for _, id := range all {
		_, err := progress.MarkCompleted("alice", id)
		require.NoError(t, err)
	}

	assert.Empty(t, rec.Recommend("alice", 10))
}
