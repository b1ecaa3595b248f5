package service

import (
	"math/rand"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
)

// OverflowThreshold is the current-level completion percentage at which
// recommendations start drawing from the next level.
const OverflowThreshold = 80.0

// OverflowCount is how many next-level resources at most join the pool.
const OverflowCount = 2

// DefaultRecommendationLimit caps a recommendation response when the caller
// does not ask for a specific count.
const DefaultRecommendationLimit = 5

// RecommendationService picks what a user should study next.
type RecommendationService struct {
	Catalog  repository.CatalogStore
	Progress repository.ProgressStore
	rng      *rand.Rand
}

// NewRecommendationService seeds its own shuffle source. Tests inject a
// fixed seed through NewRecommendationServiceWithSource.
func NewRecommendationService(catalog repository.CatalogStore, progress repository.ProgressStore) *RecommendationService {
	return NewRecommendationServiceWithSource(catalog, progress, rand.NewSource(time.Now().UnixNano()))
}

func NewRecommendationServiceWithSource(catalog repository.CatalogStore, progress repository.ProgressStore, src rand.Source) *RecommendationService {
	return &RecommendationService{Catalog: catalog, Progress: progress, rng: rand.New(src)}
}

// Recommend returns up to limit uncompleted resources from the user's
// current level, in shuffled order. Once the user clears OverflowThreshold
// at their level, up to OverflowCount uncompleted next-level resources join
// the pool so progress never stalls near the top of a level.
func (s *RecommendationService) Recommend(username string, limit int) []model.Resource {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	progress := s.Progress.UserProgress(username)
	resources := s.Catalog.Resources()
	completed := model.IDSet(progress.CompletedResources)

	pool := []model.Resource{}
	for _, r := range model.FilterResourcesByLevel(resources, progress.CurrentLevel) {
		if _, done := completed[r.ID]; !done {
			pool = append(pool, r)
		}
	}

	pct := LevelCompletion(resources, progress.CompletedResources, progress.CurrentLevel)
	if next, ok := progress.CurrentLevel.Next(); ok && pct >= OverflowThreshold {
		added := 0
		for _, r := range model.FilterResourcesByLevel(resources, next) {
			if added == OverflowCount {
				break
			}
			if _, done := completed[r.ID]; !done {
				pool = append(pool, r)
				added++
			}
		}
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}
