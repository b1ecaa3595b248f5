package service

import (
	"math/rand"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
)

// PracticeRecommendationCount is how many problems a practice
// recommendation returns at most.
const PracticeRecommendationCount = 3

// PracticeStats summarises a user's solved problems.
type PracticeStats struct {
	TotalSolved  int            `json:"total_solved"`
	ByPlatform   map[string]int `json:"by_platform"`
	ByDifficulty map[string]int `json:"by_difficulty"`
}

// PracticeService fronts the practice-problem tracker.
type PracticeService struct {
	Practice repository.PracticeStore
	Progress repository.ProgressStore
	rng      *rand.Rand
}

func NewPracticeService(practice repository.PracticeStore, progress repository.ProgressStore) *PracticeService {
	return NewPracticeServiceWithSource(practice, progress, rand.NewSource(time.Now().UnixNano()))
}

func NewPracticeServiceWithSource(practice repository.PracticeStore, progress repository.ProgressStore, src rand.Source) *PracticeService {
	return &PracticeService{Practice: practice, Progress: progress, rng: rand.New(src)}
}

// Problems runs the catalog through a filter pipeline. Empty filter values
// match everything; hideCompleted needs a username to know whose solves to
// hide.
func (s *PracticeService) Problems(platform, difficulty, tag, username string, hideCompleted bool) []model.PracticeProblem {
	var solved map[string]struct{}
	if hideCompleted && username != "" {
		solved = model.IDSet(s.Practice.CompletedProblems(username))
	}

	out := []model.PracticeProblem{}
	for _, p := range s.Practice.PracticeProblems() {
		if platform != "" && p.Platform != platform {
			continue
		}
		if difficulty != "" && p.Difficulty != difficulty {
			continue
		}
		if tag != "" && !hasTag(p.Tags, tag) {
			continue
		}
		if solved != nil {
			if _, done := solved[p.ID]; done {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// ProblemsForUser returns the problems whose difficulty matches the user's
// current level.
func (s *PracticeService) ProblemsForUser(username string) []model.PracticeProblem {
	progress := s.Progress.UserProgress(username)
	allowed := map[string]struct{}{}
	for _, d := range model.DifficultiesForLevel(progress.CurrentLevel) {
		allowed[d] = struct{}{}
	}

	out := []model.PracticeProblem{}
	for _, p := range s.Practice.PracticeProblems() {
		if _, ok := allowed[p.Difficulty]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Completed returns the user's solved-problem ids.
func (s *PracticeService) Completed(username string) []string {
	return s.Practice.CompletedProblems(username)
}

// Recommend picks up to PracticeRecommendationCount unsolved problems at
// the user's level, in shuffled order.
func (s *PracticeService) Recommend(username string) []model.PracticeProblem {
	solved := model.IDSet(s.Practice.CompletedProblems(username))

	pool := []model.PracticeProblem{}
	for _, p := range s.ProblemsForUser(username) {
		if _, done := solved[p.ID]; !done {
			pool = append(pool, p)
		}
	}
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > PracticeRecommendationCount {
		pool = pool[:PracticeRecommendationCount]
	}
	return pool
}

// MarkCompleted records a solve. Unknown problem ids are rejected; solving
// the same problem twice is a no-op.
func (s *PracticeService) MarkCompleted(username, problemID string) error {
	if !s.problemExists(problemID) {
		return util.ErrProblemNotFound
	}
	return s.Practice.MarkProblemCompleted(username, problemID)
}

// UnmarkCompleted removes a solve.
func (s *PracticeService) UnmarkCompleted(username, problemID string) error {
	if !s.problemExists(problemID) {
		return util.ErrProblemNotFound
	}
	return s.Practice.UnmarkProblemCompleted(username, problemID)
}

// Stats aggregates the user's solves by platform and difficulty. Solved ids
// that have left the catalog still count toward the total.
func (s *PracticeService) Stats(username string) PracticeStats {
	byID := map[string]model.PracticeProblem{}
	for _, p := range s.Practice.PracticeProblems() {
		byID[p.ID] = p
	}

	stats := PracticeStats{
		ByPlatform:   map[string]int{},
		ByDifficulty: map[string]int{},
	}
	for _, id := range s.Practice.CompletedProblems(username) {
		stats.TotalSolved++
		if p, ok := byID[id]; ok {
			stats.ByPlatform[p.Platform]++
			stats.ByDifficulty[p.Difficulty]++
		}
	}
	return stats
}

func (s *PracticeService) problemExists(id string) bool {
	for _, p := range s.Practice.PracticeProblems() {
		if p.ID == id {
			return true
		}
	}
	return false
}
