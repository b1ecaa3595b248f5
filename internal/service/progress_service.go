package service

import (
	"sort"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
)

// LevelUpThreshold is the completion percentage at the current level that
// makes a user eligible to advance.
const LevelUpThreshold = 70.0

// RecentCompletionLimit caps the recent-activity list in the overview.
const RecentCompletionLimit = 5

// LevelStats is the per-level slice of a user's progress overview.
type LevelStats struct {
	Level      model.Level `json:"level"`
	Total      int         `json:"total"`
	Completed  int         `json:"completed"`
	Percentage float64     `json:"percentage"`
}

// ProgressOverview is the dashboard payload for one user.
type ProgressOverview struct {
	Progress          model.UserProgress        `json:"progress"`
	Levels            []LevelStats              `json:"levels"`
	CurrentPercentage float64                   `json:"current_percentage"`
	OverallPercentage float64                   `json:"overall_percentage"`
	LevelUpEligible   bool                      `json:"level_up_eligible"`
	RecentCompletions []model.CompletedResource `json:"recent_completions"`
}

// ProgressService owns completion tracking and level advancement.
type ProgressService struct {
	Catalog  repository.CatalogStore
	Progress repository.ProgressStore
}

func NewProgressService(catalog repository.CatalogStore, progress repository.ProgressStore) *ProgressService {
	return &ProgressService{Catalog: catalog, Progress: progress}
}

// LevelCompletion computes the percentage of the given level's resources
// present in the completion set. A level with no resources is 0 percent,
// never a division by zero.
func LevelCompletion(resources []model.Resource, completedIDs []string, level model.Level) float64 {
	atLevel := model.FilterResourcesByLevel(resources, level)
	if len(atLevel) == 0 {
		return 0.0
	}
	completed := model.IDSet(completedIDs)
	done := 0
	for _, r := range atLevel {
		if _, ok := completed[r.ID]; ok {
			done++
		}
	}
	return float64(done) / float64(len(atLevel)) * 100.0
}

// CurrentCompletion returns the user's completion percentage at their
// current level.
func (s *ProgressService) CurrentCompletion(username string) float64 {
	progress := s.Progress.UserProgress(username)
	return LevelCompletion(s.Catalog.Resources(), progress.CompletedResources, progress.CurrentLevel)
}

// IsLevelUpEligible reports whether the user cleared the threshold at their
// current level and a next level exists.
func (s *ProgressService) IsLevelUpEligible(username string) bool {
	progress := s.Progress.UserProgress(username)
	if _, ok := progress.CurrentLevel.Next(); !ok {
		return false
	}
	pct := LevelCompletion(s.Catalog.Resources(), progress.CompletedResources, progress.CurrentLevel)
	return pct >= LevelUpThreshold
}

// LevelUp advances the user to the next level. ErrMaxLevel when there is no
// next level, ErrNotEligible below the threshold.
func (s *ProgressService) LevelUp(username string) (model.UserProgress, error) {
	progress := s.Progress.UserProgress(username)
	next, ok := progress.CurrentLevel.Next()
	if !ok {
		return progress, util.ErrMaxLevel
	}
	pct := LevelCompletion(s.Catalog.Resources(), progress.CompletedResources, progress.CurrentLevel)
	if pct < LevelUpThreshold {
		return progress, util.ErrNotEligible
	}
	if err := s.Progress.SaveUserProgress(username, progress.CompletedResources, next); err != nil {
		return progress, err
	}
	return s.Progress.UserProgress(username), nil
}

// MarkCompleted adds the resource to the user's completion set. Unknown
// resource ids are rejected; marking an already-complete resource is a no-op.
func (s *ProgressService) MarkCompleted(username, resourceID string) (model.UserProgress, error) {
	if !s.resourceExists(resourceID) {
		return model.UserProgress{}, util.ErrResourceNotFound
	}
	progress := s.Progress.UserProgress(username)
	if !progress.Completed(resourceID) {
		ids := append(progress.CompletedResources, resourceID)
		if err := s.Progress.SaveUserProgress(username, ids, progress.CurrentLevel); err != nil {
			return progress, err
		}
	}
	return s.Progress.UserProgress(username), nil
}

// UnmarkCompleted removes the resource from the user's completion set.
func (s *ProgressService) UnmarkCompleted(username, resourceID string) (model.UserProgress, error) {
	if !s.resourceExists(resourceID) {
		return model.UserProgress{}, util.ErrResourceNotFound
	}
	progress := s.Progress.UserProgress(username)
	if progress.Completed(resourceID) {
		ids := make([]string, 0, len(progress.CompletedResources))
		for _, id := range progress.CompletedResources {
			if id != resourceID {
				ids = append(ids, id)
			}
		}
		if err := s.Progress.SaveUserProgress(username, ids, progress.CurrentLevel); err != nil {
			return progress, err
		}
	}
	return s.Progress.UserProgress(username), nil
}

// ReplaceProgress overwrites the user's whole state in one call: the stored
// completion set is reconciled to exactly equal completedIDs and the level
// is set. Unknown levels and unknown resource ids are rejected before
// anything is written.
func (s *ProgressService) ReplaceProgress(username string, completedIDs []string, level model.Level) (model.UserProgress, error) {
	if !level.Valid() {
		return model.UserProgress{}, util.ErrUnknownLevel
	}
	for _, id := range completedIDs {
		if !s.resourceExists(id) {
			return model.UserProgress{}, util.ErrResourceNotFound
		}
	}
	if err := s.Progress.SaveUserProgress(username, completedIDs, level); err != nil {
		return model.UserProgress{}, err
	}
	return s.Progress.UserProgress(username), nil
}

// Overview assembles the dashboard payload: per-level stats, the current
// level's percentage and eligibility, the overall catalog percentage, and
// the five most recent completions.
func (s *ProgressService) Overview(username string) ProgressOverview {
	progress := s.Progress.UserProgress(username)
	resources := s.Catalog.Resources()

	completed := model.IDSet(progress.CompletedResources)
	totalDone := 0
	levels := make([]LevelStats, 0, len(model.Levels))
	for _, level := range model.Levels {
		atLevel := model.FilterResourcesByLevel(resources, level)
		done := 0
		for _, r := range atLevel {
			if _, ok := completed[r.ID]; ok {
				done++
			}
		}
		totalDone += done
		levels = append(levels, LevelStats{
			Level:      level,
			Total:      len(atLevel),
			Completed:  done,
			Percentage: LevelCompletion(resources, progress.CompletedResources, level),
		})
	}

	recent := s.Progress.CompletedResources(username)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CompletedAt.After(recent[j].CompletedAt)
	})
	if len(recent) > RecentCompletionLimit {
		recent = recent[:RecentCompletionLimit]
	}

	pct := LevelCompletion(resources, progress.CompletedResources, progress.CurrentLevel)
	overall := 0.0
	if len(resources) > 0 {
		overall = float64(totalDone) / float64(len(resources)) * 100
	}
	_, hasNext := progress.CurrentLevel.Next()

	return ProgressOverview{
		Progress:          progress,
		Levels:            levels,
		CurrentPercentage: pct,
		OverallPercentage: overall,
		LevelUpEligible:   hasNext && pct >= LevelUpThreshold,
		RecentCompletions: recent,
	}
}

func (s *ProgressService) resourceExists(id string) bool {
	for _, r := range s.Catalog.Resources() {
		if r.ID == id {
			return true
		}
	}
	return false
}
