package database

import (
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// PracticeProblems returns the full seeded catalog across platforms.
func (s *Store) PracticeProblems() []model.PracticeProblem {
	var records []problemRecord
	if err := s.DB.Order("platform, id").Find(&records).Error; err != nil {
		logger.Log.Warn("failed to load practice problems", zap.Error(err))
		return []model.PracticeProblem{}
	}
	out := make([]model.PracticeProblem, 0, len(records))
	for _, p := range records {
		out = append(out, p.toModel())
	}
	return out
}

// CompletedProblems returns the user's solved-problem ids in completion order.
func (s *Store) CompletedProblems(username string) []string {
	var records []problemCompletionRecord
	if err := s.DB.Where("username = ?", username).Order("completed_at").Find(&records).Error; err != nil {
		logger.Log.Warn("failed to load problem completions", zap.String("username", username), zap.Error(err))
		return []string{}
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ProblemID)
	}
	return ids
}

// MarkProblemCompleted records the problem for the user; the unique index
// plus DO NOTHING makes repeat calls no-ops.
func (s *Store) MarkProblemCompleted(username, problemID string) error {
	row := problemCompletionRecord{
		Username:    username,
		ProblemID:   problemID,
		CompletedAt: time.Now(),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "problem_id"}},
		DoNothing: true,
	}).Create(&row).Error
}

// UnmarkProblemCompleted removes the problem from the user's solved set.
func (s *Store) UnmarkProblemCompleted(username, problemID string) error {
	return s.DB.Delete(&problemCompletionRecord{}, "username = ? AND problem_id = ?", username, problemID).Error
}
