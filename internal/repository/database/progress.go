package database

import (
	"errors"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserProgress assembles a user's state from the users table and the
// completion relation. Unknown users come back as fresh beginners.
func (s *Store) UserProgress(username string) model.UserProgress {
	progress := model.UserProgress{
		Username:           username,
		CompletedResources: []string{},
		CurrentLevel:       model.Beginner,
	}

	var user userRecord
	err := s.DB.First(&user, "username = ?", username).Error
	switch {
	case err == nil:
		if level := model.Level(user.CurrentLevel); level.Valid() {
			progress.CurrentLevel = level
		}
		progress.LastUpdated = user.LastUpdated
	case errors.Is(err, gorm.ErrRecordNotFound):
		return progress
	default:
		logger.Log.Warn("failed to load user", zap.String("username", username), zap.Error(err))
		return progress
	}

	var completions []completionRecord
	if err := s.DB.Where("username = ?", username).Order("completed_at").Find(&completions).Error; err != nil {
		logger.Log.Warn("failed to load completions", zap.String("username", username), zap.Error(err))
		return progress
	}
	for _, c := range completions {
		progress.CompletedResources = append(progress.CompletedResources, c.ResourceID)
	}
	return progress
}

// CompletedResources returns the completion relation rows for the user.
func (s *Store) CompletedResources(username string) []model.CompletedResource {
	var records []completionRecord
	if err := s.DB.Where("username = ?", username).Order("completed_at").Find(&records).Error; err != nil {
		logger.Log.Warn("failed to load completions", zap.String("username", username), zap.Error(err))
		return []model.CompletedResource{}
	}
	rows := make([]model.CompletedResource, 0, len(records))
	for _, r := range records {
		rows = append(rows, model.CompletedResource{
			Username:    r.Username,
			ResourceID:  r.ResourceID,
			CompletedAt: r.CompletedAt,
		})
	}
	return rows
}

// SaveUserProgress upserts the user row and reconciles the completion
// relation to exactly match completedIDs, all in one transaction. Existing
// rows keep their timestamps; new ids are stamped now; absent ids are
// deleted. Running it twice with the same arguments changes nothing the
// second time.
func (s *Store) SaveUserProgress(username string, completedIDs []string, level model.Level) error {
	now := time.Now()
	want := model.IDSet(completedIDs)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user userRecord
		err := tx.First(&user, "username = ?", username).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = userRecord{Username: username}
		case err != nil:
			return err
		}
		user.CurrentLevel = string(level)
		user.LastUpdated = now
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		var existing []completionRecord
		if err := tx.Where("username = ?", username).Find(&existing).Error; err != nil {
			return err
		}
		have := make(map[string]struct{}, len(existing))
		for _, row := range existing {
			have[row.ResourceID] = struct{}{}
			if _, keep := want[row.ResourceID]; !keep {
				if err := tx.Delete(&completionRecord{}, "username = ? AND resource_id = ?", username, row.ResourceID).Error; err != nil {
					return err
				}
			}
		}
		for _, id := range completedIDs {
			if _, done := have[id]; done {
				continue
			}
			have[id] = struct{}{}
			row := completionRecord{Username: username, ResourceID: id, CompletedAt: now}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
