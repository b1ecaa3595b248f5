package database

import (
	"errors"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Streak returns the stored record, or an empty one for unseen users.
func (s *Store) Streak(username string) model.StreakRecord {
	var rec streakRecord
	if err := s.DB.First(&rec, "username = ?", username).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Warn("failed to load streak", zap.String("username", username), zap.Error(err))
		}
		return model.StreakRecord{Username: username, ActiveDays: []string{}}
	}
	return rec.toModel()
}

// SaveStreak upserts the user's streak record.
func (s *Store) SaveStreak(rec model.StreakRecord) error {
	row := streakRecord{
		Username:       rec.Username,
		CurrentStreak:  rec.CurrentStreak,
		LongestStreak:  rec.LongestStreak,
		LastActiveDate: rec.LastActiveDate,
		ActiveDays:     rec.ActiveDays,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		UpdateAll: true,
	}).Create(&row).Error
}
