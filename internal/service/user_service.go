package service

import (
	"strings"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
)

// UserService handles the username-only login flow and level overrides.
// There is no authentication: a username is an identifier, not an identity.
type UserService struct {
	Progress repository.ProgressStore
	Streaks  *StreakService
}

func NewUserService(progress repository.ProgressStore, streaks *StreakService) *UserService {
	return &UserService{Progress: progress, Streaks: streaks}
}

// LoginResult is what a session starts from.
type LoginResult struct {
	Progress model.UserProgress `json:"progress"`
	Streak   model.StreakRecord `json:"streak"`
}

// Login creates the user on first sight (as a beginner with nothing
// completed) and counts the login as streak activity.
func (s *UserService) Login(username string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return LoginResult{}, util.ErrBlankUsername
	}

	progress := s.Progress.UserProgress(username)
	if progress.LastUpdated.IsZero() {
		if err := s.Progress.SaveUserProgress(username, progress.CompletedResources, progress.CurrentLevel); err != nil {
			return LoginResult{}, err
		}
		progress = s.Progress.UserProgress(username)
	}

	streak, err := s.Streaks.RecordActivity(username)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Progress: progress, Streak: streak}, nil
}

// SetLevel force-sets a user's level, keeping their completion set.
func (s *UserService) SetLevel(username string, level model.Level) (model.UserProgress, error) {
	if !level.Valid() {
		return model.UserProgress{}, util.ErrUnknownLevel
	}
	progress := s.Progress.UserProgress(username)
	if err := s.Progress.SaveUserProgress(username, progress.CompletedResources, level); err != nil {
		return progress, err
	}
	return s.Progress.UserProgress(username), nil
}
