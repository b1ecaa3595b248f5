package service

import (
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
)

// StreakService maintains consecutive-day activity records.
type StreakService struct {
	Streaks repository.StreakStore
	now     func() time.Time
}

// NewStreakService uses the wall clock. Tests swap now through
// NewStreakServiceWithClock to walk days deterministically.
func NewStreakService(streaks repository.StreakStore) *StreakService {
	return NewStreakServiceWithClock(streaks, time.Now)
}

func NewStreakServiceWithClock(streaks repository.StreakStore, now func() time.Time) *StreakService {
	return &StreakService{Streaks: streaks, now: now}
}

// Streak returns the user's current record without touching it.
func (s *StreakService) Streak(username string) model.StreakRecord {
	return s.Streaks.Streak(username)
}

// RecordActivity registers activity for today and returns the updated
// record. Rules, keyed on the gap since the last active calendar day:
// same day is a no-op, exactly one day extends the streak, anything longer
// (or a first sighting) restarts it at 1. LongestStreak only ever grows,
// and ActiveDays keeps at most the most recent MaxActiveDays entries.
func (s *StreakService) RecordActivity(username string) (model.StreakRecord, error) {
	rec := s.Streaks.Streak(username)
	today := s.now().Format(model.DateLayout)

	if rec.LastActiveDate == today {
		return rec, nil
	}

	switch {
	case rec.LastActiveDate == "":
		rec.CurrentStreak = 1
	default:
		last, err := time.Parse(model.DateLayout, rec.LastActiveDate)
		if err != nil {
			rec.CurrentStreak = 1
			break
		}
		now, _ := time.Parse(model.DateLayout, today)
		gap := int(now.Sub(last).Hours() / 24)
		if gap == 1 {
			rec.CurrentStreak++
		} else {
			rec.CurrentStreak = 1
		}
	}

	if rec.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = rec.CurrentStreak
	}
	rec.LastActiveDate = today

	if !rec.HasDay(today) {
		rec.ActiveDays = append(rec.ActiveDays, today)
		if len(rec.ActiveDays) > model.MaxActiveDays {
			rec.ActiveDays = rec.ActiveDays[len(rec.ActiveDays)-model.MaxActiveDays:]
		}
	}

	rec.Username = username
	if err := s.Streaks.SaveStreak(rec); err != nil {
		return rec, err
	}
	return rec, nil
}
