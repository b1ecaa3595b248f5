package jsonfile

import (
	"os"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
)

func (s *Store) readStreaks() map[string]model.StreakRecord {
	records := map[string]model.StreakRecord{}
	if err := s.readJSON(streaksFile, &records); err != nil && !os.IsNotExist(err) {
		// Corrupt streak state restarts history rather than failing.
		return map[string]model.StreakRecord{}
	}
	return records
}

// Streak returns the stored record, or an empty one for unseen users.
func (s *Store) Streak(username string) model.StreakRecord {
	rec, ok := s.readStreaks()[username]
	if !ok {
		return model.StreakRecord{Username: username, ActiveDays: []string{}}
	}
	rec.Username = username
	if rec.ActiveDays == nil {
		rec.ActiveDays = []string{}
	}
	return rec
}

// SaveStreak upserts the user's streak record.
func (s *Store) SaveStreak(rec model.StreakRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readStreaks()
	records[rec.Username] = rec
	return s.writeJSON(streaksFile, records)
}
