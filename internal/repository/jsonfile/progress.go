package jsonfile

import (
	"os"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
)

// progressRecord is the on-disk per-user shape inside user_progress.json.
// CompletionTimes is optional per entry; ids completed before the field
// existed simply have no timestamp.
type progressRecord struct {
	CompletedResources []string             `json:"completed_resources"`
	CurrentLevel       model.Level          `json:"current_level"`
	LastUpdated        time.Time            `json:"last_updated"`
	CompletionTimes    map[string]time.Time `json:"completion_times,omitempty"`
}

func (s *Store) readProgress() map[string]progressRecord {
	records := map[string]progressRecord{}
	if err := s.readJSON(progressFile, &records); err != nil && !os.IsNotExist(err) {
		return map[string]progressRecord{}
	}
	return records
}

// UserProgress returns the stored progress for a username, or a fresh
// beginner record when the user has never been seen.
func (s *Store) UserProgress(username string) model.UserProgress {
	rec, ok := s.readProgress()[username]
	if !ok {
		return model.UserProgress{
			Username:           username,
			CompletedResources: []string{},
			CurrentLevel:       model.Beginner,
		}
	}
	completed := rec.CompletedResources
	if completed == nil {
		completed = []string{}
	}
	level := rec.CurrentLevel
	if !level.Valid() {
		level = model.Beginner
	}
	return model.UserProgress{
		Username:           username,
		CompletedResources: completed,
		CurrentLevel:       level,
		LastUpdated:        rec.LastUpdated,
	}
}

// CompletedResources returns the completion relation for a user, carrying
// timestamps where recorded.
func (s *Store) CompletedResources(username string) []model.CompletedResource {
	rec, ok := s.readProgress()[username]
	if !ok {
		return []model.CompletedResource{}
	}
	rows := make([]model.CompletedResource, 0, len(rec.CompletedResources))
	for _, id := range rec.CompletedResources {
		rows = append(rows, model.CompletedResource{
			Username:    username,
			ResourceID:  id,
			CompletedAt: rec.CompletionTimes[id],
		})
	}
	return rows
}

// Usernames lists every user with a stored progress entry.
func (s *Store) Usernames() []string {
	records := s.readProgress()
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	return names
}

// SaveUserProgress rewrites the user's entry so the stored completion set
// exactly equals completedIDs. Ids already present keep their original
// completion time; new ids are stamped now; removed ids lose theirs.
//
// A malformed progress file reads as empty here like everywhere else, so
// the next save resets it to just this user's entry. Other users' rows are
// gone at that point; the read path has already logged the warning.
func (s *Store) SaveUserProgress(username string, completedIDs []string, level model.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readProgress()
	prev := records[username]

	now := time.Now()
	times := make(map[string]time.Time, len(completedIDs))
	deduped := make([]string, 0, len(completedIDs))
	seen := make(map[string]struct{}, len(completedIDs))
	for _, id := range completedIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
		if t, ok := prev.CompletionTimes[id]; ok {
			times[id] = t
		} else {
			times[id] = now
		}
	}

	records[username] = progressRecord{
		CompletedResources: deduped,
		CurrentLevel:       level,
		LastUpdated:        now,
		CompletionTimes:    times,
	}
	return s.writeJSON(progressFile, records)
}
