// Package repository defines the persistence adapter: a backend-agnostic
// store contract with a flat-JSON-file implementation and a relational one.
// Business logic only ever sees the interfaces and the model types.
package repository

import (
	"fmt"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/config"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/database"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/jsonfile"
)

// CatalogStore serves the immutable reference data. Implementations seed the
// backing store with the default catalog when it is empty or missing, and
// degrade to an empty slice (with a logged warning) on unreadable content.
type CatalogStore interface {
	Resources() []model.Resource
	Projects() []model.Project
}

// ProgressStore tracks per-user level and resource completion.
type ProgressStore interface {
	// UserProgress never fails on an unknown username: the user is treated
	// as (or created as) a fresh beginner with an empty completion set.
	UserProgress(username string) model.UserProgress

	// CompletedResources returns the completion relation rows for the user,
	// including timestamps where the backend has them.
	CompletedResources(username string) []model.CompletedResource

	// SaveUserProgress upserts the user row (level, last activity) and
	// reconciles the stored completion set to exactly equal completedIDs:
	// missing ids are inserted with a current timestamp, ids absent from the
	// given set are deleted. Calling it twice with the same arguments is a
	// no-op the second time.
	SaveUserProgress(username string, completedIDs []string, level model.Level) error
}

// DiscussionStore is the append-only forum log.
type DiscussionStore interface {
	// Topics returns topics sorted by creation time descending. category ""
	// or "all" disables filtering; anything else is an exact match.
	Topics(category string) []model.DiscussionTopic

	// AddTopic assigns id = max(existing)+1 and returns it. The store does
	// not validate title/content; callers do.
	AddTopic(title, content, author, category string) (int, error)

	// AddReply appends a reply with a per-topic id starting at 1. It returns
	// false, without touching any topic, when topicID does not exist.
	AddReply(topicID int, content, author string) (bool, error)
}

// StreakStore persists per-user activity-day records. Corrupt streak state
// degrades to an empty record (streaks restart) rather than failing.
type StreakStore interface {
	Streak(username string) model.StreakRecord
	SaveStreak(rec model.StreakRecord) error
}

// PracticeStore serves the seeded problem catalog and per-user completion.
type PracticeStore interface {
	PracticeProblems() []model.PracticeProblem
	CompletedProblems(username string) []string
	// MarkProblemCompleted is idempotent; a problem is never recorded twice.
	MarkProblemCompleted(username, problemID string) error
	UnmarkProblemCompleted(username, problemID string) error
}

// Store aggregates every persistence concern behind one handle.
type Store interface {
	CatalogStore
	ProgressStore
	DiscussionStore
	StreakStore
	PracticeStore
}

// New selects the backend from configuration and wraps it with operation
// counters.
func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case "json":
		s, err := jsonfile.New(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		return withMetrics("json", s), nil
	case "database":
		s, err := database.New(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return withMetrics("database", s), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
