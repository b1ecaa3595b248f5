package repository

import (
	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/monitoring"
)

// instrumentedStore decorates a Store with per-operation counters so either
// backend's load shows up in /metrics.
type instrumentedStore struct {
	backend string
	next    Store
}

func withMetrics(backend string, next Store) Store {
	return &instrumentedStore{backend: backend, next: next}
}

func (s *instrumentedStore) count(op string) {
	monitoring.StorageOps.WithLabelValues(s.backend, op).Inc()
}

func (s *instrumentedStore) Resources() []model.Resource {
	s.count("resources")
	return s.next.Resources()
}

func (s *instrumentedStore) Projects() []model.Project {
	s.count("projects")
	return s.next.Projects()
}

func (s *instrumentedStore) UserProgress(username string) model.UserProgress {
	s.count("user_progress")
	return s.next.UserProgress(username)
}

func (s *instrumentedStore) CompletedResources(username string) []model.CompletedResource {
	s.count("completed_resources")
	return s.next.CompletedResources(username)
}

func (s *instrumentedStore) SaveUserProgress(username string, completedIDs []string, level model.Level) error {
	s.count("save_user_progress")
	return s.next.SaveUserProgress(username, completedIDs, level)
}

func (s *instrumentedStore) Topics(category string) []model.DiscussionTopic {
	s.count("topics")
	return s.next.Topics(category)
}

func (s *instrumentedStore) AddTopic(title, content, author, category string) (int, error) {
	s.count("add_topic")
	return s.next.AddTopic(title, content, author, category)
}

func (s *instrumentedStore) AddReply(topicID int, content, author string) (bool, error) {
	s.count("add_reply")
	return s.next.AddReply(topicID, content, author)
}

func (s *instrumentedStore) Streak(username string) model.StreakRecord {
	s.count("streak")
	return s.next.Streak(username)
}

func (s *instrumentedStore) SaveStreak(rec model.StreakRecord) error {
	s.count("save_streak")
	return s.next.SaveStreak(rec)
}

func (s *instrumentedStore) PracticeProblems() []model.PracticeProblem {
	s.count("practice_problems")
	return s.next.PracticeProblems()
}

func (s *instrumentedStore) CompletedProblems(username string) []string {
	s.count("completed_problems")
	return s.next.CompletedProblems(username)
}

func (s *instrumentedStore) MarkProblemCompleted(username, problemID string) error {
	s.count("mark_problem")
	return s.next.MarkProblemCompleted(username, problemID)
}

func (s *instrumentedStore) UnmarkProblemCompleted(username, problemID string) error {
	s.count("unmark_problem")
	return s.next.UnmarkProblemCompleted(username, problemID)
}
