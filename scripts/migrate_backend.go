// Manual one-way migration from the flat-file backend to the relational one.
//
// Copies user progress, streaks, discussions and practice completions from
// the configured data directory into the configured database. Catalogs are
// not copied; both backends seed the same defaults. Run it against an empty
// database so topic ids keep their numbering.
//
// Usage: go run scripts/migrate_backend.go
package main

import (
	"log"
	"os"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/config"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/database"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/jsonfile"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}

	src, err := jsonfile.New(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("failed to open json store: %v", err)
	}
	dst, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database store: %v", err)
	}

	usernames := map[string]struct{}{}

	for _, topic := range reverseTopics(src.Topics("")) {
		id, err := dst.AddTopic(topic.Title, topic.Content, topic.Author, topic.Category)
		if err != nil {
			log.Fatalf("failed to copy topic %d: %v", topic.ID, err)
		}
		for _, reply := range topic.Replies {
			if _, err := dst.AddReply(id, reply.Content, reply.Author); err != nil {
				log.Fatalf("failed to copy reply %d of topic %d: %v", reply.ID, topic.ID, err)
			}
		}
		usernames[topic.Author] = struct{}{}
	}

	migrated := 0
	for username := range collectUsernames(src, usernames) {
		progress := src.UserProgress(username)
		if err := dst.SaveUserProgress(username, progress.CompletedResources, progress.CurrentLevel); err != nil {
			log.Fatalf("failed to copy progress for %q: %v", username, err)
		}

		if streak := src.Streak(username); streak.LastActiveDate != "" {
			if err := dst.SaveStreak(streak); err != nil {
				log.Fatalf("failed to copy streak for %q: %v", username, err)
			}
		}

		for _, id := range src.CompletedProblems(username) {
			if err := dst.MarkProblemCompleted(username, id); err != nil {
				log.Fatalf("failed to copy problem completion for %q: %v", username, err)
			}
		}
		migrated++
	}

	log.Printf("migration complete: %d users copied to the %s database", migrated, cfg.Database.Driver)
}

// collectUsernames unions every username the file backend knows about: the
// progress file is authoritative, and topic authors join when they carry
// any other tracked state.
func collectUsernames(src *jsonfile.Store, extra map[string]struct{}) map[string]struct{} {
	names := map[string]struct{}{}
	for name := range extra {
		if src.Streak(name).LastActiveDate != "" || !src.UserProgress(name).LastUpdated.IsZero() {
			names[name] = struct{}{}
		}
	}
	for _, name := range src.Usernames() {
		names[name] = struct{}{}
	}
	return names
}

// reverseTopics restores insertion order; Topics lists newest-first.
func reverseTopics(topics []model.DiscussionTopic) []model.DiscussionTopic {
	out := make([]model.DiscussionTopic, len(topics))
	for i, t := range topics {
		out[len(topics)-1-i] = t
	}
	return out
}
