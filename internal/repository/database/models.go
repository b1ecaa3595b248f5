package database

import (
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
)

// Record types are private to this package; they exist so the relational
// schema can differ from the wire/model shapes without leaking gorm tags
// into the domain types.

type userRecord struct {
	Username     string    `gorm:"primaryKey;size:191"`
	CurrentLevel string    `gorm:"size:32"`
	LastUpdated  time.Time `gorm:"autoUpdateTime:false"`
}

func (userRecord) TableName() string { return "users" }

type resourceRecord struct {
	ID          string   `gorm:"primaryKey;size:32"`
	Title       string   `gorm:"size:255"`
	Type        string   `gorm:"size:64"`
	Description string   `gorm:"type:text"`
	URL         string   `gorm:"size:512"`
	Level       string   `gorm:"size:32;index"`
	Tags        []string `gorm:"serializer:json"`
}

func (resourceRecord) TableName() string { return "resources" }

func (r resourceRecord) toModel() model.Resource {
	return model.Resource{
		ID:          r.ID,
		Title:       r.Title,
		Type:        r.Type,
		Description: r.Description,
		URL:         r.URL,
		Level:       model.Level(r.Level),
		Tags:        r.Tags,
	}
}

type projectRecord struct {
	ID          string   `gorm:"primaryKey;size:32"`
	Title       string   `gorm:"size:255"`
	Description string   `gorm:"type:text"`
	Level       string   `gorm:"size:32;index"`
	Difficulty  int
	Skills      []string `gorm:"serializer:json"`
	Details     string   `gorm:"type:text"`
	StarterCode string   `gorm:"type:text"`
}

func (projectRecord) TableName() string { return "projects" }

func (p projectRecord) toModel() model.Project {
	return model.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Level:       model.Level(p.Level),
		Difficulty:  p.Difficulty,
		Skills:      p.Skills,
		Details:     p.Details,
		StarterCode: p.StarterCode,
	}
}

// completionRecord is one row of the (user, resource) completion relation.
// The composite unique index keeps the relation a set.
type completionRecord struct {
	ID          uint      `gorm:"primaryKey"`
	Username    string    `gorm:"size:191;uniqueIndex:idx_user_resource"`
	ResourceID  string    `gorm:"size:32;uniqueIndex:idx_user_resource"`
	CompletedAt time.Time `gorm:""`
}

func (completionRecord) TableName() string { return "completed_resources" }

type topicRecord struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false"`
	Title     string `gorm:"size:255"`
	Content   string `gorm:"type:text"`
	Author    string `gorm:"size:191"`
	Category  string `gorm:"size:64;index"`
	CreatedAt time.Time
}

func (topicRecord) TableName() string { return "discussion_topics" }

// replyRecord keys replies by (topic, reply id); ReplyID restarts at 1 for
// every topic, matching the file backend's numbering.
type replyRecord struct {
	ID        uint   `gorm:"primaryKey"`
	TopicID   int    `gorm:"uniqueIndex:idx_topic_reply"`
	ReplyID   int    `gorm:"uniqueIndex:idx_topic_reply"`
	Content   string `gorm:"type:text"`
	Author    string `gorm:"size:191"`
	CreatedAt time.Time
}

func (replyRecord) TableName() string { return "discussion_replies" }

type streakRecord struct {
	Username       string   `gorm:"primaryKey;size:191"`
	CurrentStreak  int
	LongestStreak  int
	LastActiveDate string   `gorm:"size:16"`
	ActiveDays     []string `gorm:"serializer:json"`
}

func (streakRecord) TableName() string { return "streaks" }

func (s streakRecord) toModel() model.StreakRecord {
	days := s.ActiveDays
	if days == nil {
		days = []string{}
	}
	return model.StreakRecord{
		Username:       s.Username,
		CurrentStreak:  s.CurrentStreak,
		LongestStreak:  s.LongestStreak,
		LastActiveDate: s.LastActiveDate,
		ActiveDays:     days,
	}
}

type problemRecord struct {
	ID          string   `gorm:"primaryKey;size:32"`
	Title       string   `gorm:"size:255"`
	Difficulty  string   `gorm:"size:32;index"`
	Description string   `gorm:"type:text"`
	URL         string   `gorm:"size:512"`
	Platform    string   `gorm:"size:32;index"`
	Tags        []string `gorm:"serializer:json"`
}

func (problemRecord) TableName() string { return "practice_problems" }

func (p problemRecord) toModel() model.PracticeProblem {
	return model.PracticeProblem{
		ID:          p.ID,
		Title:       p.Title,
		Difficulty:  p.Difficulty,
		Description: p.Description,
		URL:         p.URL,
		Platform:    p.Platform,
		Tags:        p.Tags,
	}
}

type problemCompletionRecord struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:191;uniqueIndex:idx_user_problem"`
	ProblemID   string `gorm:"size:32;uniqueIndex:idx_user_problem"`
	CompletedAt time.Time
}

func (problemCompletionRecord) TableName() string { return "problem_completions" }
