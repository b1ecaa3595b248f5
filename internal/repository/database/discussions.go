package database

import (
	"errors"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Topics lists topics newest-first with their replies attached, optionally
// filtered by exact category.
func (s *Store) Topics(category string) []model.DiscussionTopic {
	q := s.DB.Order("created_at DESC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var records []topicRecord
	if err := q.Find(&records).Error; err != nil {
		logger.Log.Warn("failed to load topics", zap.Error(err))
		return []model.DiscussionTopic{}
	}

	topics := make([]model.DiscussionTopic, 0, len(records))
	for _, t := range records {
		var replies []replyRecord
		if err := s.DB.Where("topic_id = ?", t.ID).Order("reply_id").Find(&replies).Error; err != nil {
			logger.Log.Warn("failed to load replies", zap.Int("topic_id", t.ID), zap.Error(err))
			replies = nil
		}
		out := make([]model.Reply, 0, len(replies))
		for _, r := range replies {
			out = append(out, model.Reply{
				ID:        r.ReplyID,
				Content:   r.Content,
				Author:    r.Author,
				CreatedAt: r.CreatedAt,
			})
		}
		topics = append(topics, model.DiscussionTopic{
			ID:        t.ID,
			Title:     t.Title,
			Content:   t.Content,
			Author:    t.Author,
			Category:  t.Category,
			CreatedAt: t.CreatedAt,
			Replies:   out,
		})
	}
	return topics
}

// AddTopic inserts a topic with id = max(existing)+1 and returns the id.
func (s *Store) AddTopic(title, content, author, category string) (int, error) {
	var id int
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var maxID int
		if err := tx.Model(&topicRecord{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		id = maxID + 1
		return tx.Create(&topicRecord{
			ID:        id,
			Title:     title,
			Content:   content,
			Author:    author,
			Category:  category,
			CreatedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AddReply appends a reply with a per-topic id starting at 1. It returns
// false when the topic does not exist.
func (s *Store) AddReply(topicID int, content, author string) (bool, error) {
	found := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var topic topicRecord
		if err := tx.First(&topic, "id = ?", topicID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		var maxID int
		if err := tx.Model(&replyRecord{}).Where("topic_id = ?", topicID).
			Select("COALESCE(MAX(reply_id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		return tx.Create(&replyRecord{
			TopicID:   topicID,
			ReplyID:   maxID + 1,
			Content:   content,
			Author:    author,
			CreatedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
