package jsonfile

import (
	"os"
	"sort"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
)

// discussionsDoc is the canonical on-disk shape of discussions.json.
type discussionsDoc struct {
	Topics []model.DiscussionTopic `json:"topics"`
}

func (s *Store) readDiscussions() discussionsDoc {
	var doc discussionsDoc
	if err := s.readJSON(discussionsFile, &doc); err != nil && !os.IsNotExist(err) {
		return discussionsDoc{}
	}
	return doc
}

// Topics lists topics newest-first, optionally filtered by exact category.
func (s *Store) Topics(category string) []model.DiscussionTopic {
	doc := s.readDiscussions()
	topics := make([]model.DiscussionTopic, 0, len(doc.Topics))
	for _, t := range doc.Topics {
		if category != "" && category != "all" && t.Category != category {
			continue
		}
		if t.Replies == nil {
			t.Replies = []model.Reply{}
		}
		topics = append(topics, t)
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].CreatedAt.After(topics[j].CreatedAt)
	})
	return topics
}

// AddTopic appends a topic with id = max(existing)+1.
func (s *Store) AddTopic(title, content, author, category string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readDiscussions()
	id := model.NextTopicID(doc.Topics)
	doc.Topics = append(doc.Topics, model.DiscussionTopic{
		ID:        id,
		Title:     title,
		Content:   content,
		Author:    author,
		Category:  category,
		CreatedAt: time.Now(),
		Replies:   []model.Reply{},
	})
	if err := s.writeJSON(discussionsFile, doc); err != nil {
		return 0, err
	}
	return id, nil
}

// AddReply appends a reply to the topic. Returns false when the topic id
// does not exist; no topic is modified in that case.
func (s *Store) AddReply(topicID int, content, author string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readDiscussions()
	for i := range doc.Topics {
		if doc.Topics[i].ID != topicID {
			continue
		}
		doc.Topics[i].Replies = append(doc.Topics[i].Replies, model.Reply{
			ID:        model.NextReplyID(doc.Topics[i].Replies),
			Content:   content,
			Author:    author,
			CreatedAt: time.Now(),
		})
		if err := s.writeJSON(discussionsFile, doc); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
