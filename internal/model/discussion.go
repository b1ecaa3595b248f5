package model

import "time"

// DiscussionTopic is a forum topic with its ordered replies. Topics are
// append-only; ids are assigned as max(existing)+1 and never reused.
// swagger:model DiscussionTopic
type DiscussionTopic struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Reply   `json:"replies"`
}

// Reply is an append-only child of a topic. Reply ids are scoped per topic
// and start at 1.
// swagger:model Reply
type Reply struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// NextTopicID returns max(existing ids)+1, starting at 1 for an empty set.
// Length-based assignment is unsafe once ids can outlive their position,
// so the monotonic counter is the canonical strategy.
func NextTopicID(topics []DiscussionTopic) int {
	max := 0
	for _, t := range topics {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// NextReplyID returns the next per-topic reply id.
func NextReplyID(replies []Reply) int {
	max := 0
	for _, r := range replies {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}
