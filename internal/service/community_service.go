package service

import (
	"strings"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
)

// AnonymousAuthor labels posts whose author field was left blank.
const AnonymousAuthor = "Anonymous"

// CommunityService fronts the discussion forum.
type CommunityService struct {
	Discussions repository.DiscussionStore
}

func NewCommunityService(discussions repository.DiscussionStore) *CommunityService {
	return &CommunityService{Discussions: discussions}
}

// Topics lists topics newest-first; category "" or "all" means no filter.
func (s *CommunityService) Topics(category string) []model.DiscussionTopic {
	return s.Discussions.Topics(category)
}

// CreateTopic validates and stores a topic, returning its assigned id.
// Title and content must be non-blank; a blank author becomes Anonymous.
func (s *CommunityService) CreateTopic(title, content, author, category string) (int, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return 0, util.ErrBlankTitle
	}
	if content == "" {
		return 0, util.ErrBlankContent
	}
	if strings.TrimSpace(author) == "" {
		author = AnonymousAuthor
	}
	if strings.TrimSpace(category) == "" {
		category = "general"
	}
	return s.Discussions.AddTopic(title, content, author, category)
}

// Categories lists the distinct topic categories in use, sorted.
func (s *CommunityService) Categories() []string {
	seen := map[string]struct{}{}
	for _, t := range s.Discussions.Topics("") {
		seen[t.Category] = struct{}{}
	}
	return sortedKeys(seen)
}

// AddReply validates and appends a reply. ErrTopicNotFound when the topic
// id does not exist.
func (s *CommunityService) AddReply(topicID int, content, author string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return util.ErrBlankContent
	}
	if strings.TrimSpace(author) == "" {
		author = AnonymousAuthor
	}
	ok, err := s.Discussions.AddReply(topicID, content, author)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrTopicNotFound
	}
	return nil
}
