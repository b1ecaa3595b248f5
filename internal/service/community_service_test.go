package service

import (
	"testing"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommunityService(t *testing.T) *CommunityService {
	t.Helper()
	return NewCommunityService(newTestStore(t))
}

func TestCreateTopic_AssignsSequentialIDs(t *testing.T) {
	svc := newCommunityService(t)

	for want := 1; want <= 3; want++ {
		id, err := svc.CreateTopic("Title", "Content", "alice", "general")
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestCreateTopic_BlankTitleRejected(t *testing.T) {
	svc := newCommunityService(t)

	_, err := svc.CreateTopic("   ", "Content", "alice", "general")
	assert.ErrorIs(t, err, util.ErrBlankTitle)
}

func TestCreateTopic_BlankContentRejected(t *testing.T) {
	svc := newCommunityService(t)

	_, err := svc.CreateTopic("Title", "", "alice", "general")
	assert.ErrorIs(t, err, util.ErrBlankContent)
}

func TestCreateTopic_BlankAuthorBecomesAnonymous(t *testing.T) {
	svc := newCommunityService(t)

	_, err := svc.CreateTopic("Title", "Content", "  ", "general")
	require.NoError(t, err)

	topics := svc.Topics("")
	require.Len(t, topics, 1)
	assert.Equal(t, AnonymousAuthor, topics[0].Author)
}

func TestAddReply_FirstReplyGetsIDOne(t *testing.T) {
	svc := newCommunityService(t)

	id, err := svc.CreateTopic("Title", "Content", "alice", "general")
	require.NoError(t, err)

	require.NoError(t, svc.AddReply(id, "First!", "bob"))
	require.NoError(t, svc.AddReply(id, "Second.", "carol"))

	topics := svc.Topics("")
	require.Len(t, topics, 1)
	require.Len(t, topics[0].Replies, 2)
	assert.Equal(t, 1, topics[0].Replies[0].ID)
	assert.Equal(t, 2, topics[0].Replies[1].ID)
}

func TestAddReply_UnknownTopic(t *testing.T) {
	svc := newCommunityService(t)

	err := svc.AddReply(42, "Hello?", "bob")
	assert.ErrorIs(t, err, util.ErrTopicNotFound)
}

func TestCategories_DistinctSorted(t *testing.T) {
	svc := newCommunityService(t)

	for _, category := range []string{"help", "showcase", "help"} {
		_, err := svc.CreateTopic("T", "c", "alice", category)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"help", "showcase"}, svc.Categories())
}

func TestTopics_CategoryFilter(t *testing.T) {
	svc := newCommunityService(t)

	_, err := svc.CreateTopic("Help with loops", "...", "alice", "help")
	require.NoError(t, err)
	_, err = svc.CreateTopic("Show my project", "...", "bob", "showcase")
	require.NoError(t, err)

	assert.Len(t, svc.Topics("help"), 1)
	assert.Len(t, svc.Topics("all"), 2)
	assert.Len(t, svc.Topics(""), 2)
	assert.Empty(t, svc.Topics("random"))
}
