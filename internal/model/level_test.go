package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_Valid(t *testing.T) {
	assert.True(t, Beginner.Valid())
	assert.True(t, Intermediate.Valid())
	assert.True(t, Advanced.Valid())
	assert.False(t, Level("expert").Valid())
	assert.False(t, Level("").Valid())
}

func TestLevel_Next(t *testing.T) {
	next, ok := Beginner.Next()
	assert.True(t, ok)
	assert.Equal(t, Intermediate, next)

	next, ok = Intermediate.Next()
	assert.True(t, ok)
	assert.Equal(t, Advanced, next)

	_, ok = Advanced.Next()
	assert.False(t, ok)
}

func TestNextTopicID_MaxPlusOne(t *testing.T) {
	assert.Equal(t, 1, NextTopicID(nil))

	// Ids survive deletions: the counter never reuses an id.
	topics := []DiscussionTopic{{ID: 1}, {ID: 5}}
	assert.Equal(t, 6, NextTopicID(topics))
}

func TestDifficultiesForLevel(t *testing.T) {
	assert.Equal(t, []string{"Easy", "Basic"}, DifficultiesForLevel(Beginner))
	assert.Equal(t, []string{"Medium", "Intermediate"}, DifficultiesForLevel(Intermediate))
	assert.Equal(t, []string{"Hard", "Advanced", "Expert"}, DifficultiesForLevel(Advanced))
}

func TestFilterResourcesByLevel(t *testing.T) {
	resources := []Resource{
		{ID: "b1", Level: Beginner},
		{ID: "i1", Level: Intermediate},
		{ID: "b2", Level: Beginner},
	}

	got := FilterResourcesByLevel(resources, Beginner)
	assert.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)
}
