package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func openTestSession(t *testing.T) *Session {
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestConversationRoundTrip(t *testing.T) {
	s := openTestSession(t)

	got, err := s.GetConversation("nope")
	assert.NoError(t, err)
	assert.Nil(t, got)

	in := &Conversation{
		ID:         "conv-1",
		Title:      "Friends",
		IsGroup:    true,
		Recipients: []string{"a", "b"},
	}
	assert.NoError(t, s.PutConversation(in))

	got, err = s.GetConversation("conv-1")
	assert.NoError(t, err)
	assert.EqualValues(t, in, got)
}

func TestPrimaryDeviceFlag(t *testing.T) {
	s := openTestSession(t)

	primary, err := s.IsPrimaryDevice()
	assert.NoError(t, err)
	assert.False(t, primary)

	assert.NoError(t, s.SetPrimaryDevice(true))
	primary, err = s.IsPrimaryDevice()
	assert.NoError(t, err)
	assert.True(t, primary)

	assert.NoError(t, s.SetPrimaryDevice(false))
	primary, err = s.IsPrimaryDevice()
	assert.NoError(t, err)
	assert.False(t, primary)
}

func TestViewedMarks(t *testing.T) {
	s := openTestSession(t)

	readAt, err := s.ViewedAt("story-1")
	assert.NoError(t, err)
	assert.Zero(t, readAt)

	assert.NoError(t, s.MarkViewed("story-1", 1234567890))
	readAt, err = s.ViewedAt("story-1")
	assert.NoError(t, err)
	assert.EqualValues(t, 1234567890, readAt)

	// marks are overwritten, last writer wins.
	assert.NoError(t, s.MarkViewed("story-1", 2222222222))
	readAt, err = s.ViewedAt("story-1")
	assert.NoError(t, err)
	assert.EqualValues(t, 2222222222, readAt)
}
