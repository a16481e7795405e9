package msgstore

import (
	"context"

	"github.com/mqy/storyview/view"
)

// ThreadQuery scopes a reply fetch to one story.
type ThreadQuery struct {
	// Limit caps the number of replies returned.
	Limit int32
	// StoryID is the parent story message id.
	StoryID string
	// IsGroup selects the group-shaped query (membership join).
	IsGroup bool
}

// StoryRead is one persisted read event.
type StoryRead struct {
	AuthorID       string
	ConversationID string
	StoryID        string
	ReadAt         int64 // unix milliseconds
}

type IMessageStore interface {
	// FetchOlderThreadMessages gets replies to a story, oldest first.
	FetchOlderThreadMessages(ctx context.Context, conversationID string, q *ThreadQuery) ([]*view.ReplyMessage, error)

	// RecordStoryRead persists a read event. Recording the same event twice
	// is not an error.
	RecordStoryRead(ctx context.Context, r *StoryRead) error

	// ClearReplyContext drops the cached reply context of a message so it
	// is re-hydrated on next load.
	ClearReplyContext(ctx context.Context, messageID string) error

	// DeleteOutdatedReads deletes read events older than `ttlDays`.
	DeleteOutdatedReads(ctx context.Context, ttlDays int32) (int32, error)

	IsDupKeyError(err error) bool
}
