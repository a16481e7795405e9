package jobqueue

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/mqy/storyview/view"
)

type IKafkaWriter interface {
	WriteMessages(context.Context, ...kafka.Message) error
	Close() error
}

// ViewSyncJob tells the primary device that this (linked) device viewed a
// story.
type ViewSyncJob struct {
	StoryID        string `json:"story_id"`
	ConversationID string `json:"conversation_id"`
	AuthorID       string `json:"author_id"`
	ReadAt         int64  `json:"read_at"`
}

// ViewedReceiptJob notifies the story author that it was viewed.
type ViewedReceiptJob struct {
	StoryID        string `json:"story_id"`
	ConversationID string `json:"conversation_id"`
	AuthorID       string `json:"author_id"`
	ReadAt         int64  `json:"read_at"`
}

type ReactionJob struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
	Timestamp int64  `json:"timestamp"`
}

type ReplyJob struct {
	ConversationID string   `json:"conversation_id"`
	AuthorID       string   `json:"author_id"`
	Body           string   `json:"body,omitempty"`
	Mentions       []string `json:"mentions,omitempty"`
	Timestamp      int64    `json:"timestamp"`
	StoryID        string   `json:"story_id"`
	StoryTimestamp int64    `json:"story_timestamp"`
}

// RetractionJob asks a recipient to drop a previously sent story.
type RetractionJob struct {
	ConversationID string `json:"conversation_id"`
	StoryID        string `json:"story_id"`
	Timestamp      int64  `json:"timestamp"`
	TTLSeconds     int64  `json:"ttl_seconds"`
}

type IJobQueue interface {
	// EnqueueViewSync and EnqueueViewedReceipt are fire-and-forget: delivery
	// and retry belong to the queue consumer.
	EnqueueViewSync(ctx context.Context, job *ViewSyncJob) error
	EnqueueViewedReceipt(ctx context.Context, job *ViewedReceiptJob) error

	EnqueueReaction(ctx context.Context, job *ReactionJob) error

	// EnqueueReply enqueues an outgoing reply and returns its message
	// attributes (nil when the enqueue yielded none).
	EnqueueReply(ctx context.Context, job *ReplyJob) (*view.ReplyMessage, error)

	EnqueueRetraction(ctx context.Context, job *RetractionJob) error

	Close() error
}
