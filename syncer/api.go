package syncer

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/mqy/storyview/view"
)

type IKafkaReader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Update is the kafka message value on the inbound feed: exactly one field
// is set.
type Update struct {
	// Story is a full view-model projection, new or changed.
	Story *view.StoryViewModel `json:"story,omitempty"`
	// Reply is an incoming (or changed) reply to some story.
	Reply *view.ReplyMessage `json:"reply,omitempty"`
	// RemovedID drops a story from the panel.
	RemovedID string `json:"removed_id,omitempty"`
	// MarkedReadID reflects a read event from another device.
	MarkedReadID string `json:"marked_read_id,omitempty"`
}
