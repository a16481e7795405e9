package jobqueue

import (
	"context"
	"encoding/json"
	"testing"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

// The mock writer lives in jobqueue/mock but importing it here would be a
// cycle; a hand fake is enough for the producer side.
type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func decodeValue(t *testing.T, msg kafka.Message) *jobValue {
	var v jobValue
	assert.NoError(t, json.Unmarshal(msg.Value, &v))
	return &v
}

func TestEnqueueRetraction(t *testing.T) {
	w := &fakeWriter{}
	q := NewQueueWithWriter(w)

	err := q.EnqueueRetraction(context.Background(), &RetractionJob{
		ConversationID: "conv-1",
		StoryID:        "story-1",
		Timestamp:      100,
		TTLSeconds:     86400,
	})
	assert.NoError(t, err)
	assert.Len(t, w.messages, 1)

	v := decodeValue(t, w.messages[0])
	assert.NotNil(t, v.Retraction)
	assert.EqualValues(t, "conv-1", v.Retraction.ConversationID)
	assert.EqualValues(t, int64(86400), v.Retraction.TTLSeconds)
	assert.EqualValues(t, "story-1", string(w.messages[0].Key))
}

func TestEnqueueReplyYieldsAttributes(t *testing.T) {
	w := &fakeWriter{}
	q := NewQueueWithWriter(w)

	reply, err := q.EnqueueReply(context.Background(), &ReplyJob{
		ConversationID: "conv-1",
		Body:           "hi",
		Mentions:       []string{"author-1"},
		Timestamp:      123,
		StoryID:        "story-1",
		StoryTimestamp: 100,
	})
	assert.NoError(t, err)
	assert.NotNil(t, reply)
	assert.NotEmpty(t, reply.MessageID)
	assert.NotContains(t, reply.MessageID, "-")
	assert.EqualValues(t, "story-1", reply.ParentStoryID)
	assert.EqualValues(t, "conv-1", reply.ConversationID)
	assert.EqualValues(t, "hi", reply.Body)

	v := decodeValue(t, w.messages[0])
	assert.NotNil(t, v.Reply)
	assert.EqualValues(t, int64(100), v.Reply.StoryTimestamp)
}

func TestEnqueueReplyWriteError(t *testing.T) {
	w := &fakeWriter{err: assert.AnError}
	q := NewQueueWithWriter(w)

	reply, err := q.EnqueueReply(context.Background(), &ReplyJob{StoryID: "story-1"})
	assert.Error(t, err)
	assert.Nil(t, reply)
}

func TestEnqueueExactlyOneJobField(t *testing.T) {
	w := &fakeWriter{}
	q := NewQueueWithWriter(w)
	ctx := context.Background()

	assert.NoError(t, q.EnqueueViewSync(ctx, &ViewSyncJob{StoryID: "s"}))
	assert.NoError(t, q.EnqueueViewedReceipt(ctx, &ViewedReceiptJob{StoryID: "s"}))
	assert.NoError(t, q.EnqueueReaction(ctx, &ReactionJob{MessageID: "s", Emoji: "x"}))

	for _, msg := range w.messages {
		v := decodeValue(t, msg)
		var set int
		if v.ViewSync != nil {
			set++
		}
		if v.ViewedReceipt != nil {
			set++
		}
		if v.Reaction != nil {
			set++
		}
		if v.Reply != nil {
			set++
		}
		if v.Retraction != nil {
			set++
		}
		assert.EqualValues(t, 1, set)
	}
}
