package jobqueue

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pborman/uuid"
	kafka "github.com/segmentio/kafka-go"

	"github.com/mqy/storyview/view"
)

const kafkaWriteTimeout = 10 * time.Second

// kafka message value: exactly one job field is set.
type jobValue struct {
	ViewSync      *ViewSyncJob      `json:"view_sync,omitempty"`
	ViewedReceipt *ViewedReceiptJob `json:"viewed_receipt,omitempty"`
	Reaction      *ReactionJob      `json:"reaction,omitempty"`
	Reply         *ReplyJob         `json:"reply,omitempty"`
	Retraction    *RetractionJob    `json:"retraction,omitempty"`
}

// Queue implements `IJobQueue` over one kafka topic. Consumers own retry;
// an error here means the job was never handed off.
type Queue struct {
	writer IKafkaWriter
}

func NewQueue(brokers []string, topic string) *Queue {
	return &Queue{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  brokers,
			Topic:    topic,
			Balancer: &kafka.Hash{},
			Dialer: &kafka.Dialer{
				Timeout:   kafkaWriteTimeout,
				DualStack: true,
			},
		}),
	}
}

// NewQueueWithWriter is for tests.
func NewQueueWithWriter(w IKafkaWriter) *Queue {
	return &Queue{writer: w}
}

func (q *Queue) enqueue(ctx context.Context, key string, value *jobValue) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	glog.V(5).Infof("jobqueue: enqueue key: %s, value: %s", key, string(b))
	return q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
	})
}

func (q *Queue) EnqueueViewSync(ctx context.Context, job *ViewSyncJob) error {
	return q.enqueue(ctx, job.StoryID, &jobValue{ViewSync: job})
}

func (q *Queue) EnqueueViewedReceipt(ctx context.Context, job *ViewedReceiptJob) error {
	return q.enqueue(ctx, job.StoryID, &jobValue{ViewedReceipt: job})
}

func (q *Queue) EnqueueReaction(ctx context.Context, job *ReactionJob) error {
	return q.enqueue(ctx, job.MessageID, &jobValue{Reaction: job})
}

func (q *Queue) EnqueueReply(ctx context.Context, job *ReplyJob) (*view.ReplyMessage, error) {
	msgID := strings.ReplaceAll(uuid.New(), "-", "")

	if err := q.enqueue(ctx, msgID, &jobValue{Reply: job}); err != nil {
		return nil, err
	}

	return &view.ReplyMessage{
		MessageID:      msgID,
		ParentStoryID:  job.StoryID,
		ConversationID: job.ConversationID,
		AuthorID:       job.AuthorID,
		Body:           job.Body,
		Mentions:       job.Mentions,
		Timestamp:      job.Timestamp,
	}, nil
}

func (q *Queue) EnqueueRetraction(ctx context.Context, job *RetractionJob) error {
	return q.enqueue(ctx, job.StoryID, &jobValue{Retraction: job})
}

func (q *Queue) Close() error {
	return q.writer.Close()
}
