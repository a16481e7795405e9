package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/mqy/storyview/syncer"
	"github.com/mqy/storyview/view"
)

// The demo producer mocks the upstream delivery pipeline that pushes story
// updates to kafka.

const (
	kafkaTopic = "storyview-updates"
)

var (
	kafkaEndpoints = flag.String("kafka-endpoints", "127.0.0.1:9092", "kafka endpoints, ',' delimitted.")
	tickerDuration = flag.Duration("ticker-duration", 30*time.Second, "ticker duration")
)

func main() {
	flag.Parse()

	if len(*kafkaEndpoints) == 0 {
		panic("--kafka-endpoints is required.")
	}

	endpoints := strings.Split(*kafkaEndpoints, ",")

	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  endpoints,
		Topic:    kafkaTopic,
		Balancer: &kafka.Hash{},
		Dialer: &kafka.Dialer{
			Timeout:   10 * time.Second,
			DualStack: true,
		},
	})

	ticker := time.NewTicker(*tickerDuration)
	defer func() {
		ticker.Stop()
	}()

	// kafka-topics.sh --bootstrap-server localhost:9092 --topic storyview-updates --create
	// kafka-topics.sh --bootstrap-server localhost:9092 --topic storyview-updates --delete

	var i int
	for range ticker.C {
		update := &syncer.Update{
			Story: &view.StoryViewModel{
				MessageID:      fmt.Sprintf("demo-story-%d", i),
				ConversationID: "demo-conversation",
				AuthorID:       "demo-author",
				Timestamp:      time.Now().UnixMilli(),
				Variant:        "demo",
				Attachment: &view.Attachment{
					State:       view.Downloaded,
					Path:        fmt.Sprintf("demo/%d.jpg", i),
					ContentType: "image/jpeg",
				},
				SendState: map[string]view.SendStatus{
					"demo-conversation": view.SendSent,
				},
			},
		}

		value, err := json.Marshal(update)
		if err != nil {
			panic(err)
		}

		msg := kafka.Message{
			Key:   []byte(fmt.Sprintf("%d", i)),
			Value: value,
		}
		if err := w.WriteMessages(context.Background(), msg); err != nil {
			panic(err)
		}

		i++
	}
}
