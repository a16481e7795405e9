// Package syncer feeds the view-model store from the upstream message
// delivery topic. Delivery is at-least-once; the reducer's identity no-op
// discipline absorbs redundant redeliveries.
package syncer

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang/glog"
	kafka "github.com/segmentio/kafka-go"

	"github.com/mqy/storyview/view"
)

const (
	BackoffMinInterval = 1 * time.Second
	BackoffMaxInterval = 60 * time.Second
	BackoffMultiplier  = 1.5
)

type Syncer struct {
	store         *view.Store
	kafkaReader   IKafkaReader
	valueMaxBytes int32
	maxAgeDays    int32
	wg            sync.WaitGroup
}

func NewSyncer(store *view.Store, kafkaReader IKafkaReader, valueMaxBytes, maxAgeDays int32) *Syncer {
	return &Syncer{
		store:         store,
		kafkaReader:   kafkaReader,
		valueMaxBytes: valueMaxBytes,
		maxAgeDays:    maxAgeDays,
	}
}

// Run consumes updates until ctx is cancelled. It may block at reading a
// kafka message.
func (s *Syncer) Run(ctx context.Context, stopDoneNotifyC chan<- struct{}) {
	glog.Info("syncer: enter")

	go s.consumeLoop(ctx)

	<-ctx.Done()

	glog.Info("syncer: stopping")
	_ = s.kafkaReader.Close()

	s.wg.Wait()
	glog.Info("syncer: stopped")
	stopDoneNotifyC <- struct{}{}
}

func (s *Syncer) consumeLoop(ctx context.Context) {
	glog.Info("syncer: consume loop enter")
	s.wg.Add(1)

	defer func() {
		glog.Info("syncer: consume loop exited")
		s.wg.Done()
	}()

	var sleep time.Duration

	for {
		glog.V(5).Info("syncer: fetching message ...")
		msg, err := s.kafkaReader.FetchMessage(ctx)

		if err != nil {
			glog.Errorf("syncer: fetch from kafka err: %v", err)
			if err == context.Canceled {
				return
			}
			backoff(&sleep)
			select {
			case <-time.After(sleep):
				continue
			case <-ctx.Done():
				return
			}
		}

		sleep = 0
		// skip: bad format or too old.
		if update := s.decodeKafkaMsg(&msg); update != nil {
			s.apply(update)
		}

		for {
			if err := s.kafkaReader.CommitMessages(ctx, msg); err == nil {
				sleep = 0
				break
			} else {
				// An uncommitted message is re-fetched; apply() is
				// idempotent so redelivery is harmless.
				glog.Errorf("syncer: commit to kafka err: %v", err)
				if err == context.Canceled {
					return
				}
				backoff(&sleep)
				select {
				case <-time.After(sleep):
					continue
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (s *Syncer) apply(u *Update) {
	switch {
	case u.Story != nil:
		s.store.Dispatch(view.StoryUpserted{Story: u.Story})
	case u.Reply != nil:
		s.store.Dispatch(view.ReplyObserved{Reply: u.Reply})
	case u.RemovedID != "":
		s.store.Dispatch(view.MessageRemoved{MessageID: u.RemovedID})
	case u.MarkedReadID != "":
		s.store.Dispatch(view.StoryMarkedRead{MessageID: u.MarkedReadID})
	default:
		glog.Errorf("syncer: empty update")
	}
}

func (s *Syncer) shouldDiscard(msg *kafka.Message) bool {
	return s.maxAgeDays > 0 && time.Since(msg.Time) > time.Duration(s.maxAgeDays)*24*time.Hour
}

func (s *Syncer) decodeKafkaMsg(msg *kafka.Message) *Update {
	if len(msg.Value) > int(s.valueMaxBytes) {
		glog.Errorf("syncer: kafka value out of limit, offset: %d, size: %d", msg.Offset, len(msg.Value))
		return nil
	}

	var u Update
	if err := json.Unmarshal(msg.Value, &u); err != nil {
		glog.Errorf("syncer: failed to unmarshal kafka msg value: `%s`, error: %v", msg.Value, err)
		return nil
	}

	if s.shouldDiscard(msg) {
		glog.Errorf("syncer: ignore incoming message because too old, offset: %d, time: %s", msg.Offset, msg.Time)
		return nil
	}

	return &u
}

func backoff(d *time.Duration) {
	if *d == 0 {
		*d = BackoffMinInterval
	} else {
		*d = time.Duration(float64(*d) * BackoffMultiplier)
		if *d < BackoffMaxInterval {
			*d = d.Truncate(time.Millisecond)
		} else {
			*d = BackoffMaxInterval
		}
	}
}
