package syncer

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	syncer_mock "github.com/mqy/storyview/syncer/mock"
	"github.com/mqy/storyview/view"
)

func updateMsg(t *testing.T, offset int64, u *Update) kafka.Message {
	value, err := json.Marshal(u)
	assert.NoError(t, err)
	return kafka.Message{
		Offset: offset,
		Value:  value,
		Time:   time.Now(),
	}
}

func TestConsumeLoopAppliesUpdates(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	kafkaMock := syncer_mock.NewMockIKafkaReader(mockCtrl)
	store := view.NewStore()
	s := NewSyncer(store, kafkaMock, 4096, 30)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := []*Update{
		{Story: &view.StoryViewModel{MessageID: "a", Timestamp: 10}},
		{Story: &view.StoryViewModel{MessageID: "b", Timestamp: 5}},
		{Reply: &view.ReplyMessage{MessageID: "r1", ParentStoryID: "a"}},
		{MarkedReadID: "a"},
		{RemovedID: "b"},
	}

	var mu sync.Mutex
	var i int
	kafkaMock.EXPECT().FetchMessage(gomock.Any()).DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
		mu.Lock()
		defer mu.Unlock()
		if i >= len(updates) {
			<-ctx.Done()
			return kafka.Message{}, context.Canceled
		}
		msg := updateMsg(t, int64(i), updates[i])
		i++
		return msg, nil
	}).AnyTimes()
	kafkaMock.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	done := make(chan struct{})
	go func() {
		s.consumeLoop(ctx)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for {
		st := store.State()
		if st.Story("a") != nil && st.Story("a").ReadStatus == view.Viewed && st.Story("b") == nil {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for updates to apply")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	<-done

	st := store.State()
	assert.Len(t, st.Stories, 1)
	assert.EqualValues(t, view.Viewed, st.Story("a").ReadStatus)
	// replies without an active thread are dropped by the reducer.
	assert.Nil(t, st.ReplyThread)
}

func TestDecodeKafkaMsgGuards(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := NewSyncer(view.NewStore(), syncer_mock.NewMockIKafkaReader(mockCtrl), 32, 30)

	// oversized value.
	big := kafka.Message{Value: []byte(`{"removed_id":"0123456789abcdef"}`), Time: time.Now()}
	assert.Nil(t, s.decodeKafkaMsg(&big))

	// bad json.
	bad := kafka.Message{Value: []byte(`{`), Time: time.Now()}
	assert.Nil(t, s.decodeKafkaMsg(&bad))

	// too old.
	old := kafka.Message{Value: []byte(`{"removed_id":"a"}`), Time: time.Now().Add(-31 * 24 * time.Hour)}
	assert.Nil(t, s.decodeKafkaMsg(&old))

	// fresh and small.
	ok := kafka.Message{Value: []byte(`{"removed_id":"a"}`), Time: time.Now()}
	u := s.decodeKafkaMsg(&ok)
	assert.NotNil(t, u)
	assert.EqualValues(t, "a", u.RemovedID)
}

func TestBackoff(t *testing.T) {
	var d time.Duration
	backoff(&d)
	assert.EqualValues(t, BackoffMinInterval, d)

	backoff(&d)
	assert.True(t, d > BackoffMinInterval)

	for i := 0; i < 20; i++ {
		backoff(&d)
	}
	assert.True(t, d <= BackoffMaxInterval)
}
