package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchSignalsOnlyOnChange(t *testing.T) {
	s := NewStore()
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	drain := func() bool {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}

	assert.True(t, s.Dispatch(StoryUpserted{Story: newStory("a", 10)}))
	assert.True(t, drain())

	// removing an unknown id is an identity no-op: no signal.
	assert.False(t, s.Dispatch(MessageRemoved{MessageID: "zzz"}))
	assert.False(t, drain())

	assert.True(t, s.Dispatch(MessageRemoved{MessageID: "a"}))
	assert.True(t, drain())
}

func TestNotifyWakesSubscribers(t *testing.T) {
	s := NewStore()
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.Notify()
	select {
	case <-ch:
	default:
		t.Fatal("expected a signal")
	}
}

func TestSignalsCoalesce(t *testing.T) {
	s := NewStore()
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.Dispatch(StoryUpserted{Story: newStory("a", 10)})
	s.Dispatch(StoryUpserted{Story: newStory("b", 20)})
	s.Dispatch(StoryUpserted{Story: newStory("c", 30)})

	<-ch
	select {
	case <-ch:
		t.Fatal("burst must coalesce into one pending signal")
	default:
	}

	assert.Len(t, s.State().Stories, 3)
}

func TestUnsubscribe(t *testing.T) {
	s := NewStore()
	ch, unsubscribe := s.Subscribe()
	unsubscribe()

	s.Dispatch(StoryUpserted{Story: newStory("a", 10)})
	select {
	case <-ch:
		t.Fatal("unsubscribed channel must not be signalled")
	default:
	}
}

func TestStateSnapshotIsStable(t *testing.T) {
	s := NewStore()
	s.Dispatch(StoryUpserted{Story: newStory("a", 10)})

	before := s.State()
	s.Dispatch(StoryUpserted{Story: newStory("b", 20)})

	assert.Len(t, before.Stories, 1)
	assert.Len(t, s.State().Stories, 2)
}
