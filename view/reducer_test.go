package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newStory(id string, ts int64) *StoryViewModel {
	return &StoryViewModel{
		MessageID:      id,
		ConversationID: "conv-1",
		AuthorID:       "author-1",
		Timestamp:      ts,
		Attachment: &Attachment{
			State: DownloadNone,
			Path:  "a/b.jpg",
		},
		SendState: map[string]SendStatus{"conv-1": SendSent},
	}
}

func stateWith(stories ...*StoryViewModel) *State {
	s := &State{}
	for _, vm := range stories {
		s = Reduce(s, StoryUpserted{Story: vm})
	}
	return s
}

func storyIDs(s *State) []string {
	var out []string
	for _, vm := range s.Stories {
		out = append(out, vm.MessageID)
	}
	return out
}

func TestToggleView(t *testing.T) {
	s0 := &State{}
	s1 := Reduce(s0, ToggleView{})
	assert.True(t, s1.ViewingEnabled)
	s2 := Reduce(s1, ToggleView{})
	assert.False(t, s2.ViewingEnabled)
}

func TestUpsertInsertKeepsSorted(t *testing.T) {
	s := stateWith(newStory("c", 30), newStory("a", 10), newStory("b", 20))
	assert.EqualValues(t, []string{"a", "b", "c"}, storyIDs(s))

	// equal timestamps tie-break by message id.
	s = stateWith(newStory("y", 10), newStory("x", 10))
	assert.EqualValues(t, []string{"x", "y"}, storyIDs(s))
}

func TestUpsertRedundantIsIdentity(t *testing.T) {
	s0 := stateWith(newStory("a", 10))

	// same relevant field set, different irrelevant fields.
	in := newStory("a", 10)
	in.Variant = "something-else"
	in.Attachment.Path = "elsewhere.jpg"

	s1 := Reduce(s0, StoryUpserted{Story: in})
	assert.True(t, s0 == s1, "redundant upsert must return the identical state")
}

func TestUpsertChangeWorthyTransitions(t *testing.T) {
	base := stateWith(newStory("a", 10))

	for name, mutate := range map[string]func(*StoryViewModel){
		"enters downloading": func(vm *StoryViewModel) { vm.Attachment.State = Downloading },
		"becomes downloaded": func(vm *StoryViewModel) { vm.Attachment.State = Downloaded },
		"deleted":            func(vm *StoryViewModel) { vm.Deleted = true },
		"send state":         func(vm *StoryViewModel) { vm.SendState["conv-1"] = SendViewed },
		"read status":        func(vm *StoryViewModel) { vm.ReadStatus = Viewed },
		"reaction count":     func(vm *StoryViewModel) { vm.Reactions = []Reaction{{FromID: "u", Emoji: "x"}} },
	} {
		in := newStory("a", 10)
		mutate(in)
		next := Reduce(base, StoryUpserted{Story: in})
		assert.False(t, next == base, "transition %q must replace", name)
		assert.Equal(t, in, next.Story("a"), "transition %q", name)
	}
}

func TestUpsertIgnoredTransitions(t *testing.T) {
	// downloaded -> downloaded-again and deleted -> undeleted do not count.
	start := newStory("a", 10)
	start.Attachment.State = Downloaded
	start.Deleted = true
	s0 := stateWith(start)

	in := newStory("a", 10)
	in.Attachment.State = Downloaded
	in.Deleted = false
	// keep relevant fields equal otherwise
	assert.True(t, s0 == Reduce(s0, StoryUpserted{Story: in}))
}

func TestUpsertClonesInput(t *testing.T) {
	in := newStory("a", 10)
	s := stateWith(in)

	in.SendState["conv-1"] = SendFailed
	in.Attachment.State = Downloaded

	got := s.Story("a")
	assert.EqualValues(t, SendSent, got.SendState["conv-1"])
	assert.EqualValues(t, DownloadNone, got.Attachment.State)
}

func TestMessageRemoved(t *testing.T) {
	s0 := stateWith(newStory("a", 10), newStory("b", 20), newStory("c", 30))

	assert.True(t, s0 == Reduce(s0, MessageRemoved{MessageID: "zzz"}))

	s1 := Reduce(s0, MessageRemoved{MessageID: "b"})
	assert.EqualValues(t, []string{"a", "c"}, storyIDs(s1))
	// original untouched
	assert.EqualValues(t, []string{"a", "b", "c"}, storyIDs(s0))
}

func TestStoryMarkedRead(t *testing.T) {
	s0 := stateWith(newStory("a", 10))

	assert.True(t, s0 == Reduce(s0, StoryMarkedRead{MessageID: "zzz"}))

	s1 := Reduce(s0, StoryMarkedRead{MessageID: "a"})
	assert.EqualValues(t, Viewed, s1.Story("a").ReadStatus)
	assert.EqualValues(t, Unread, s0.Story("a").ReadStatus)

	// already viewed: identity.
	assert.True(t, s1 == Reduce(s1, StoryMarkedRead{MessageID: "a"}))
}

func TestReplyThreadLoaded(t *testing.T) {
	s0 := &State{}
	replies := []*ReplyMessage{
		{MessageID: "r1", ParentStoryID: "a"},
		{MessageID: "r2", ParentStoryID: "a"},
	}
	s1 := Reduce(s0, ReplyThreadLoaded{StoryID: "a", Replies: replies})
	assert.EqualValues(t, "a", s1.ReplyThread.StoryID)
	assert.Len(t, s1.ReplyThread.Replies, 2)

	// wholesale replace.
	s2 := Reduce(s1, ReplyThreadLoaded{StoryID: "b"})
	assert.EqualValues(t, "b", s2.ReplyThread.StoryID)
	assert.Empty(t, s2.ReplyThread.Replies)
}

func TestReplyObserved(t *testing.T) {
	s0 := &State{}

	// no active thread: identity.
	r := &ReplyMessage{MessageID: "r1", ParentStoryID: "a", Body: "hi"}
	assert.True(t, s0 == Reduce(s0, ReplyObserved{Reply: r}))

	s1 := Reduce(s0, ReplyThreadLoaded{StoryID: "a"})

	// mismatched parent: identity.
	other := &ReplyMessage{MessageID: "r9", ParentStoryID: "b"}
	assert.True(t, s1 == Reduce(s1, ReplyObserved{Reply: other}))

	// new id: append.
	s2 := Reduce(s1, ReplyObserved{Reply: r})
	assert.Len(t, s2.ReplyThread.Replies, 1)

	// known id: replace in place (e.g. delete-for-everyone tombstone).
	edited := &ReplyMessage{MessageID: "r1", ParentStoryID: "a", Deleted: true}
	s3 := Reduce(s2, ReplyObserved{Reply: edited})
	assert.Len(t, s3.ReplyThread.Replies, 1)
	assert.True(t, s3.ReplyThread.Replies[0].Deleted)
}

func TestReplyObservedKeepsInsertionOrder(t *testing.T) {
	s := Reduce(&State{}, ReplyThreadLoaded{StoryID: "a"})
	// deliberately out of timestamp order
	for _, r := range []*ReplyMessage{
		{MessageID: "r2", ParentStoryID: "a", Timestamp: 20},
		{MessageID: "r1", ParentStoryID: "a", Timestamp: 10},
	} {
		s = Reduce(s, ReplyObserved{Reply: r})
	}
	assert.EqualValues(t, "r2", s.ReplyThread.Replies[0].MessageID)
	assert.EqualValues(t, "r1", s.ReplyThread.Replies[1].MessageID)
}

func TestReplySent(t *testing.T) {
	s0 := &State{}
	r := &ReplyMessage{MessageID: "r1", ParentStoryID: "a"}

	// no active thread: identity.
	assert.True(t, s0 == Reduce(s0, ReplySent{Reply: r}))

	s1 := Reduce(s0, ReplyThreadLoaded{StoryID: "a"})
	s2 := Reduce(s1, ReplySent{Reply: r})
	assert.Len(t, s2.ReplyThread.Replies, 1)
}

func TestAttachmentURLResolvedRoundTrip(t *testing.T) {
	vm := newStory("a", 10)
	vm.Attachment.State = Downloaded
	s0 := stateWith(vm)

	assert.True(t, s0 == Reduce(s0, AttachmentURLResolved{MessageID: "zzz", URL: "/x"}))

	bare := newStory("b", 20)
	bare.Attachment = nil
	s1 := Reduce(s0, StoryUpserted{Story: bare})
	assert.True(t, s1 == Reduce(s1, AttachmentURLResolved{MessageID: "b", URL: "/x"}))

	s2 := Reduce(s1, AttachmentURLResolved{MessageID: "a", URL: "/data/a/b.jpg"})
	got := s2.Story("a").Attachment
	assert.EqualValues(t, "/data/a/b.jpg", got.URL)
	// all other attachment fields unchanged.
	assert.EqualValues(t, "a/b.jpg", got.Path)
	assert.EqualValues(t, Downloaded, got.State)
	// original snapshot untouched.
	assert.EqualValues(t, "", s1.Story("a").Attachment.URL)
}

func TestStoryDeletedEverywhere(t *testing.T) {
	s0 := stateWith(newStory("a", 10))

	assert.True(t, s0 == Reduce(s0, StoryDeletedEverywhere{MessageID: "zzz"}))

	s1 := Reduce(s0, StoryDeletedEverywhere{MessageID: "a"})
	assert.True(t, s1.Story("a").Deleted)
	assert.False(t, s0.Story("a").Deleted)

	// already deleted: identity.
	assert.True(t, s1 == Reduce(s1, StoryDeletedEverywhere{MessageID: "a"}))
}
