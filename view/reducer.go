package view

import (
	"reflect"
	"sort"
)

// Reduce folds one delta into the state. It is pure and total: every delta
// either yields a fresh State value or returns `s` itself, so callers can
// skip downstream work on pointer equality.
func Reduce(s *State, d Delta) *State {
	switch v := d.(type) {
	case ToggleView:
		next := *s
		next.ViewingEnabled = !s.ViewingEnabled
		return &next

	case MessageRemoved:
		i := s.findStory(v.MessageID)
		if i < 0 {
			return s
		}
		next := *s
		next.Stories = make([]*StoryViewModel, 0, len(s.Stories)-1)
		next.Stories = append(next.Stories, s.Stories[:i]...)
		next.Stories = append(next.Stories, s.Stories[i+1:]...)
		return &next

	case StoryUpserted:
		if v.Story == nil {
			return s
		}
		incoming := v.Story.Clone()
		i := s.findStory(incoming.MessageID)
		if i < 0 {
			next := *s
			next.Stories = append(copyStories(s.Stories), incoming)
			sortStories(next.Stories)
			return &next
		}
		if !shouldReplace(s.Stories[i], incoming) {
			return s
		}
		next := *s
		next.Stories = copyStories(s.Stories)
		next.Stories[i] = incoming
		return &next

	case StoryMarkedRead:
		i := s.findStory(v.MessageID)
		if i < 0 || s.Stories[i].ReadStatus == Viewed {
			return s
		}
		next := *s
		next.Stories = copyStories(s.Stories)
		vm := next.Stories[i].Clone()
		vm.ReadStatus = Viewed
		next.Stories[i] = vm
		return &next

	case ReplyThreadLoaded:
		next := *s
		next.ReplyThread = &ReplyThread{StoryID: v.StoryID, Replies: v.Replies}
		return &next

	case ReplyObserved:
		t := s.ReplyThread
		if v.Reply == nil || t == nil || t.StoryID != v.Reply.ParentStoryID {
			return s
		}
		next := *s
		replies := make([]*ReplyMessage, len(t.Replies))
		copy(replies, t.Replies)
		replaced := false
		for i, r := range replies {
			if r.MessageID == v.Reply.MessageID {
				replies[i] = v.Reply
				replaced = true
				break
			}
		}
		if !replaced {
			replies = append(replies, v.Reply)
		}
		next.ReplyThread = &ReplyThread{StoryID: t.StoryID, Replies: replies}
		return &next

	case ReplySent:
		t := s.ReplyThread
		if v.Reply == nil || t == nil {
			return s
		}
		next := *s
		replies := make([]*ReplyMessage, len(t.Replies), len(t.Replies)+1)
		copy(replies, t.Replies)
		next.ReplyThread = &ReplyThread{StoryID: t.StoryID, Replies: append(replies, v.Reply)}
		return &next

	case AttachmentURLResolved:
		i := s.findStory(v.MessageID)
		if i < 0 || s.Stories[i].Attachment == nil {
			return s
		}
		next := *s
		next.Stories = copyStories(s.Stories)
		vm := next.Stories[i].Clone()
		vm.Attachment.URL = v.URL
		next.Stories[i] = vm
		return &next

	case StoryDeletedEverywhere:
		i := s.findStory(v.MessageID)
		if i < 0 || s.Stories[i].Deleted {
			return s
		}
		next := *s
		next.Stories = copyStories(s.Stories)
		vm := next.Stories[i].Clone()
		vm.Deleted = true
		next.Stories[i] = vm
		return &next
	}

	return s
}

func copyStories(in []*StoryViewModel) []*StoryViewModel {
	out := make([]*StoryViewModel, len(in))
	copy(out, in)
	return out
}

// ascending by timestamp, ties broken by message id so the order is stable
// across re-deliveries.
func sortStories(stories []*StoryViewModel) {
	sort.SliceStable(stories, func(i, j int) bool {
		if stories[i].Timestamp != stories[j].Timestamp {
			return stories[i].Timestamp < stories[j].Timestamp
		}
		return stories[i].MessageID < stories[j].MessageID
	})
}

// shouldReplace decides whether an upsert for a known story is worth a new
// state value. Upstream delivery is mostly redundant (live send-state
// fan-out re-sends the whole view-model), so only these transitions count:
//   - attachment entered downloading
//   - attachment went not-downloaded -> downloaded
//   - deletion flag went false -> true
//   - send-state map changed
//   - read status changed
//   - reaction count changed
//
// Other attachment transitions intentionally do not count.
func shouldReplace(old, in *StoryViewModel) bool {
	if in.Attachment.IsDownloading() && !old.Attachment.IsDownloading() {
		return true
	}
	if old.Attachment != nil && old.Attachment.State == DownloadNone && in.Attachment.IsDownloaded() {
		return true
	}
	if !old.Deleted && in.Deleted {
		return true
	}
	if !reflect.DeepEqual(old.SendState, in.SendState) {
		return true
	}
	if old.ReadStatus != in.ReadStatus {
		return true
	}
	if len(old.Reactions) != len(in.Reactions) {
		return true
	}
	return false
}
