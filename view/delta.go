package view

// Delta is the sealed set of state transitions the reducer understands.
// Kind() doubles as the metrics/log label.
type Delta interface {
	Kind() string
}

// ToggleView flips whether the stories panel is open.
type ToggleView struct{}

// MessageRemoved drops the view-model with the given id, if present.
type MessageRemoved struct {
	MessageID string
}

// StoryUpserted inserts a new view-model or replaces an existing one when
// the update is change-worthy (see shouldReplace).
type StoryUpserted struct {
	Story *StoryViewModel
}

// StoryMarkedRead sets the matching view-model's read status to viewed.
type StoryMarkedRead struct {
	MessageID string
}

// ReplyThreadLoaded replaces the active reply thread wholesale.
type ReplyThreadLoaded struct {
	StoryID string
	Replies []*ReplyMessage
}

// ReplyObserved merges an incoming reply into the active thread: append if
// new, replace in place if known (covers edits and delete-for-everyone
// tombstones arriving as change events).
type ReplyObserved struct {
	Reply *ReplyMessage
}

// ReplySent appends a locally sent reply to the active thread.
type ReplySent struct {
	Reply *ReplyMessage
}

// AttachmentURLResolved rewrites only the URL field of the matching
// view-model's attachment.
type AttachmentURLResolved struct {
	MessageID string
	URL       string
}

// StoryDeletedEverywhere marks the matching view-model as retracted.
type StoryDeletedEverywhere struct {
	MessageID string
}

func (ToggleView) Kind() string             { return "toggle_view" }
func (MessageRemoved) Kind() string         { return "message_removed" }
func (StoryUpserted) Kind() string          { return "story_upserted" }
func (StoryMarkedRead) Kind() string        { return "story_marked_read" }
func (ReplyThreadLoaded) Kind() string      { return "reply_thread_loaded" }
func (ReplyObserved) Kind() string          { return "reply_observed" }
func (ReplySent) Kind() string              { return "reply_sent" }
func (AttachmentURLResolved) Kind() string  { return "attachment_url_resolved" }
func (StoryDeletedEverywhere) Kind() string { return "story_deleted_everywhere" }
