package view

// DownloadState is the lifecycle of a story attachment's binary.
type DownloadState int32

const (
	// DownloadNone: no local copy and no pending download.
	DownloadNone DownloadState = iota
	Downloading
	Downloaded
)

// Attachment is the render-side projection of a story's binary.
// `Path` is relative to the attachments root once downloaded; `URL` is the
// resolved absolute path, filled in lazily (see DownloadUnresolved).
type Attachment struct {
	State       DownloadState `json:"state"`
	Path        string        `json:"path,omitempty"`
	URL         string        `json:"url,omitempty"`
	ContentType string        `json:"content_type,omitempty"`
	Size        int64         `json:"size,omitempty"`
}

func (a *Attachment) IsDownloaded() bool {
	return a != nil && a.State == Downloaded
}

func (a *Attachment) IsDownloading() bool {
	return a != nil && a.State == Downloading
}

// IsUnresolved reports a downloaded attachment whose on-disk path has not
// been resolved to an absolute URL yet.
func (a *Attachment) IsUnresolved() bool {
	return a.IsDownloaded() && a.Path != "" && a.URL == ""
}

type ReadStatus int32

const (
	Unread ReadStatus = iota
	Viewed
)

// SendStatus is the per-recipient delivery state of an outgoing story.
type SendStatus string

const (
	SendPending   SendStatus = "pending"
	SendSent      SendStatus = "sent"
	SendDelivered SendStatus = "delivered"
	SendViewed    SendStatus = "viewed"
	SendFailed    SendStatus = "failed"
)

type Reaction struct {
	FromID    string `json:"from_id"`
	Emoji     string `json:"emoji"`
	Timestamp int64  `json:"timestamp"`
}

// StoryViewModel is the denormalized, render-ready projection of one story
// message. The store holds at most one per MessageID.
type StoryViewModel struct {
	MessageID          string                `json:"message_id"`
	ConversationID     string                `json:"conversation_id"`
	AuthorID           string                `json:"author_id"`
	SourceID           string                `json:"source_id,omitempty"`
	DistributionListID string                `json:"distribution_list_id,omitempty"`
	Timestamp          int64                 `json:"timestamp"`
	Variant            string                `json:"variant,omitempty"`
	ReadStatus         ReadStatus            `json:"read_status"`
	Deleted            bool                  `json:"deleted,omitempty"`
	Attachment         *Attachment           `json:"attachment,omitempty"`
	Reactions          []Reaction            `json:"reactions,omitempty"`
	SendState          map[string]SendStatus `json:"send_state,omitempty"`
}

// Clone deep-copies the view-model so the store never aliases mutable data
// owned by a collaborator.
func (s *StoryViewModel) Clone() *StoryViewModel {
	out := *s
	if s.Attachment != nil {
		att := *s.Attachment
		out.Attachment = &att
	}
	if s.Reactions != nil {
		out.Reactions = make([]Reaction, len(s.Reactions))
		copy(out.Reactions, s.Reactions)
	}
	if s.SendState != nil {
		out.SendState = make(map[string]SendStatus, len(s.SendState))
		for k, v := range s.SendState {
			out.SendState[k] = v
		}
	}
	return &out
}

// ReplyMessage is one message in a story's reply thread.
type ReplyMessage struct {
	MessageID     string   `json:"message_id"`
	ParentStoryID string   `json:"parent_story_id"`
	ConversationID string  `json:"conversation_id"`
	AuthorID      string   `json:"author_id"`
	Body          string   `json:"body,omitempty"`
	Mentions      []string `json:"mentions,omitempty"`
	Timestamp     int64    `json:"timestamp"`
	Deleted       bool     `json:"deleted,omitempty"`
}

// ReplyThread holds the replies to one story in insertion order, at most
// one entry per reply MessageID.
type ReplyThread struct {
	StoryID string
	Replies []*ReplyMessage
}

// State is the whole view-model snapshot. Stories are kept sorted ascending
// by timestamp with at most one entry per MessageID.
type State struct {
	ViewingEnabled bool
	ReplyThread    *ReplyThread
	Stories        []*StoryViewModel
}

func (s *State) findStory(messageID string) int {
	for i, vm := range s.Stories {
		if vm.MessageID == messageID {
			return i
		}
	}
	return -1
}

// Story returns the view-model with the given id, nil if absent.
func (s *State) Story(messageID string) *StoryViewModel {
	if i := s.findStory(messageID); i >= 0 {
		return s.Stories[i]
	}
	return nil
}
