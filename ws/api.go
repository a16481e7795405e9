package ws

import (
	"github.com/mqy/storyview/view"
)

// Session describes one connected UI client.
type Session struct {
	UID        string `json:"uid"`
	SID        string `json:"sid"`
	CreateTime int64  `json:"create_time"`
	IP         string `json:"ip"`
}

// ClientMsg is one client request frame: exactly one field is set.
type ClientMsg struct {
	ToggleView        *ToggleViewReq        `json:"toggle_view,omitempty"`
	GetStories        *GetStoriesReq        `json:"get_stories,omitempty"`
	MarkRead          *MarkReadReq          `json:"mark_read,omitempty"`
	React             *ReactReq             `json:"react,omitempty"`
	Reply             *ReplyReq             `json:"reply,omitempty"`
	QueueDownload     *QueueDownloadReq     `json:"queue_download,omitempty"`
	DeleteForEveryone *DeleteForEveryoneReq `json:"delete_for_everyone,omitempty"`
	LoadReplies       *LoadRepliesReq       `json:"load_replies,omitempty"`
}

type ToggleViewReq struct{}

type GetStoriesReq struct{}

type MarkReadReq struct {
	MessageID string `json:"message_id"`
}

type ReactReq struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

type ReplyReq struct {
	ConversationID string   `json:"conversation_id"`
	StoryID        string   `json:"story_id"`
	Body           string   `json:"body,omitempty"`
	Mentions       []string `json:"mentions,omitempty"`
	Timestamp      int64    `json:"timestamp"`
}

type QueueDownloadReq struct {
	StoryID string `json:"story_id"`
}

type DeleteForEveryoneReq struct {
	StoryID string `json:"story_id"`
}

type LoadRepliesReq struct {
	ConversationID string `json:"conversation_id"`
	StoryID        string `json:"story_id"`
}

// StateResp is the full panel snapshot.
type StateResp struct {
	ViewingEnabled bool                   `json:"viewing_enabled"`
	Stories        []*view.StoryViewModel `json:"stories,omitempty"`
	ThreadStoryID  string                 `json:"thread_story_id,omitempty"`
	ThreadReplies  []*view.ReplyMessage   `json:"thread_replies,omitempty"`
}

type Error struct {
	Code   int32      `json:"code"`
	Params []string   `json:"params,omitempty"`
	Req    *ClientMsg `json:"req,omitempty"`
}

// ServerMsg is one server frame.
type ServerMsg struct {
	// StateChanged pings the client to pull a fresh snapshot.
	StateChanged bool       `json:"state_changed,omitempty"`
	State        *StateResp `json:"state,omitempty"`
	Toast        string     `json:"toast,omitempty"`
	Ack          string     `json:"ack,omitempty"`
	Error        *Error     `json:"error,omitempty"`
	Kickoff      bool       `json:"kickoff,omitempty"`
}
