package ws

import (
	"context"

	"github.com/mqy/storyview/effects"
	"github.com/mqy/storyview/view"
)

const (
	ErrorCodeInvalidArguments = 3
	ErrorCodeInternal         = 13
)

// ClientApi serves websocket client requests against the store and effects.
type ClientApi struct {
	store *view.Store
	eff   *effects.Effects
}

func NewClientApi(store *view.Store, eff *effects.Effects) *ClientApi {
	return &ClientApi{
		store: store,
		eff:   eff,
	}
}

func (a *ClientApi) snapshot() *StateResp {
	st := a.store.State()
	resp := &StateResp{
		ViewingEnabled: st.ViewingEnabled,
		Stories:        st.Stories,
	}
	if st.ReplyThread != nil {
		resp.ThreadStoryID = st.ReplyThread.StoryID
		resp.ThreadReplies = st.ReplyThread.Replies
	}
	return resp
}

func (a *ClientApi) ToggleView(ctx context.Context, req *ToggleViewReq) (*StateResp, *Error) {
	a.store.Dispatch(view.ToggleView{})
	return a.snapshot(), nil
}

func (a *ClientApi) GetStories(ctx context.Context, req *GetStoriesReq) (*StateResp, *Error) {
	return a.snapshot(), nil
}

func (a *ClientApi) MarkRead(ctx context.Context, req *MarkReadReq) *Error {
	if req.MessageID == "" {
		return newInvalidArgumentError(&ClientMsg{MarkRead: req}, "message_id: required")
	}
	if err := a.eff.MarkRead(ctx, req.MessageID); err != nil {
		return newInternalError(&ClientMsg{MarkRead: req}, err.Error())
	}
	return nil
}

func (a *ClientApi) React(ctx context.Context, req *ReactReq) *Error {
	var errs []string
	if req.MessageID == "" {
		errs = append(errs, "message_id: required")
	}
	if req.Emoji == "" {
		errs = append(errs, "emoji: required")
	}
	if len(errs) > 0 {
		return newInvalidArgumentError(&ClientMsg{React: req}, errs...)
	}

	// Fire-and-forget: failures are toasted by the effect.
	a.eff.React(ctx, req.Emoji, req.MessageID)
	return nil
}

func (a *ClientApi) Reply(ctx context.Context, req *ReplyReq) *Error {
	var errs []string
	if req.ConversationID == "" {
		errs = append(errs, "conversation_id: required")
	}
	if req.StoryID == "" {
		errs = append(errs, "story_id: required")
	}
	if len(errs) > 0 {
		return newInvalidArgumentError(&ClientMsg{Reply: req}, errs...)
	}

	parent := a.store.State().Story(req.StoryID)
	if parent == nil {
		return newInvalidArgumentError(&ClientMsg{Reply: req}, "story_id: unknown story")
	}

	if err := a.eff.Reply(ctx, req.ConversationID, req.Body, req.Mentions, req.Timestamp, parent); err != nil {
		return newInternalError(&ClientMsg{Reply: req}, err.Error())
	}
	return nil
}

func (a *ClientApi) QueueDownload(ctx context.Context, req *QueueDownloadReq) *Error {
	if req.StoryID == "" {
		return newInvalidArgumentError(&ClientMsg{QueueDownload: req}, "story_id: required")
	}
	if err := a.eff.QueueDownload(ctx, req.StoryID); err != nil {
		return newInternalError(&ClientMsg{QueueDownload: req}, err.Error())
	}
	return nil
}

func (a *ClientApi) DeleteForEveryone(ctx context.Context, req *DeleteForEveryoneReq) *Error {
	if req.StoryID == "" {
		return newInvalidArgumentError(&ClientMsg{DeleteForEveryone: req}, "story_id: required")
	}

	story := a.store.State().Story(req.StoryID)
	if story == nil {
		return newInvalidArgumentError(&ClientMsg{DeleteForEveryone: req}, "story_id: unknown story")
	}

	if err := a.eff.DeleteForEveryone(ctx, story); err != nil {
		return newInternalError(&ClientMsg{DeleteForEveryone: req}, err.Error())
	}
	return nil
}

func (a *ClientApi) LoadReplies(ctx context.Context, req *LoadRepliesReq) *Error {
	var errs []string
	if req.ConversationID == "" {
		errs = append(errs, "conversation_id: required")
	}
	if req.StoryID == "" {
		errs = append(errs, "story_id: required")
	}
	if len(errs) > 0 {
		return newInvalidArgumentError(&ClientMsg{LoadReplies: req}, errs...)
	}

	if err := a.eff.LoadReplies(ctx, req.ConversationID, req.StoryID); err != nil {
		return newInternalError(&ClientMsg{LoadReplies: req}, err.Error())
	}
	return nil
}

func newInvalidArgumentError(req *ClientMsg, errs ...string) *Error {
	return &Error{
		Code:   ErrorCodeInvalidArguments,
		Params: errs,
		Req:    req,
	}
}

func newInternalError(req *ClientMsg, err string) *Error {
	return &Error{
		Code:   ErrorCodeInternal,
		Params: []string{err},
		Req:    req,
	}
}

func interceptError(err *Error) {
	if err.Code == ErrorCodeInternal {
		err.Params = []string{"temp storage error"}
	}
}
