package ws

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	attach_mock "github.com/mqy/storyview/attach/mock"
	"github.com/mqy/storyview/effects"
	jobqueue_mock "github.com/mqy/storyview/jobqueue/mock"
	msgstore_mock "github.com/mqy/storyview/msgstore/mock"
	session_mock "github.com/mqy/storyview/session/mock"
	"github.com/mqy/storyview/view"
)

type nullNotifier struct{}

func (nullNotifier) Toast(string) {}

func newTestApi(t *testing.T) (*ClientApi, *view.Store, *jobqueue_mock.MockIJobQueue) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := view.NewStore()
	jobs := jobqueue_mock.NewMockIJobQueue(ctrl)
	eff := effects.New(store,
		msgstore_mock.NewMockIMessageStore(ctrl),
		jobs,
		session_mock.NewMockISession(ctrl),
		attach_mock.NewMockIAttachments(ctrl),
		nullNotifier{})
	return NewClientApi(store, eff), store, jobs
}

func TestToggleViewRoundTrip(t *testing.T) {
	api, _, _ := newTestApi(t)
	ctx := context.Background()

	resp, apiErr := api.ToggleView(ctx, &ToggleViewReq{})
	assert.Nil(t, apiErr)
	assert.True(t, resp.ViewingEnabled)

	resp, apiErr = api.ToggleView(ctx, &ToggleViewReq{})
	assert.Nil(t, apiErr)
	assert.False(t, resp.ViewingEnabled)
}

func TestGetStoriesSnapshot(t *testing.T) {
	api, store, _ := newTestApi(t)

	store.Dispatch(view.StoryUpserted{Story: &view.StoryViewModel{MessageID: "a", Timestamp: 10}})
	store.Dispatch(view.ReplyThreadLoaded{StoryID: "a"})

	resp, apiErr := api.GetStories(context.Background(), &GetStoriesReq{})
	assert.Nil(t, apiErr)
	assert.Len(t, resp.Stories, 1)
	assert.EqualValues(t, "a", resp.ThreadStoryID)
}

func TestInvalidArguments(t *testing.T) {
	api, _, _ := newTestApi(t)
	ctx := context.Background()

	apiErr := api.MarkRead(ctx, &MarkReadReq{})
	assert.NotNil(t, apiErr)
	assert.EqualValues(t, ErrorCodeInvalidArguments, apiErr.Code)

	apiErr = api.React(ctx, &ReactReq{})
	assert.NotNil(t, apiErr)
	assert.Len(t, apiErr.Params, 2)

	apiErr = api.LoadReplies(ctx, &LoadRepliesReq{})
	assert.NotNil(t, apiErr)

	// replying to an unknown story is rejected before any effect runs.
	apiErr = api.Reply(ctx, &ReplyReq{ConversationID: "conv-1", StoryID: "nope"})
	assert.NotNil(t, apiErr)
	assert.EqualValues(t, ErrorCodeInvalidArguments, apiErr.Code)

	apiErr = api.DeleteForEveryone(ctx, &DeleteForEveryoneReq{StoryID: "nope"})
	assert.NotNil(t, apiErr)
}

func TestDeleteForEveryoneCommand(t *testing.T) {
	api, store, jobs := newTestApi(t)
	ctx := context.Background()

	store.Dispatch(view.StoryUpserted{Story: &view.StoryViewModel{
		MessageID: "a",
		Timestamp: 10,
		SendState: map[string]view.SendStatus{"conv-1": view.SendSent},
	}})

	jobs.EXPECT().EnqueueRetraction(ctx, gomock.Any()).Return(nil)

	assert.Nil(t, api.DeleteForEveryone(ctx, &DeleteForEveryoneReq{StoryID: "a"}))
	assert.True(t, store.State().Story("a").Deleted)
}

func TestInterceptError(t *testing.T) {
	err := newInternalError(nil, "table story_reads is gone")
	interceptError(err)
	assert.EqualValues(t, []string{"temp storage error"}, err.Params)
}
