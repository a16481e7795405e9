// Package effects holds the asynchronous orchestrations behind user-facing
// story operations. Each effect reads the current store snapshot, calls out
// to collaborators, and dispatches at most one terminal delta. Collaborators
// are injected so effects run without any process-wide singleton.
package effects

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/mqy/storyview/attach"
	"github.com/mqy/storyview/jobqueue"
	"github.com/mqy/storyview/msgstore"
	"github.com/mqy/storyview/session"
	"github.com/mqy/storyview/view"
)

const (
	// repliesFetchLimit caps one thread load.
	repliesFetchLimit = 9000

	// retractionTTLSeconds: recipients keep honoring a retraction for a day.
	retractionTTLSeconds = int64(24 * time.Hour / time.Second)
)

// INotifier surfaces user-visible failures (toasts).
type INotifier interface {
	Toast(msg string)
}

type Effects struct {
	store       *view.Store
	msgs        msgstore.IMessageStore
	jobs        jobqueue.IJobQueue
	sess        session.ISession
	attachments attach.IAttachments
	notifier    INotifier
}

func New(store *view.Store, msgs msgstore.IMessageStore, jobs jobqueue.IJobQueue,
	sess session.ISession, attachments attach.IAttachments, notifier INotifier) *Effects {
	return &Effects{
		store:       store,
		msgs:        msgs,
		jobs:        jobs,
		sess:        sess,
		attachments: attachments,
		notifier:    notifier,
	}
}

// DeleteForEveryone retracts a story from every recipient that received it,
// except recipients that also received the same timestamp under a different
// distribution list: retracting there would tear down a copy that is still
// legitimately shared.
func (e *Effects) DeleteForEveryone(ctx context.Context, story *view.StoryViewModel) error {
	if len(story.SendState) == 0 {
		glog.V(5).Infof("delete for everyone: story %s has no send state", story.MessageID)
		return nil
	}

	exclude := make(map[string]struct{})
	for _, vm := range e.store.State().Stories {
		if vm.MessageID == story.MessageID ||
			vm.Timestamp != story.Timestamp ||
			vm.DistributionListID == story.DistributionListID {
			continue
		}
		for conversationID := range vm.SendState {
			exclude[conversationID] = struct{}{}
		}
	}

	for conversationID := range story.SendState {
		if _, ok := exclude[conversationID]; ok {
			glog.V(5).Infof("delete for everyone: skip %s, shared via another list", conversationID)
			continue
		}
		if err := e.jobs.EnqueueRetraction(ctx, &jobqueue.RetractionJob{
			ConversationID: conversationID,
			StoryID:        story.MessageID,
			Timestamp:      story.Timestamp,
			TTLSeconds:     retractionTTLSeconds,
		}); err != nil {
			return err
		}
	}

	e.store.Dispatch(view.StoryDeletedEverywhere{MessageID: story.MessageID})
	return nil
}

// LoadReplies fetches the reply thread of one story and swaps it into the
// store.
func (e *Effects) LoadReplies(ctx context.Context, conversationID, storyID string) error {
	conv, err := e.sess.GetConversation(conversationID)
	if err != nil {
		return err
	}

	replies, err := e.msgs.FetchOlderThreadMessages(ctx, conversationID, &msgstore.ThreadQuery{
		Limit:   repliesFetchLimit,
		StoryID: storyID,
		IsGroup: conv != nil && conv.IsGroup,
	})
	if err != nil {
		return err
	}

	e.store.Dispatch(view.ReplyThreadLoaded{StoryID: storyID, Replies: replies})
	return nil
}

// MarkRead marks one story viewed. Preconditions: the view-model exists,
// its attachment is fully downloaded, and it is still unread; otherwise the
// effect is a silent no-op.
func (e *Effects) MarkRead(ctx context.Context, messageID string) error {
	vm := e.store.State().Story(messageID)
	if vm == nil || !vm.Attachment.IsDownloaded() || vm.ReadStatus != view.Unread {
		glog.V(5).Infof("mark read: preconditions not met, message: %s", messageID)
		return nil
	}

	readAt := time.Now().UnixMilli()

	if err := e.sess.MarkViewed(vm.MessageID, readAt); err != nil {
		return err
	}

	primary, err := e.sess.IsPrimaryDevice()
	if err != nil {
		return err
	}
	if !primary {
		if err := e.jobs.EnqueueViewSync(ctx, &jobqueue.ViewSyncJob{
			StoryID:        vm.MessageID,
			ConversationID: vm.ConversationID,
			AuthorID:       vm.AuthorID,
			ReadAt:         readAt,
		}); err != nil {
			return err
		}
	}

	if err := e.jobs.EnqueueViewedReceipt(ctx, &jobqueue.ViewedReceiptJob{
		StoryID:        vm.MessageID,
		ConversationID: vm.ConversationID,
		AuthorID:       vm.AuthorID,
		ReadAt:         readAt,
	}); err != nil {
		return err
	}

	if err := e.msgs.RecordStoryRead(ctx, &msgstore.StoryRead{
		AuthorID:       vm.AuthorID,
		ConversationID: vm.ConversationID,
		StoryID:        vm.MessageID,
		ReadAt:         readAt,
	}); err != nil {
		return err
	}

	e.store.Dispatch(view.StoryMarkedRead{MessageID: messageID})
	return nil
}

// QueueDownload makes a story's attachment renderable: resolves the URL of
// an already-downloaded attachment, or enqueues the transfer.
func (e *Effects) QueueDownload(ctx context.Context, storyID string) error {
	vm := e.store.State().Story(storyID)
	if vm == nil || vm.Attachment == nil {
		glog.V(5).Infof("queue download: no attachment, story: %s", storyID)
		return nil
	}

	att := vm.Attachment
	switch {
	case att.IsDownloaded():
		if att.IsUnresolved() {
			e.store.Dispatch(view.AttachmentURLResolved{
				MessageID: storyID,
				URL:       e.attachments.AbsolutePath(att.Path),
			})
		}
		return nil

	case att.IsDownloading():
		return nil

	default:
		// Force re-hydration of the message's reply context once the bytes
		// arrive.
		if err := e.msgs.ClearReplyContext(ctx, storyID); err != nil {
			return err
		}
		if err := e.attachments.EnqueueDownload(storyID); err != nil {
			return err
		}
		e.store.Notify()
		return nil
	}
}

// React enqueues a reaction send. Fire-and-forget: a failure is toasted and
// logged, never returned, and watchers are woken either way.
func (e *Effects) React(ctx context.Context, emoji, messageID string) {
	if err := e.jobs.EnqueueReaction(ctx, &jobqueue.ReactionJob{
		MessageID: messageID,
		Emoji:     emoji,
		Timestamp: time.Now().UnixMilli(),
	}); err != nil {
		glog.Errorf("react: enqueue error, message: %s, err: %v", messageID, err)
		e.notifier.Toast("Your reaction could not be sent. Try again.")
	}
	e.store.Notify()
}

// Reply enqueues an outgoing reply to a story. Unknown conversations are a
// logged no-op.
func (e *Effects) Reply(ctx context.Context, conversationID, body string, mentions []string,
	timestamp int64, parent *view.StoryViewModel) error {
	conv, err := e.sess.GetConversation(conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		glog.Errorf("reply: conversation not found: %s", conversationID)
		return nil
	}

	reply, err := e.jobs.EnqueueReply(ctx, &jobqueue.ReplyJob{
		ConversationID: conversationID,
		Body:           body,
		Mentions:       mentions,
		Timestamp:      timestamp,
		StoryID:        parent.MessageID,
		StoryTimestamp: parent.Timestamp,
	})
	if err != nil {
		return err
	}
	if reply != nil {
		e.store.Dispatch(view.ReplySent{Reply: reply})
	}
	return nil
}
