package attach

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	attach_mock "github.com/mqy/storyview/attach/mock"
)

func TestAbsolutePath(t *testing.T) {
	m := NewManager("/data/attachments", nil)

	assert.EqualValues(t, "/data/attachments/a/b.jpg", m.AbsolutePath("a/b.jpg"))
	assert.Empty(t, m.AbsolutePath(""))

	// escaping paths resolve inside the root or to nothing.
	assert.EqualValues(t, "/data/attachments/etc/passwd", m.AbsolutePath("../../etc/passwd"))
}

func TestDownloadQueue(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	transfer := attach_mock.NewMockITransfer(mockCtrl)
	m := NewManager(t.TempDir(), transfer)

	ctx, cancel := context.WithCancel(context.Background())

	downloaded := make(chan string, 1)
	transfer.EXPECT().Download(gomock.Any(), "story-1").DoAndReturn(
		func(_ context.Context, messageID string) error {
			downloaded <- messageID
			return nil
		})

	stopC := make(chan struct{}, 1)
	go m.Run(ctx, stopC)

	assert.NoError(t, m.EnqueueDownload("story-1"))

	select {
	case id := <-downloaded:
		assert.EqualValues(t, "story-1", id)
	case <-time.After(5 * time.Second):
		t.Fatal("transfer was never invoked")
	}

	cancel()
	<-stopC
}

func TestEnqueueDownloadOverflow(t *testing.T) {
	// no Run loop: the queue fills up.
	m := NewManager(t.TempDir(), nil)

	var err error
	for i := 0; i < downloadQueueSize+1; i++ {
		err = m.EnqueueDownload("story")
	}
	assert.Error(t, err)
}
