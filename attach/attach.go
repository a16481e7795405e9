package attach

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	downloadEnqueued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storyview_attachment_downloads_enqueued_total",
		Help: "Attachment downloads handed to the transfer worker.",
	})
	downloadDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storyview_attachment_downloads_dropped_total",
		Help: "Attachment downloads dropped because the queue was full.",
	})
	downloadFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storyview_attachment_downloads_failed_total",
		Help: "Attachment transfers that returned an error.",
	})
)

func init() {
	prometheus.MustRegister(downloadEnqueued, downloadDropped, downloadFailed)
}

const downloadQueueSize = 256

// ITransfer performs the actual fetch of one attachment's bytes. Transfer
// implementations own retry.
type ITransfer interface {
	Download(ctx context.Context, messageID string) error
}

type IAttachments interface {
	// AbsolutePath resolves a store-relative attachment path.
	AbsolutePath(relPath string) string

	// EnqueueDownload hands a story's attachment to the transfer worker.
	EnqueueDownload(messageID string) error
}

// Manager implements `IAttachments`: path resolution plus a bounded
// download queue drained by Run.
type Manager struct {
	root      string
	transfer  ITransfer
	downloadC chan string
	wg        sync.WaitGroup
}

func NewManager(root string, transfer ITransfer) *Manager {
	return &Manager{
		root:      root,
		transfer:  transfer,
		downloadC: make(chan string, downloadQueueSize),
	}
}

// AbsolutePath joins `relPath` with the attachments root. Paths that would
// escape the root resolve to "".
func (m *Manager) AbsolutePath(relPath string) string {
	if relPath == "" {
		return ""
	}
	abs := filepath.Join(m.root, filepath.Clean("/"+relPath))
	if !strings.HasPrefix(abs, m.root+string(filepath.Separator)) {
		glog.Errorf("attach: path `%s` escapes root", relPath)
		return ""
	}
	return abs
}

func (m *Manager) EnqueueDownload(messageID string) error {
	select {
	case m.downloadC <- messageID:
		downloadEnqueued.Inc()
		glog.V(5).Infof("attach: enqueued download, message: %s", messageID)
		return nil
	default:
		downloadDropped.Inc()
		return fmt.Errorf("attach: download queue full, message: %s", messageID)
	}
}

// Run drains the download queue until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, stopDoneNotifyC chan<- struct{}) {
	m.wg.Add(1)
	glog.Info("attach: download loop enter")

	defer func() {
		glog.Info("attach: download loop exit")
		m.wg.Done()
		stopDoneNotifyC <- struct{}{}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case messageID := <-m.downloadC:
			if err := m.transfer.Download(ctx, messageID); err != nil {
				downloadFailed.Inc()
				if err == context.Canceled {
					return
				}
				glog.Errorf("attach: download error, message: %s, err: %v", messageID, err)
			}
		}
	}
}
