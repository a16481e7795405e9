package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kafka "github.com/segmentio/kafka-go"

	"github.com/mqy/storyview/attach"
	"github.com/mqy/storyview/auth"
	"github.com/mqy/storyview/effects"
	"github.com/mqy/storyview/jobqueue"
	"github.com/mqy/storyview/msgstore"
	"github.com/mqy/storyview/session"
	"github.com/mqy/storyview/syncer"
	"github.com/mqy/storyview/view"
	"github.com/mqy/storyview/ws"
)

const (
	kafkaGroupId          = "storyview"
	kafkaUpdatesTopic     = "storyview-updates"
	kafkaJobsTopic        = "storyview-jobs"
	updatePayloadMaxBytes = 65536

	kafkaReadTimeout = 10 * time.Second

	readsPruneInterval = time.Hour

	MinTTLDays = 7
	MaxTTLDays = 100
)

var (
	flagAddr         = flag.String("addr", "127.0.0.1:8000", "server address, ip:port")
	flagPidFile      = flag.String("pid-file", "storyview.pid", "pid file")
	flagMysqlDsn     = flag.String("mysql-dsn", "root:@tcp(127.0.0.1:3306)/storyview?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci", "mysql server dsn")
	flagKafkaBrokers = flag.String("kafka-brokers", "127.0.0.1:9092", "comma separated kafka brokers")

	flagSessionDB      = flag.String("session-db", "session.db", "bbolt device/conversation registry file")
	flagAttachmentsDir = flag.String("attachments-dir", "attachments", "attachments root dir")
	flagPrimaryDevice  = flag.Bool("primary-device", false, "this device is the account primary; linked devices sync views to it")
	flagSeedConvFile   = flag.String("seed-conversations", "", "optional JSON file with conversations to load into the registry")

	flagReadTTLDays = flag.Uint("read-ttldays", 30, "story read event TTL in days")
	flagCleanReads  = flag.Bool("clean-reads", true, "enable deleting outdated story read events")

	flagPprofDir       = flag.String("pprof-dir", "pprof", "dir to save pprof data files")
	flagDisableMetrics = flag.Bool("disable-metrics", false, "disable prometheus metrics")
)

func main() {
	flag.Parse()

	// NOTE: os.Exit() does not call defers.
	os.Exit(run())
}

func run() int {
	defer glog.Flush()

	if v := validateFlags(); v > 0 {
		return v
	}

	pid := os.Getpid()

	if err := savePid(*flagPidFile, pid); err != nil {
		return errorf("pid file: %v", err)
	}
	defer func() {
		_ = os.Remove(*flagPidFile)
	}()

	pprofDir := filepath.Join(*flagPprofDir, strconv.Itoa(pid))
	if err := os.MkdirAll(pprofDir, 0750); err != nil {
		return errorf("--pprof-dir: error create dir `%s`: %v", pprofDir, err)
	}
	defer func() {
		_ = os.RemoveAll(pprofDir)
	}()

	db, err := sql.Open("mysql", *flagMysqlDsn)
	if err != nil {
		return errorf("sql.Open error, dsn: %s, err: %v", *flagMysqlDsn, err)
	}

	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(1)

	glog.Info("storyview server is starting")

	sess, err := session.Open(*flagSessionDB)
	if err != nil {
		return errorf("session: %v", err)
	}
	if err := sess.SetPrimaryDevice(*flagPrimaryDevice); err != nil {
		return errorf("session: set primary device: %v", err)
	}
	if *flagSeedConvFile != "" {
		if err := seedConversations(sess, *flagSeedConvFile); err != nil {
			return errorf("--seed-conversations: %v", err)
		}
	}

	store := view.NewStore()
	msgs := msgstore.NewMessageStore(db)

	kafkaBrokers := strings.Split(*flagKafkaBrokers, ",")
	jobs := jobqueue.NewQueue(kafkaBrokers, kafkaJobsTopic)

	manager := attach.NewManager(*flagAttachmentsDir, newTransfer())

	hub := ws.NewHub(newAuthClient(), store)
	eff := effects.New(store, msgs, jobs, sess, manager, hub)
	hub.SetApi(ws.NewClientApi(store, eff))

	updatesReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: kafkaBrokers,
		GroupID: kafkaGroupId,
		Topic:   kafkaUpdatesTopic,
		Dialer: &kafka.Dialer{
			Timeout:   kafkaReadTimeout,
			DualStack: true,
		},
	})
	feed := syncer.NewSyncer(store, updatesReader, updatePayloadMaxBytes, int32(*flagReadTTLDays))

	mux := http.DefaultServeMux
	if !*flagDisableMetrics {
		mux.Handle("/metrics", promhttp.HandlerFor(
			prometheus.DefaultGatherer,
			promhttp.HandlerOpts{},
		))
	}
	mux.Handle("/ws", hub)

	lis, err := net.Listen("tcp", *flagAddr)
	if err != nil {
		return errorf("listen %s error: %v", *flagAddr, err)
	}
	httpServer := &http.Server{Handler: mux}
	go func() {
		if err := httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
			glog.Errorf("http serve error: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feedStopC := make(chan struct{})
	attachStopC := make(chan struct{})
	hubStopC := make(chan struct{})

	go feed.Run(ctx, feedStopC)
	go manager.Run(ctx, attachStopC)
	go hub.Run(ctx, hubStopC)
	if *flagCleanReads {
		go pruneReadsLoop(ctx, msgs, int32(*flagReadTTLDays))
	}

	glog.Infof("storyview server is serving at %s", *flagAddr)
	glog.Infof("`kill -USR1 %d` to dump goroutines; `kill -USR2 %d` to start/stop profiler; `CTRL+c` or `kill %d` to graceful stop", pid, pid, pid)

	var stopping bool

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGUSR1, syscall.SIGUSR2, syscall.SIGTERM, syscall.SIGINT)

	var prof *Profiler

	for sig := range sigCh {
		switch sig {
		case syscall.SIGUSR1:
			if prof != nil {
				prof.dumpGoroutines()
			}
		case syscall.SIGUSR2:
			if prof == nil {
				prof = StartProfiler(pprofDir)
			} else {
				prof.Stop()
				prof = nil
			}
		case syscall.SIGTERM, syscall.SIGINT:
			if stopping {
				glog.Infof("storyview server is already in stop")
				continue
			}
			stopping = true
			glog.Infof("received signal `%s` stopping", sig.String())
			go func() {
				if prof != nil {
					prof.Stop()
				}
				cancel()
				<-feedStopC
				<-attachStopC
				<-hubStopC
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				_ = httpServer.Shutdown(shutdownCtx)
				shutdownCancel()
				_ = jobs.Close()
				_ = sess.Close()
				_ = db.Close()
				signal.Stop(sigCh)
				close(sigCh)
			}()
		}
	}

	glog.Info("storyview server exited")
	return 0
}

// pruneReadsLoop deletes outdated story read events.
func pruneReadsLoop(ctx context.Context, msgs msgstore.IMessageStore, ttlDays int32) {
	glog.Info("reads pruner: enter")
	ticker := time.NewTicker(readsPruneInterval)
	defer func() {
		ticker.Stop()
		glog.Info("reads pruner: exit")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			n, err := msgs.DeleteOutdatedReads(context.Background(), ttlDays)
			if err == nil {
				glog.Infof("reads pruner: deleted %d outdated read events, took %s", n, time.Since(start))
			} else {
				glog.Errorf("reads pruner: delete outdated reads error: %v", err)
			}
		}
	}
}

func seedConversations(sess *session.Session, name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	var convs []*session.Conversation
	if err := json.Unmarshal(b, &convs); err != nil {
		return err
	}
	for _, c := range convs {
		if c.ID == "" {
			return fmt.Errorf("conversation without id")
		}
		if err := sess.PutConversation(c); err != nil {
			return err
		}
	}
	glog.Infof("seeded %d conversations", len(convs))
	return nil
}

func newAuthClient() auth.Client {
	// TODO: hook into production auth API.
	return &auth.MockClient{}
}

func newTransfer() attach.ITransfer {
	// TODO: hook into the media CDN client.
	return &logTransfer{}
}

// logTransfer stands in for the media CDN client.
type logTransfer struct{}

func (logTransfer) Download(ctx context.Context, messageID string) error {
	glog.Infof("transfer: download requested, message: %s", messageID)
	return nil
}

func validateFlags() int {
	if *flagAddr == "" {
		return errorf("--addr is required")
	}
	if err := validateAddr(*flagAddr); err != nil {
		return errorf("--addr: %v", err)
	}
	if *flagPidFile == "" {
		return errorf("--pid-file is required")
	}
	if *flagPprofDir == "" {
		return errorf("--pprof-dir is required")
	}
	if *flagSessionDB == "" {
		return errorf("--session-db is required")
	}
	if *flagAttachmentsDir == "" {
		return errorf("--attachments-dir is required")
	}

	if *flagCleanReads {
		if *flagReadTTLDays < MinTTLDays || *flagReadTTLDays > MaxTTLDays {
			return errorf("invalid --read-ttldays, expect in range [%d, %d]", MinTTLDays, MaxTTLDays)
		}
	}

	if len(*flagKafkaBrokers) == 0 {
		return errorf("--kafka-brokers is required.")
	}

	if *flagMysqlDsn == "" {
		return errorf("--mysql-dsn is required.")
	}

	if *flagSeedConvFile != "" {
		if _, err := os.Stat(*flagSeedConvFile); err != nil {
			return errorf("error stat seed file `%s`: %v", *flagSeedConvFile, err)
		}
	}

	return 0
}

func validateAddr(s string) error {
	ips, _, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("error split host port from `%s`: %v", s, err)
	}
	ip := net.ParseIP(ips)
	if ip == nil {
		return fmt.Errorf("error parse IP from host `%s`", ips)
	}
	if !ip.IsLoopback() && !ip.IsPrivate() {
		return fmt.Errorf("`%s` is not loopback or private address", ips)
	}
	return nil
}

func errorf(format string, args ...interface{}) int {
	glog.Errorf(format, args...)
	return 1
}

func savePid(name string, pid int) error {
	if _, err := os.Stat(name); err == nil {
		// Ok, see, if we have a stale lockfile here
		content, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		if len(content) > 0 {
			oldPid, err := strconv.Atoi(string(content))
			if err != nil {
				return err
			}

			proc, err := os.FindProcess(oldPid)
			if err != nil {
				return err
			}
			defer proc.Release()

			if err := proc.Signal(syscall.Signal(0)); err == nil {
				return fmt.Errorf("pid file: exists with pid: %d, the process is running", oldPid)
			} else {
				glog.Infof("pid file exists with pid: %d, but is not running", oldPid)
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("pid file: stat error: %v", err)
	}

	if err := os.WriteFile(name, []byte(strconv.Itoa(pid)), 0600); err != nil {
		return fmt.Errorf("pid file: write error: %v", err)
	}
	glog.Infof("pid file: write pid done")
	return nil
}
