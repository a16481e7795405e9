package ws

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pborman/uuid"

	"github.com/mqy/storyview/auth"
	"github.com/mqy/storyview/view"
)

// Hub manages and serves UI client sessions: it fans store-change signals
// and toasts out to every connected client and routes client commands to
// the api.
type Hub struct {
	store      *view.Store
	api        *ClientApi
	authClient auth.Client
	hstore     *HandlerStore
	online     bool
}

// NewHub creates a `Hub`. SetApi must be called before serving: the api
// needs effects that in turn toast through the hub.
func NewHub(authClient auth.Client, store *view.Store) *Hub {
	return &Hub{
		store:      store,
		authClient: authClient,
		hstore: &HandlerStore{
			handlers: make(map[string]*Handler),
		},
	}
}

func (h *Hub) SetApi(api *ClientApi) {
	h.api = api
}

// Run forwards store-change signals to connected clients until ctx is
// cancelled, then closes every session.
func (h *Hub) Run(ctx context.Context, stopDoneNotifyC chan<- struct{}) {
	changedC, unsubscribe := h.store.Subscribe()
	defer unsubscribe()

	h.online = true

	for {
		select {
		case <-ctx.Done():
			h.online = false
			glog.Infof("close connections ...")
			h.hstore.close()
			glog.Infof("close connections done")
			stopDoneNotifyC <- struct{}{}
			return
		case <-changedC:
			if n := h.hstore.size(); n > 0 {
				glog.V(7).Infof("hub: state changed, ping %d sessions", n)
				h.hstore.broadcast(&ServerMsg{StateChanged: true})
			}
		}
	}
}

// Toast implements `effects.INotifier`.
func (h *Hub) Toast(msg string) {
	glog.V(5).Infof("hub: toast: %s", msg)
	h.hstore.broadcast(&ServerMsg{Toast: msg})
}

// ServeHTTP handles websocket requests from the peer.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.online || h.api == nil {
		http.Error(w, "This node is not serving", http.StatusServiceUnavailable)
		return
	}

	uid, err := h.authClient.Auth(r)
	if err != nil {
		glog.Errorf("ServeHTTP(): authenticate error: %v", err)
		http.Error(w, "Authenticate error", http.StatusForbidden)
		return
	}

	sess := &Session{
		UID:        uid,
		SID:        strings.ReplaceAll(uuid.New(), "-", ""),
		CreateTime: time.Now().Unix(),
		IP:         getRemoteIP(r),
	}

	// If the upgrade fails, then Upgrade replies to the client with an HTTP error response.
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Errorf("ServeHTTP(): upgrader.Upgrade error, uid: %s, err: %s", uid, err)
		return
	}

	handler := &Handler{
		dataChan: make(chan *SessionData, 16),
		session:  sess,
		conn:     conn,
		api:      h.api,
		hub:      h,
	}

	conn.SetCloseHandler(func(code int, text string) error {
		glog.Infof("session closed by peer, session: %s, code: %d, text: %s", handler, code, text)
		h.delHandler(sess.SID)
		return nil
	})

	h.hstore.add(handler)

	go handler.recvLoop()
	go handler.sendLoop()
}

func (h *Hub) delHandler(sid string) {
	h.hstore.del(sid)
}

// Kickoff drops one session, e.g. when its device is unlinked.
func (h *Hub) Kickoff(sid string) {
	glog.Infof("Kickoff: %s", sid)
	if s := h.hstore.get(sid); s != nil {
		s.appendDataChan(&SessionData{ServerMsg: &ServerMsg{Kickoff: true}})
		h.hstore.del(sid)
	}
}

func getRemoteIP(r *http.Request) string {
	ip := r.Header.Get("X-REAL-IP")
	if ip == "" {
		if ips := r.Header.Get("X-FORWARDED-FOR"); ips != "" {
			slice := strings.Split(ips, ",")
			for _, x := range slice {
				if x != "" {
					ip = x
				}
			}
		}
	}
	if ip == "" {
		ip, _, _ = net.SplitHostPort(r.RemoteAddr)
	}

	return ip
}
