package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
)

type SessionError int

const (
	ReadError  SessionError = 1
	WriteError SessionError = 2
	PingError  SessionError = 3
	BadRequest SessionError = 4
	ServerStop SessionError = 5
	KickedOff  SessionError = 6
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 3 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 20 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 25 * time.Second

	// websocket max message size to read.
	readLimit = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// The node is expected to sit behind a reverse proxy that owns
		// origin checks.
		return true
	},
}

// Handler manages an active connection to one UI client.
// Every new websocket connection creates a new session.
type Handler struct {
	sync.Mutex

	api *ClientApi
	hub *Hub

	session *Session
	conn    *websocket.Conn

	dataChan chan *SessionData

	closing bool
}

// SessionData is the data structure for `dataChan`.
type SessionData struct {
	Error     SessionError `json:"error,omitempty"`
	ServerMsg *ServerMsg   `json:"resp,omitempty"`
}

func (h *Handler) String() string {
	out, _ := json.Marshal(h.session)
	return string(out)
}

func (h *Handler) close(cause SessionError) {
	h.Lock()
	defer h.Unlock()
	if h.closing {
		return
	}

	h.closing = true

	h.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = h.conn.WriteMessage(websocket.CloseMessage, []byte{})
	h.conn.Close()

	close(h.dataChan)

	if cause != ServerStop {
		glog.V(5).Infof("session closed, cause: %d, %s", cause, h)
		// Ask the hub to forget this handler.
		h.hub.delHandler(h.session.SID)
	}
}

func (h *Handler) appendDataChan(v *SessionData) {
	h.Lock()
	defer h.Unlock()
	if !h.closing {
		h.dataChan <- v
	}
}

func sendServerMsg(conn *websocket.Conn, msg *ServerMsg) error {
	out, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, out)
}

func (h *Handler) recvLoop() {
	defer func() { glog.V(5).Infof("recvLoop(): exited, session: %s", h.String()) }()

	h.conn.SetReadLimit(readLimit)
	h.conn.SetReadDeadline(time.Now().Add(pongWait))
	h.conn.SetPongHandler(func(s string) error {
		h.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for !h.closing {
		msgType, msg, err := h.conn.ReadMessage()
		if err != nil {
			glog.Errorf("recvLoop(): read error: %v", err)
			h.appendDataChan(&SessionData{Error: ReadError})
			return
		}

		glog.V(5).Infof("recvLoop(): incoming client message: %v", string(msg))

		if msgType != websocket.TextMessage {
			glog.Errorf("recvLoop(): unexpected message type: %d", msgType)
			h.appendDataChan(&SessionData{ServerMsg: &ServerMsg{
				Error: newInvalidArgumentError(nil, "websocket only supports TextMessage"),
			}})
			h.appendDataChan(&SessionData{Error: BadRequest})
			return
		}

		req := ClientMsg{}
		if err := json.Unmarshal(msg, &req); err != nil {
			glog.Errorf("recvLoop(): message error: msg: %s, err: %v", string(msg), err)
			h.appendDataChan(&SessionData{ServerMsg: &ServerMsg{
				Error: newInvalidArgumentError(&req, fmt.Sprintf("marshal error: %v", err)),
			}})
			h.appendDataChan(&SessionData{Error: BadRequest})
			return
		}

		h.serve(&req)
	}
}

func (h *Handler) serve(req *ClientMsg) {
	ctx := context.Background()

	switch {
	case req.ToggleView != nil:
		resp, err := h.api.ToggleView(ctx, req.ToggleView)
		h.reply("toggle_view", resp, err)
	case req.GetStories != nil:
		resp, err := h.api.GetStories(ctx, req.GetStories)
		h.reply("get_stories", resp, err)
	case req.MarkRead != nil:
		h.reply("mark_read", nil, h.api.MarkRead(ctx, req.MarkRead))
	case req.React != nil:
		h.reply("react", nil, h.api.React(ctx, req.React))
	case req.Reply != nil:
		h.reply("reply", nil, h.api.Reply(ctx, req.Reply))
	case req.QueueDownload != nil:
		h.reply("queue_download", nil, h.api.QueueDownload(ctx, req.QueueDownload))
	case req.DeleteForEveryone != nil:
		h.reply("delete_for_everyone", nil, h.api.DeleteForEveryone(ctx, req.DeleteForEveryone))
	case req.LoadReplies != nil:
		h.reply("load_replies", nil, h.api.LoadReplies(ctx, req.LoadReplies))
	default:
		glog.Errorf("recvLoop(): unsupported request: %+v", req)
		h.appendDataChan(&SessionData{ServerMsg: &ServerMsg{
			Error: newInvalidArgumentError(req, "unsupported request"),
		}})
		h.appendDataChan(&SessionData{Error: BadRequest})
	}
}

func (h *Handler) reply(op string, state *StateResp, err *Error) {
	if err != nil {
		glog.Errorf("serve(): %s error: %+v, session: %s", op, err, h.String())
		interceptError(err)
		h.appendDataChan(&SessionData{ServerMsg: &ServerMsg{Error: err}})
		return
	}
	h.appendDataChan(&SessionData{ServerMsg: &ServerMsg{Ack: op, State: state}})
}

func (h *Handler) sendLoop() {
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		pingTicker.Stop()
		glog.V(5).Infof("sendLoop(): exited, session: %s", h.String())
	}()

	for {
		select {
		case v, ok := <-h.dataChan:
			if !ok { // chan was closed
				h.conn.Close()
				glog.V(5).Infof("sendLoop(): data chan closed, session: %s", h.String())
				return
			}

			if glog.V(5) {
				dataJson, _ := json.Marshal(v)
				logValue := string(dataJson)
				if len(logValue) > 100 {
					logValue = logValue[:100] + " ..."
				}
				glog.Infof("sendLoop(), get from data chan, value: %s, session: %s", logValue, h.String())
			}

			if v.Error > 0 {
				h.close(v.Error)
				return
			} else if v.ServerMsg == nil {
				// should not happen.
				panic(fmt.Sprintf("sendLoop(), unknown data from dataChan: %#+v", v))
			}

			if err := sendServerMsg(h.conn, v.ServerMsg); err != nil {
				glog.Errorf("sendLoop(), error write message. session: %s, err: %v", h.String(), err)
				h.appendDataChan(&SessionData{Error: WriteError})
				return
			}
			if v.ServerMsg.Kickoff {
				h.close(KickedOff)
			}
		case <-pingTicker.C:
			h.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := h.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				glog.Errorf("sendLoop(), error write ping message. session: %s, err: %v", h, err)
				h.appendDataChan(&SessionData{Error: PingError})
				return
			}
		}
	}
}
