package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestHandler(sid string) *Handler {
	return &Handler{
		dataChan: make(chan *SessionData, 16),
		session:  &Session{UID: "u1", SID: sid},
	}
}

func TestHandlerStore(t *testing.T) {
	hs := &HandlerStore{handlers: make(map[string]*Handler)}
	assert.Zero(t, hs.size())

	a := newTestHandler("sid-a")
	b := newTestHandler("sid-b")
	hs.add(a)
	hs.add(b)

	assert.EqualValues(t, 2, hs.size())
	assert.True(t, a == hs.get("sid-a"))
	assert.Nil(t, hs.get("sid-z"))

	assert.True(t, hs.del("sid-a"))
	assert.False(t, hs.del("sid-a"))
	assert.EqualValues(t, 1, hs.size())
}

func TestBroadcastReachesEverySession(t *testing.T) {
	hs := &HandlerStore{handlers: make(map[string]*Handler)}
	a := newTestHandler("sid-a")
	b := newTestHandler("sid-b")
	hs.add(a)
	hs.add(b)

	hs.broadcast(&ServerMsg{StateChanged: true})

	for _, h := range []*Handler{a, b} {
		select {
		case v := <-h.dataChan:
			assert.True(t, v.ServerMsg.StateChanged)
		default:
			t.Fatalf("session %s got no broadcast", h.session.SID)
		}
	}
}
