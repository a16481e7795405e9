package view

import (
	"sync"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	deltaCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storyview_deltas_total",
		Help: "Dispatched deltas by kind.",
	}, []string{"kind"})
	deltaNoopCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storyview_delta_noops_total",
		Help: "Dispatched deltas discarded by the reducer.",
	})
)

func init() {
	prometheus.MustRegister(deltaCount, deltaNoopCount)
}

// Store owns the view-model state. All writes go through Dispatch, one
// delta at a time; readers get immutable snapshots.
type Store struct {
	sync.RWMutex
	state *State

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

func NewStore() *Store {
	return &Store{
		state: &State{},
		subs:  make(map[int]chan struct{}),
	}
}

// State returns the current snapshot. The returned value must be treated as
// read-only; the store never mutates a published State.
func (s *Store) State() *State {
	s.RLock()
	st := s.state
	s.RUnlock()
	return st
}

// Dispatch applies one delta atomically. Returns whether the state changed;
// subscribers are signalled only on change.
func (s *Store) Dispatch(d Delta) bool {
	s.Lock()
	next := Reduce(s.state, d)
	changed := next != s.state
	s.state = next
	s.Unlock()

	deltaCount.WithLabelValues(d.Kind()).Inc()
	if !changed {
		deltaNoopCount.Inc()
		glog.V(7).Infof("store: delta %s discarded", d.Kind())
		return false
	}

	glog.V(5).Infof("store: delta %s applied", d.Kind())
	s.Notify()
	return true
}

// Notify wakes subscribers without a state change. Effects use this where
// the only outcome is that watchers should re-evaluate (e.g. a download was
// enqueued on a collaborator).
func (s *Store) Notify() {
	s.subMu.Lock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default: // subscriber already has a pending signal
		}
	}
	s.subMu.Unlock()
}

// Subscribe registers a change signal. The channel coalesces: a slow
// subscriber sees at least one signal after any burst of changes. The
// returned func unregisters.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	return ch, func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}
