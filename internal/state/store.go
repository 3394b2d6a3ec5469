package state

import (
	"sync"

	"github.com/five82/bookshelf/internal/catalog"
)

// Dispatcher accepts actions for the serial pipeline.
type Dispatcher interface {
	Dispatch(a catalog.Action)
	DispatchIf(guard func() bool, a catalog.Action)
}

// Effect reacts to applied actions, typically by starting asynchronous work
// that dispatches follow-up actions. Handle runs inside the serial pipeline
// and must not block.
type Effect interface {
	Handle(a catalog.Action, d Dispatcher)
}

// EffectFunc adapts a function to Effect.
type EffectFunc func(a catalog.Action, d Dispatcher)

// Handle implements Effect.
func (f EffectFunc) Handle(a catalog.Action, d Dispatcher) {
	f(a, d)
}

// Ensure Store implements Dispatcher at compile time.
var _ Dispatcher = (*Store)(nil)

type queued struct {
	action catalog.Action
	guard  func() bool
}

type subscriber struct {
	id int
	fn func(*catalog.State)
}

// Store owns the current catalog state and routes dispatched actions through
// the reducer one at a time.
type Store struct {
	reduce  catalog.Reducer
	effects []Effect

	mu      sync.RWMutex
	current *catalog.State

	queueMu  sync.Mutex
	queue    []queued
	draining bool

	subMu  sync.Mutex
	subs   []subscriber
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithInitial sets the starting state.
func WithInitial(s *catalog.State) Option {
	return func(st *Store) {
		if s != nil {
			st.current = s
		}
	}
}

// WithReducer replaces catalog.Reduce.
func WithReducer(r catalog.Reducer) Option {
	return func(st *Store) {
		if r != nil {
			st.reduce = r
		}
	}
}

// WithEffects registers effects in the order they should run.
func WithEffects(effects ...Effect) Option {
	return func(st *Store) {
		for _, e := range effects {
			if e != nil {
				st.effects = append(st.effects, e)
			}
		}
	}
}

// NewStore builds a Store starting from catalog.Initial().
func NewStore(opts ...Option) *Store {
	s := &Store{
		reduce:  catalog.Reduce,
		current: catalog.Initial(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state. The result must be treated as read-only.
func (s *Store) State() *catalog.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() catalog.State {
	return *s.State().Clone()
}

// Dispatch queues a for the reducer. If no other caller is draining the
// queue, Dispatch applies it (and anything queued meanwhile) before
// returning.
func (s *Store) Dispatch(a catalog.Action) {
	s.enqueue(queued{action: a})
}

// DispatchIf queues a with a guard evaluated when a reaches the front of the
// queue. The action is dropped if the guard returns false.
func (s *Store) DispatchIf(guard func() bool, a catalog.Action) {
	s.enqueue(queued{action: a, guard: guard})
}

// Subscribe registers fn for every state change and returns a function that
// removes it. Callbacks run on the dispatching goroutine and must not block.
func (s *Store) Subscribe(fn func(*catalog.State)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) enqueue(item queued) {
	if item.action == nil {
		return
	}

	s.queueMu.Lock()
	s.queue = append(s.queue, item)
	if s.draining {
		s.queueMu.Unlock()
		return
	}
	s.draining = true
	s.queueMu.Unlock()

	for {
		s.queueMu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.queueMu.Unlock()
			return
		}
		next := s.queue[0]
		s.queue[0] = queued{}
		s.queue = s.queue[1:]
		s.queueMu.Unlock()

		s.apply(next)
	}
}

func (s *Store) apply(item queued) {
	if item.guard != nil && !item.guard() {
		return
	}

	s.mu.Lock()
	prev := s.current
	next := s.reduce(prev, item.action)
	if next == nil {
		next = prev
	}
	s.current = next
	s.mu.Unlock()

	if next != prev {
		s.notify(next)
	}
	for _, e := range s.effects {
		e.Handle(item.action, s)
	}
}

func (s *Store) notify(next *catalog.State) {
	s.subMu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
}
