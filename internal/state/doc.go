// Package state provides the store that owns the catalog state for the
// bookshelf application.
//
// # Overview
//
// The Store is the single place catalog state changes. The presentation layer
// and effects never write state themselves; they dispatch catalog actions and
// the Store runs them through the reducer one at a time.
//
// # Architecture
//
//	Dispatch(action) ──> queue ──> drain loop (one goroutine at a time)
//	                                 │
//	                                 ├─> guard()            DispatchIf only
//	                                 ├─> reduce(current, a)  under write lock
//	                                 ├─> subscribers(next)   if pointer changed
//	                                 └─> effects.Handle(a)   may Dispatch again
//
// Whichever goroutine finds the queue idle becomes the drainer and keeps
// applying actions until the queue is empty. Other callers just append and
// return. Re-entrant dispatches from subscribers or effects are appended to
// the same queue, so two reducer runs never interleave and no action is
// applied out of order.
//
// # Guards
//
// DispatchIf attaches a predicate that is checked when the action reaches the
// front of the queue. Because the check happens inside the drain loop, nothing
// else can be applied between the guard passing and the reducer running. The
// loader uses this to drop results from superseded requests.
//
// # Reading State
//
//   - State(): the current *catalog.State, shared and read-only
//   - Snapshot(): a deep copy for callers that want to mutate
//   - Subscribe(fn): push notification on every change
//   - Watch(store, selector, equal, fn): push notification for one view
//
// # Concurrency Model
//
// The current pointer sits behind a sync.RWMutex so State() can be called
// from any goroutine. The queue and subscriber list each have their own mutex
// and neither is held while user callbacks run.
//
// # Usage Example
//
//	store := state.NewStore(
//		state.WithEffects(state.LogEffect(logger), loader.New(loader.SeedFetcher, time.Second)),
//	)
//	unsubscribe := store.Subscribe(func(s *catalog.State) {
//		render(selectors.Books.Select(s))
//	})
//	defer unsubscribe()
//
//	store.Dispatch(catalog.LoadRequested{})
//
// # Testing Considerations
//
// NewStore needs no arguments. Dispatch from the test goroutine is applied
// before it returns, which keeps synchronous tests simple; effects that work
// in the background need an explicit wait.
package state
