package state

import (
	"sync"

	"github.com/five82/bookshelf/internal/catalog"
)

// Watch subscribes fn to one derived view of the store. fn runs once with the
// current value and afterwards only when equal reports a change.
func Watch[T any](s *Store, sel *catalog.Selector[T], equal func(a, b T) bool, fn func(T)) (unsubscribe func()) {
	var (
		mu   sync.Mutex
		last = sel.Select(s.State())
	)
	fn(last)

	return s.Subscribe(func(next *catalog.State) {
		v := sel.Select(next)

		mu.Lock()
		changed := !equal(last, v)
		if changed {
			last = v
		}
		mu.Unlock()

		if changed {
			fn(v)
		}
	})
}

// Equal is the equality for comparable views such as flags and counts.
func Equal[T comparable](a, b T) bool {
	return a == b
}
