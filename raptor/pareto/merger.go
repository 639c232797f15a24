package pareto

import "github.com/puzpuzpuz/xsync/v3"

// Merger merges the results of independently searched branches (e.g.
// departure-time windows) into one pareto set. Merges are serialized, reads
// run concurrently.
type Merger[T any] struct {
	mu  *xsync.RBMutex
	set *ParetoSet[T]
}

func NewMerger[T any](better Comparator[T], opts ...Option[T]) *Merger[T] {
	return &Merger[T]{
		mu:  xsync.NewRBMutex(),
		set: NewParetoSet(better, opts...),
	}
}

// Merge adds values in order and returns how many were accepted.
func (m *Merger[T]) Merge(values []T) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	accepted := 0
	for _, v := range values {
		if m.set.Add(v) {
			accepted++
		}
	}
	return accepted
}

func (m *Merger[T]) Elements() []T {
	token := m.mu.RLock()
	defer m.mu.RUnlock(token)
	return m.set.Elements()
}

func (m *Merger[T]) Size() int {
	token := m.mu.RLock()
	defer m.mu.RUnlock(token)
	return m.set.Size()
}
