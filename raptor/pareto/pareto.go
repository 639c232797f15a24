package pareto

import (
	"fmt"
	"strings"
)

// Comparator reports whether l is better than r on at least one criterion.
// l dominates r iff better(l, r) && !better(r, l).
type Comparator[T any] func(l, r T) bool

type Option[T any] func(*ParetoSet[T])

// WithEquality keeps equivalent elements (neither better on any criterion)
// unless eq reports them equal. An element equal to a member is always
// rejected.
func WithEquality[T any](eq func(a, b T) bool) Option[T] {
	return func(s *ParetoSet[T]) {
		s.equal = eq
	}
}

func WithListener[T any](l EventListener[T]) Option[T] {
	return func(s *ParetoSet[T]) {
		s.listener = l
	}
}

// ParetoSet is the set of non-dominated elements under a Comparator. Insertion
// order of surviving elements is preserved. Not safe for concurrent use.
type ParetoSet[T any] struct {
	elements []T
	better   Comparator[T]
	equal    func(a, b T) bool
	listener EventListener[T]
}

func NewParetoSet[T any](better Comparator[T], opts ...Option[T]) *ParetoSet[T] {
	s := &ParetoSet[T]{better: better}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// 比较结果
type dominance uint8

const (
	// v支配it
	dominates dominance = iota
	// it支配v
	dominated
	// 互不支配
	mutual
	// 等价（任一指标都不更优，或与已有元素相同）
	equivalent
)

func (s *ParetoSet[T]) compare(v, it T) dominance {
	if s.equal != nil && s.equal(v, it) {
		return equivalent
	}
	left := s.better(v, it)
	right := s.better(it, v)
	switch {
	case left && !right:
		return dominates
	case right && !left:
		return dominated
	case left || s.equal != nil:
		return mutual
	default:
		return equivalent
	}
}

// Add inserts v unless an existing element dominates or equals it. Elements
// dominated by v are dropped. Returns whether v was accepted.
func (s *ParetoSet[T]) Add(v T) bool {
	if len(s.elements) == 0 {
		s.accept(v)
		return true
	}
	equivalentIndex := -1
	for i, it := range s.elements {
		switch s.compare(v, it) {
		case dominates:
			s.dropDominatedFrom(v, i)
			return true
		case dominated:
			s.reject(v, it)
			return false
		case equivalent:
			if equivalentIndex < 0 {
				equivalentIndex = i
			}
		}
	}
	if equivalentIndex >= 0 {
		s.reject(v, s.elements[equivalentIndex])
		return false
	}
	s.accept(v)
	return true
}

// Qualify reports whether Add(v) would accept v, without changing the set.
func (s *ParetoSet[T]) Qualify(v T) bool {
	hasEquivalent := false
	for _, it := range s.elements {
		switch s.compare(v, it) {
		case dominates:
			return true
		case dominated:
			return false
		case equivalent:
			hasEquivalent = true
		}
	}
	return !hasEquivalent
}

// 从下标i开始删除被v支配的元素，其余元素保持原有顺序，最后追加v
func (s *ParetoSet[T]) dropDominatedFrom(v T, i int) {
	n := len(s.elements)
	kept := s.elements[:i]
	for _, it := range s.elements[i:] {
		if s.compare(v, it) == dominates {
			if s.listener != nil {
				s.listener.Dropped(it, v)
			}
		} else {
			kept = append(kept, it)
		}
	}
	s.elements = append(kept, v)
	clear(s.elements[len(s.elements):n])
	if s.listener != nil {
		s.listener.Accepted(v)
	}
}

func (s *ParetoSet[T]) accept(v T) {
	s.elements = append(s.elements, v)
	if s.listener != nil {
		s.listener.Accepted(v)
	}
}

func (s *ParetoSet[T]) reject(v, by T) {
	if s.listener != nil {
		s.listener.Rejected(v, by)
	}
}

func (s *ParetoSet[T]) Clear() {
	clear(s.elements)
	s.elements = s.elements[:0]
}

func (s *ParetoSet[T]) Size() int {
	return len(s.elements)
}

func (s *ParetoSet[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

func (s *ParetoSet[T]) Get(i int) T {
	return s.elements[i]
}

// Elements returns a copy of the current elements in insertion order.
func (s *ParetoSet[T]) Elements() []T {
	return append([]T(nil), s.elements...)
}

func (s *ParetoSet[T]) String() string {
	parts := make([]string, len(s.elements))
	for i, e := range s.elements {
		parts[i] = fmt.Sprint(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
