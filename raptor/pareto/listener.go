package pareto

// EventListener is notified about every change (or refused change) of a
// ParetoSet.
type EventListener[T any] interface {
	Accepted(v T)
	// v被已有元素by支配或与其相同
	Rejected(v, by T)
	// 已有元素v被新元素by支配而删除
	Dropped(v, by T)
}

// LogListener writes pareto events at debug level.
type LogListener[T any] struct {
	Name string
}

func (l LogListener[T]) Accepted(v T) {
	log.Debugf("[%s] accepted: %v", l.Name, v)
}

func (l LogListener[T]) Rejected(v, by T) {
	log.Debugf("[%s] rejected: %v, by: %v", l.Name, v, by)
}

func (l LogListener[T]) Dropped(v, by T) {
	log.Debugf("[%s] dropped: %v, by: %v", l.Name, v, by)
}

// Listeners fans events out to several listeners in order.
type Listeners[T any] []EventListener[T]

func (ls Listeners[T]) Accepted(v T) {
	for _, l := range ls {
		l.Accepted(v)
	}
}

func (ls Listeners[T]) Rejected(v, by T) {
	for _, l := range ls {
		l.Rejected(v, by)
	}
}

func (ls Listeners[T]) Dropped(v, by T) {
	for _, l := range ls {
		l.Dropped(v, by)
	}
}
