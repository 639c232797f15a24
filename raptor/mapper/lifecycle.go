package mapper

// LifeCycle publishes search worker events to subscribers. Subscribers are
// called in subscription order.
type LifeCycle struct {
	setupIteration      []func(iterationDepartureTime int)
	prepareForNextRound []func(round int)
}

func NewLifeCycle() *LifeCycle {
	return &LifeCycle{}
}

func (l *LifeCycle) OnSetupIteration(f func(iterationDepartureTime int)) {
	l.setupIteration = append(l.setupIteration, f)
}

func (l *LifeCycle) OnPrepareForNextRound(f func(round int)) {
	l.prepareForNextRound = append(l.prepareForNextRound, f)
}

// SetupIteration starts a new search iteration (departure minute).
func (l *LifeCycle) SetupIteration(iterationDepartureTime int) {
	for _, f := range l.setupIteration {
		f(iterationDepartureTime)
	}
}

func (l *LifeCycle) PrepareForNextRound(round int) {
	for _, f := range l.prepareForNextRound {
		f(round)
	}
}
