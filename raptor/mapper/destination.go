package mapper

import (
	"time"

	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"git.fiblab.net/sim/transitpath/raptor/path"
	"git.fiblab.net/sim/transitpath/raptor/pareto"
)

// Observer receives the events of DestinationArrivalPaths that the pareto set
// does not see.
type Observer interface {
	RejectedByTimeLimit(dest arrival.DestinationArrival)
	Mapped(p *path.Path, elapsed time.Duration)
}

type Options struct {
	Comparator path.ComparatorOptions
	// 反向搜索时ArrivalTime为出发时间，时间限制为最早出发时间
	ReverseSearch bool
	// model.TIME_NOT_SET表示不限制
	ArrivalTimeLimit int
	Listener         pareto.EventListener[*path.Path]
	Observer         Observer
}

func DefaultOptions() Options {
	return Options{
		Comparator:       path.ComparatorOptions{IncludeC1: true},
		ArrivalTimeLimit: model.TIME_NOT_SET,
	}
}

// DestinationArrivalPaths owns the pareto set of paths of one search. It is
// not safe for concurrent use; parallel branches each own one and merge with
// pareto.Merger.
type DestinationArrivalPaths struct {
	paths  *pareto.ParetoSet[*path.Path]
	mapper PathMapper
	opts   Options

	reachedCurrentRound bool
	rejectedByTimeLimit int
}

func NewDestinationArrivalPaths(mapper PathMapper, lifeCycle *LifeCycle, opts Options) *DestinationArrivalPaths {
	opts.Comparator.ReverseSearch = opts.ReverseSearch
	d := &DestinationArrivalPaths{
		paths:  path.NewParetoSet(opts.Comparator, opts.Listener),
		mapper: mapper,
		opts:   opts,
	}
	lifeCycle.OnPrepareForNextRound(func(int) { d.reachedCurrentRound = false })
	return d
}

// Add maps dest to a Path and offers it to the pareto set. Arrivals outside
// the time limit are rejected before mapping.
func (d *DestinationArrivalPaths) Add(dest arrival.DestinationArrival) bool {
	if d.exceedsTimeLimit(dest) {
		d.rejectedByTimeLimit++
		log.Debugf("rejected by time limit: %v", dest)
		if d.opts.Observer != nil {
			d.opts.Observer.RejectedByTimeLimit(dest)
		}
		return false
	}
	start := time.Now()
	p := d.mapper.MapToPath(dest)
	if d.opts.Observer != nil {
		d.opts.Observer.Mapped(p, time.Since(start))
	}
	if !d.paths.Add(p) {
		return false
	}
	d.reachedCurrentRound = true
	return true
}

func (d *DestinationArrivalPaths) exceedsTimeLimit(dest arrival.DestinationArrival) bool {
	limit := d.opts.ArrivalTimeLimit
	if limit == model.TIME_NOT_SET {
		return false
	}
	if d.opts.ReverseSearch {
		return dest.ArrivalTime < limit
	}
	return dest.ArrivalTime > limit
}

// ReachedCurrentRound reports whether a path was accepted since the last
// PrepareForNextRound.
func (d *DestinationArrivalPaths) ReachedCurrentRound() bool { return d.reachedCurrentRound }
func (d *DestinationArrivalPaths) RejectedByTimeLimit() int { return d.rejectedByTimeLimit }
func (d *DestinationArrivalPaths) IsEmpty() bool { return d.paths.IsEmpty() }
func (d *DestinationArrivalPaths) Size() int { return d.paths.Size() }

// ListPaths returns the current pareto optimal paths in insertion order.
func (d *DestinationArrivalPaths) ListPaths() []*path.Path {
	return d.paths.Elements()
}

func (d *DestinationArrivalPaths) Clear() {
	d.paths.Clear()
	d.reachedCurrentRound = false
	d.rejectedByTimeLimit = 0
}

func (d *DestinationArrivalPaths) String() string {
	return d.paths.String()
}
