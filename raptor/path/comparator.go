package path

import (
	"git.fiblab.net/sim/transitpath/raptor/cost"
	"git.fiblab.net/sim/transitpath/raptor/pareto"
)

// ComparatorOptions selects the criteria of a path pareto comparator. The
// arrival (or departure) time, the number of transfers and the duration are
// always compared.
type ComparatorOptions struct {
	// 比较出发时间（越晚越好）而不是到达时间
	PreferLateArrival bool
	// 比较迭代出发时间，正向搜索越晚越好，反向搜索越早越好
	IncludeIterationDepartureTime bool
	ReverseSearch                 bool
	IncludeC1                     bool
	// 为nil时不放宽
	Relax *cost.RelaxFunction
	// C2支配函数，为nil时不比较C2
	C2Dominance func(l, r int) bool
}

type criterion func(l, r *Path) bool

func betterEndTime(l, r *Path) bool { return l.endTime < r.endTime }

func betterStartTime(l, r *Path) bool { return l.startTime > r.startTime }

func fewerTransfers(l, r *Path) bool { return l.numberOfTransfers < r.numberOfTransfers }

func shorterDuration(l, r *Path) bool { return l.DurationInSeconds() < r.DurationInSeconds() }

func laterIterationDeparture(l, r *Path) bool {
	return l.iterationDepartureTime > r.iterationDepartureTime
}

func earlierIterationDeparture(l, r *Path) bool {
	return l.iterationDepartureTime < r.iterationDepartureTime
}

func lowerC1(l, r *Path) bool { return l.c1 < r.c1 }

func relaxedC1(relax cost.RelaxFunction) criterion {
	return func(l, r *Path) bool { return l.c1 < relax.Relax(r.c1) }
}

// NewComparator returns "l is better than r on at least one criterion" for
// the selected options.
func NewComparator(opts ComparatorOptions) pareto.Comparator[*Path] {
	criteria := make([]criterion, 0, MAX_CRITERIA)
	if opts.PreferLateArrival {
		criteria = append(criteria, betterStartTime)
	} else {
		criteria = append(criteria, betterEndTime)
	}
	criteria = append(criteria, fewerTransfers, shorterDuration)
	if opts.IncludeIterationDepartureTime {
		if opts.ReverseSearch {
			criteria = append(criteria, earlierIterationDeparture)
		} else {
			criteria = append(criteria, laterIterationDeparture)
		}
	}
	if c := costCriterion(opts); c != nil {
		criteria = append(criteria, c)
	}
	return func(l, r *Path) bool {
		for _, c := range criteria {
			if c(l, r) {
				return true
			}
		}
		return false
	}
}

// C1与C2合并为一个指标
func costCriterion(opts ComparatorOptions) criterion {
	var c1 criterion
	if opts.IncludeC1 {
		c1 = lowerC1
		if opts.Relax != nil && !opts.Relax.IsNormal() {
			c1 = relaxedC1(*opts.Relax)
		}
	}
	c2 := opts.C2Dominance
	switch {
	case c1 != nil && c2 != nil:
		return func(l, r *Path) bool { return c1(l, r) || c2(l.c2, r.c2) }
	case c1 != nil:
		return c1
	case c2 != nil:
		return func(l, r *Path) bool { return c2(l.c2, r.c2) }
	default:
		return nil
	}
}

// NewParetoSet creates a path pareto set. Identical paths are only kept once,
// equivalent but different paths are all kept.
func NewParetoSet(opts ComparatorOptions, listener pareto.EventListener[*Path]) *pareto.ParetoSet[*Path] {
	setOpts := []pareto.Option[*Path]{pareto.WithEquality(Equal)}
	if listener != nil {
		setOpts = append(setOpts, pareto.WithListener(listener))
	}
	return pareto.NewParetoSet(NewComparator(opts), setOpts...)
}
