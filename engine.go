package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"git.fiblab.net/sim/transitpath/metrics"
	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/cost"
	"git.fiblab.net/sim/transitpath/raptor/mapper"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"git.fiblab.net/sim/transitpath/raptor/pareto"
	"git.fiblab.net/sim/transitpath/raptor/path"
)

// Window is the search result of one departure time window: the arrival
// chains in an arena and the destination arrivals ordered by round.
type Window struct {
	IterationDepartureTime int
	Arena                  *arrival.Arena
	Destinations           []arrival.DestinationArrival
}

// Engine maps the destination arrivals of independent departure windows in
// parallel and merges them into one pareto set. It is safe for concurrent use.
type Engine struct {
	cfg       *Config
	pathCtx   path.Context
	collector *metrics.Collector
}

// NewEngine builds the cost calculator from cfg. constraints and collector
// may be nil.
func NewEngine(cfg *Config, constraints *model.TransferConstraintIndex, collector *metrics.Collector) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	calculator, err := cost.NewCalculator(cfg.Cost, cfg.StopSurchargeTable())
	if err != nil {
		return nil, fmt.Errorf("create cost calculator: %w", err)
	}
	slack := cfg.Slack
	e := &Engine{
		cfg:       cfg,
		pathCtx:   path.Context{Slack: &slack, Calculator: calculator},
		collector: collector,
	}
	if constraints != nil {
		e.pathCtx.Constraints = constraints
	}
	return e, nil
}

// Search returns the pareto set of all windows merged in window order, or the
// joined errors (context cancellation) of the failed windows.
func (e *Engine) Search(ctx context.Context, windows []Window) ([]*path.Path, error) {
	// 各窗口结果按下标存放，全部完成后按窗口顺序合并
	results := make([][]*path.Path, len(windows))
	errs := make([]error, len(windows))
	var wg sync.WaitGroup
	wg.Add(len(windows))
	for i, w := range windows {
		go func(i int, w Window) {
			defer wg.Done()
			results[i], errs[i] = e.searchWindow(ctx, w)
		}(i, w)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	merger := pareto.NewMerger(path.NewComparator(e.cfg.ComparatorOptions()), pareto.WithEquality(path.Equal))
	for _, paths := range results {
		merger.Merge(paths)
	}
	return merger.Elements(), nil
}

func (e *Engine) searchWindow(ctx context.Context, w Window) ([]*path.Path, error) {
	lifeCycle := mapper.NewLifeCycle()
	var m mapper.PathMapper
	if e.cfg.Search.ReverseSearch {
		m = mapper.NewReversePathMapper(w.Arena, e.pathCtx, lifeCycle)
	} else {
		m = mapper.NewForwardPathMapper(w.Arena, e.pathCtx, lifeCycle)
	}
	opts := e.cfg.MapperOptions()
	listeners := pareto.Listeners[*path.Path]{
		pareto.LogListener[*path.Path]{Name: model.TimeToStr(w.IterationDepartureTime)},
	}
	if e.collector != nil {
		listeners = append(listeners, e.collector)
		opts.Observer = e.collector
	}
	opts.Listener = listeners
	paths := mapper.NewDestinationArrivalPaths(m, lifeCycle, opts)

	lifeCycle.SetupIteration(w.IterationDepartureTime)
	round := -1
	for _, dest := range w.Destinations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if dest.Round != round {
			round = dest.Round
			lifeCycle.PrepareForNextRound(round)
		}
		paths.Add(dest)
	}
	log.Debugf("window %s: %d arrivals, %d paths, %d rejected by time limit",
		model.TimeToStr(w.IterationDepartureTime), len(w.Destinations), paths.Size(), paths.RejectedByTimeLimit())
	return paths.ListPaths(), nil
}
