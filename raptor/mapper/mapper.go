package mapper

import (
	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/path"
)

// PathMapper turns a destination arrival and its arrival chain into a Path.
type PathMapper interface {
	MapToPath(dest arrival.DestinationArrival) *path.Path
}

// ForwardPathMapper maps arrivals of a forward (depart-after) search. It walks
// the chain backwards from the destination and prepends legs.
type ForwardPathMapper struct {
	arena                  *arrival.Arena
	ctx                    path.Context
	search                 TripTimeSearch
	iterationDepartureTime int
}

func NewForwardPathMapper(arena *arrival.Arena, ctx path.Context, lifeCycle *LifeCycle) *ForwardPathMapper {
	m := &ForwardPathMapper{arena: arena, ctx: ctx, search: ForwardTripTimeSearch}
	lifeCycle.OnSetupIteration(func(t int) { m.iterationDepartureTime = t })
	return m
}

func (m *ForwardPathMapper) MapToPath(dest arrival.DestinationArrival) *path.Path {
	b := path.NewTailPathBuilder(m.ctx, m.iterationDepartureTime).
		Egress(dest.Egress).
		C2(dest.C2)
	for i := dest.Prev; ; {
		r := m.arena.Get(i)
		switch r.Kind {
		case arrival.TRANSIT:
			b.Transit(r.Trip, m.search(r, m.arena.Get(r.Prev).Stop))
		case arrival.TRANSFER:
			b.Transfer(r.Transfer, r.Stop)
		case arrival.ACCESS:
			b.Access(r.Access)
			return b.Build()
		default:
			log.Panicf("unknown arrival kind: %v", r.Kind)
		}
		i = r.Prev
	}
}

// ReversePathMapper maps arrivals of a reverse (arrive-by) search. The chain
// starts at the origin side, so legs are appended in travel order; the
// search's egress is the itinerary's access and the chain's access is the
// itinerary's egress.
type ReversePathMapper struct {
	arena                  *arrival.Arena
	ctx                    path.Context
	search                 TripTimeSearch
	iterationDepartureTime int
}

func NewReversePathMapper(arena *arrival.Arena, ctx path.Context, lifeCycle *LifeCycle) *ReversePathMapper {
	m := &ReversePathMapper{arena: arena, ctx: ctx, search: ReverseTripTimeSearch}
	lifeCycle.OnSetupIteration(func(t int) { m.iterationDepartureTime = t })
	return m
}

func (m *ReversePathMapper) MapToPath(dest arrival.DestinationArrival) *path.Path {
	b := path.NewHeadPathBuilder(m.ctx, m.iterationDepartureTime).
		Access(dest.Egress).
		C2(dest.C2)
	for i := dest.Prev; ; {
		r := m.arena.Get(i)
		switch r.Kind {
		case arrival.TRANSIT:
			b.Transit(r.Trip, m.search(r, m.arena.Get(r.Prev).Stop))
		case arrival.TRANSFER:
			b.Transfer(r.Transfer, m.arena.Get(r.Prev).Stop)
		case arrival.ACCESS:
			b.Egress(r.Access)
			return b.Build()
		default:
			log.Panicf("unknown arrival kind: %v", r.Kind)
		}
		i = r.Prev
	}
}
