package path

import (
	"git.fiblab.net/sim/transitpath/raptor/model"
	"github.com/samber/lo"
)

// Path is an immutable itinerary: access, transit and transfer legs, egress.
type Path struct {
	iterationDepartureTime int
	startTime              int
	endTime                int
	numberOfTransfers      int
	c1                     int
	c2                     int
	legs                   []Leg
}

func newPath(iterationDepartureTime int, legs []Leg, c2 int) *Path {
	access, egress := legs[0], legs[len(legs)-1]
	nRides := lo.SumBy(legs, func(l Leg) int { return l.NumberOfRides() })
	return &Path{
		iterationDepartureTime: iterationDepartureTime,
		startTime:              access.fromTime,
		endTime:                egress.toTime,
		// 第一次上车不算换乘
		numberOfTransfers: nRides - 1,
		c1:                lo.SumBy(legs, func(l Leg) int { return l.c1 }),
		c2:                c2,
		legs:              legs,
	}
}

// 搜索迭代的出发时间
func (p *Path) IterationDepartureTime() int { return p.iterationDepartureTime }
func (p *Path) StartTime() int { return p.startTime }
func (p *Path) EndTime() int { return p.endTime }
func (p *Path) DurationInSeconds() int { return p.endTime - p.startTime }
func (p *Path) NumberOfTransfers() int { return p.numberOfTransfers }

// C1 is the generalized cost in raptor cost units.
func (p *Path) C1() int { return p.c1 }

// C2 is the secondary ranking value, model.NOT_SET when unused.
func (p *Path) C2() int { return p.c2 }
func (p *Path) HasC2() bool { return p.c2 != model.NOT_SET }

// Legs returns a copy of the legs in travel order.
func (p *Path) Legs() []Leg { return append([]Leg(nil), p.legs...) }
func (p *Path) NumberOfLegs() int { return len(p.legs) }
func (p *Path) Leg(i int) Leg { return p.legs[i] }
func (p *Path) AccessLeg() Leg { return p.legs[0] }
func (p *Path) EgressLeg() Leg { return p.legs[len(p.legs)-1] }

func (p *Path) TransitLegs() []Leg {
	return lo.Filter(p.legs, func(l Leg, _ int) bool { return l.IsTransit() })
}

// 所有乘车段的车次
func (p *Path) Trips() []model.TripSchedule {
	return lo.FilterMap(p.legs, func(l Leg, _ int) (model.TripSchedule, bool) { return l.trip, l.IsTransit() })
}

// Equal reports whether a and b describe the same itinerary with the same
// timing and cost.
func Equal(a, b *Path) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.iterationDepartureTime != b.iterationDepartureTime ||
		a.startTime != b.startTime ||
		a.endTime != b.endTime ||
		a.numberOfTransfers != b.numberOfTransfers ||
		a.c1 != b.c1 ||
		a.c2 != b.c2 ||
		len(a.legs) != len(b.legs) {
		return false
	}
	for i := range a.legs {
		if !a.legs[i].equal(b.legs[i]) {
			return false
		}
	}
	return true
}
