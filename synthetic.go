package main

import (
	"fmt"
	"math/rand"

	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/cost"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"github.com/samber/lo"
)

const (
	// 随机网络规模
	SYNTHETIC_STOPS     = 200
	SYNTHETIC_MAX_RIDES = 3
	WALK_RELUCTANCE     = 2.0
)

// 三分之一的车次无障碍状态未知
var ACCESSIBILITIES = []model.Accessibility{model.ACCESSIBLE, model.ACCESSIBLE, model.ACCESSIBILITY_UNKNOWN}

// 随机生成的一次出行（按出行顺序）
type ride struct {
	trip        *model.Schedule
	from, to    int
	board       int
	alight      int
	alightStopT int // 含下车slack的到站时间
}

type itinerary struct {
	accessStop  int
	accessDur   int
	rides       []ride
	transferDur []int // rides[i]与rides[i+1]之间的步行时间，0表示同站换乘
	egressDur   int
}

// Synthetic generates random but consistent arrival chains standing in for
// the round-based search output.
type Synthetic struct {
	rng   *rand.Rand
	slack *model.Slack
	trips int
}

func NewSynthetic(seed int64, slack *model.Slack) *Synthetic {
	return &Synthetic{rng: rand.New(rand.NewSource(seed)), slack: slack}
}

// Windows generates one Window per departure time with n destination arrivals
// each, ordered by round.
func (s *Synthetic) Windows(departureTimes []int, n int, reverse bool) []Window {
	return lo.Map(departureTimes, func(t int, _ int) Window {
		w := Window{IterationDepartureTime: t, Arena: arrival.NewArena(n * (2*SYNTHETIC_MAX_RIDES + 1))}
		its := lo.Times(n, func(int) *itinerary { return s.itinerary(t) })
		for rides := 1; rides <= SYNTHETIC_MAX_RIDES; rides++ {
			for _, it := range its {
				if len(it.rides) != rides {
					continue
				}
				if reverse {
					w.Destinations = append(w.Destinations, s.reverseChain(w.Arena, it))
				} else {
					w.Destinations = append(w.Destinations, s.forwardChain(w.Arena, it))
				}
			}
		}
		return w
	})
}

func (s *Synthetic) between(lower, upper int) int {
	return lower + s.rng.Intn(upper-lower+1)
}

func (s *Synthetic) itinerary(departureTime int) *itinerary {
	it := &itinerary{
		accessStop: s.rng.Intn(SYNTHETIC_STOPS),
		accessDur:  s.between(60, 900),
		egressDur:  s.between(60, 900),
	}
	stop := it.accessStop
	t := departureTime + it.accessDur
	n := s.between(1, SYNTHETIC_MAX_RIDES)
	for i := 0; i < n; i++ {
		if i > 0 {
			// 一半概率步行换乘到其他站
			walk := 0
			if s.rng.Intn(2) == 0 {
				walk = s.between(60, 600)
				stop = s.rng.Intn(SYNTHETIC_STOPS)
				t += walk
			}
			it.transferDur = append(it.transferDur, walk)
		}
		r := s.ride(stop, t)
		it.rides = append(it.rides, r)
		stop, t = r.to, r.alightStopT
	}
	return it
}

// 生成从stop出发、在t之后上车的车次；途经一个中间站
func (s *Synthetic) ride(stop, t int) ride {
	s.trips++
	to := s.rng.Intn(SYNTHETIC_STOPS)
	mid := s.rng.Intn(SYNTHETIC_STOPS)
	pattern := model.NewRoutePattern("BUS", fmt.Sprintf("R%d", s.rng.Intn(50)), stop, mid, to).
		WithIndex(s.trips, 0)
	board := t + s.slack.BoardSlack(0) + s.between(0, 900)
	midT := board + s.between(120, 900)
	alight := midT + s.between(120, 900)
	trip := model.NewSchedule(pattern, board, midT, alight).
		WithAccessibility(ACCESSIBILITIES[s.rng.Intn(len(ACCESSIBILITIES))])
	return ride{
		trip:        trip,
		from:        stop,
		to:          to,
		board:       board,
		alight:      alight,
		alightStopT: alight + s.slack.AlightSlack(0),
	}
}

func walkCost(d int) int {
	return cost.ToCost(WALK_RELUCTANCE * float64(d))
}

func (s *Synthetic) forwardChain(a *arrival.Arena, it *itinerary) arrival.DestinationArrival {
	i := a.Access(model.Walk(it.accessStop, it.accessDur, walkCost(it.accessDur)), it.rides[0].board-s.slack.BoardSlack(0), 0)
	for k, r := range it.rides {
		if k > 0 && it.transferDur[k-1] > 0 {
			d := it.transferDur[k-1]
			i = a.Transfer(i, model.NewTransfer(r.from, d, walkCost(d)), it.rides[k-1].alightStopT+d, 0)
		}
		i = a.Transit(i, r.trip, r.to, r.alight, 0)
	}
	last := it.rides[len(it.rides)-1]
	egress := model.Walk(last.to, it.egressDur, walkCost(it.egressDur))
	return arrival.NewDestinationArrival(a, i, egress, last.alightStopT+it.egressDur, 0).
		WithC2(s.rng.Intn(4))
}

// 反向搜索从终点出发，以离站段为接驳，以上车事件为到站
func (s *Synthetic) reverseChain(a *arrival.Arena, it *itinerary) arrival.DestinationArrival {
	last := it.rides[len(it.rides)-1]
	i := a.Access(model.Walk(last.to, it.egressDur, walkCost(it.egressDur)), last.alightStopT, 0)
	for k := len(it.rides) - 1; k >= 0; k-- {
		r := it.rides[k]
		i = a.Transit(i, r.trip, r.from, r.board, 0)
		if k > 0 && it.transferDur[k-1] > 0 {
			d := it.transferDur[k-1]
			prev := it.rides[k-1]
			i = a.Transfer(i, model.NewTransfer(prev.to, d, walkCost(d)), r.board-s.slack.BoardSlack(0)-d, 0)
		}
	}
	first := it.rides[0]
	access := model.Walk(it.accessStop, it.accessDur, walkCost(it.accessDur))
	return arrival.NewDestinationArrival(a, i, access, first.board-s.slack.BoardSlack(0)-it.accessDur, 0).
		WithC2(s.rng.Intn(4))
}
