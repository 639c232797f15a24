// Package testcase holds a small hand-checked itinerary shared by the path,
// mapper and driver tests.
//
// Walk 3m ~ A ~ BUS L11 10:04 10:35 ~ B ~ Walk 3m45s ~ C ~ BUS L21 11:00 11:23
// ~ D ~ BUS L31 11:40 11:52 ~ E ~ Walk 7m45s
package testcase

import (
	"git.fiblab.net/sim/transitpath/raptor/cost"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"git.fiblab.net/sim/transitpath/raptor/path"
)

const (
	STOP_A = 1
	STOP_B = 2
	STOP_C = 3
	STOP_D = 4
	STOP_E = 5

	BOARD_SLACK    = 45
	ALIGHT_SLACK   = 15
	TRANSFER_SLACK = 60

	BOARD_COST      = 60
	TRANSFER_COST   = 120
	WAIT_RELUCTANCE = 0.8
	WALK_RELUCTANCE = 2.0

	// 站点附加代价（raptor cost）
	STOP_COST_B = 3000
	STOP_COST_D = 6000

	ACCESS_DURATION   = 180
	TRANSFER_DURATION = 225
	EGRESS_DURATION   = 465

	C2 = 7

	TOTAL_C1 = 815400

	SUMMARY = "Walk 3m ~ A ~ BUS L11 10:04 10:35 ~ B ~ Walk 3m45s ~ C ~ BUS L21 11:00 11:23 ~ D ~ " +
		"BUS L31 11:40 11:52 ~ E ~ Walk 7m45s [10:00:15 12:00 1h59m45s Tₓ2 C₁8_154 C₂7]"
	DETAILED = "Walk 3m 10:00:15 10:03:15 C₁360 ~ A 45s ~ BUS L11 10:04 10:35 31m C₁1_998 ~ B 15s ~ " +
		"Walk 3m45s 10:35:15 10:39 C₁450 ~ C 21m ~ BUS L21 11:00 11:23 23m C₁2_640 ~ D 17m ~ " +
		"BUS L31 11:40 11:52 12m C₁1_776 ~ E 15s ~ Walk 7m45s 11:52:15 12:00 C₁930 " +
		"[10:00:15 12:00 1h59m45s Tₓ2 C₁8_154 C₂7]"
)

var ITERATION_START = model.Time("09:00")

// StopName prints stop 1 as "A", stop 2 as "B" and so on.
func StopName(stop int) string {
	return string(rune('A' + stop - 1))
}

func Slack() *model.Slack {
	return model.NewSlack(TRANSFER_SLACK, BOARD_SLACK, ALIGHT_SLACK)
}

func CostParams() cost.Params {
	p := cost.DefaultParams()
	p.BoardCost = BOARD_COST
	p.TransferCost = TRANSFER_COST
	p.WaitReluctance = WAIT_RELUCTANCE
	p.TransitReluctance = []float64{1.0}
	return p
}

func StopSurcharges() cost.StopSurcharges {
	s := make(cost.StopSurcharges, STOP_E+1)
	s[STOP_B] = STOP_COST_B
	s[STOP_D] = STOP_COST_D
	return s
}

func Calculator() *cost.Calculator {
	c, err := cost.NewCalculator(CostParams(), StopSurcharges())
	if err != nil {
		panic(err)
	}
	return c
}

// 步行代价
func WalkCost(durationInSeconds int) int {
	return cost.ToCost(WALK_RELUCTANCE * float64(durationInSeconds))
}

// BasicPath is the trips and street legs of the itinerary.
type BasicPath struct {
	Access *model.StreetAccess
	Trip1  *model.Schedule
	// 正向搜索中的换乘（终点C），反向搜索中的换乘（终点B）
	Transfer        *model.StreetTransfer
	ReverseTransfer *model.StreetTransfer
	Trip2           *model.Schedule
	Trip3           *model.Schedule
	Egress          *model.StreetAccess
}

func NewBasicPath() *BasicPath {
	l11 := model.NewRoutePattern("BUS", "L11", STOP_A, STOP_B)
	l21 := model.NewRoutePattern("BUS", "L21", STOP_C, STOP_D)
	l31 := model.NewRoutePattern("BUS", "L31", STOP_D, STOP_E)
	return &BasicPath{
		Access:          model.Walk(STOP_A, ACCESS_DURATION, WalkCost(ACCESS_DURATION)),
		Trip1:           model.NewSchedule(l11, model.Time("10:04"), model.Time("10:35")),
		Transfer:        model.NewTransfer(STOP_C, TRANSFER_DURATION, WalkCost(TRANSFER_DURATION)),
		ReverseTransfer: model.NewTransfer(STOP_B, TRANSFER_DURATION, WalkCost(TRANSFER_DURATION)),
		Trip2:           model.NewSchedule(l21, model.Time("11:00"), model.Time("11:23")),
		// 到达时间与出发时间不同，检查是否取对了时刻
		Trip3: model.NewSchedule(l31, 0, 0).
			WithArrivals(model.Time("00:00"), model.Time("11:52")).
			WithDepartures(model.Time("11:40"), model.Time("23:59")),
		Egress: model.Walk(STOP_E, EGRESS_DURATION, WalkCost(EGRESS_DURATION)),
	}
}

func (b *BasicPath) Context() path.Context {
	return path.Context{Slack: Slack(), Calculator: Calculator()}
}
