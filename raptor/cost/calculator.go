package cost

import (
	"fmt"

	"git.fiblab.net/sim/transitpath/raptor/model"
)

// BoardingModifier returns an extra boarding cost for a trip.
type BoardingModifier func(trip model.TripSchedule) int

// ArrivalModifier returns an extra cost for riding a trip for transitTime
// seconds.
type ArrivalModifier func(trip model.TripSchedule, transitTime int) int

// Calculator is the generalized cost calculator. All values are in raptor
// cost. It is immutable after NewCalculator and safe for concurrent use.
type Calculator struct {
	boardCostOnly        int
	transferCostOnly     int
	boardAndTransferCost int
	waitFactor           int
	transitFactors       FactorStrategy
	stopSurcharges       StopSurcharges

	boardingModifiers []BoardingModifier
	arrivalModifiers  []ArrivalModifier
}

var _ model.CostCalculator = (*Calculator)(nil)

// NewCalculator builds the base calculator and appends the accessibility and
// route-preference modifiers when the params ask for them. stopSurcharges may
// be nil.
func NewCalculator(params Params, stopSurcharges StopSurcharges) (*Calculator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("new calculator: %w", err)
	}
	c := &Calculator{
		boardCostOnly:    ToCost(float64(params.BoardCost)),
		transferCostOnly: ToCost(float64(params.TransferCost)),
		waitFactor:       ToCost(params.WaitReluctance),
		transitFactors:   NewFactorStrategy(params.TransitReluctance),
		stopSurcharges:   stopSurcharges,
	}
	c.boardAndTransferCost = c.boardCostOnly + c.transferCostOnly
	if params.Accessibility.Enabled {
		c.boardingModifiers = append(c.boardingModifiers, AccessibilityModifier(params.Accessibility))
	}
	if len(params.UnpreferredRoutes) > 0 {
		c.arrivalModifiers = append(c.arrivalModifiers, RoutePreferenceModifier(params.UnpreferredRoutes, params.UnpreferredCost))
	}
	log.Debugf("calculator: board=%d transfer=%d wait=%d boarding modifiers=%d arrival modifiers=%d",
		c.boardCostOnly, c.transferCostOnly, c.waitFactor, len(c.boardingModifiers), len(c.arrivalModifiers))
	return c, nil
}

func (c *Calculator) BoardingCost(firstBoarding bool, prevArrivalTime, boardStop, boardTime int, trip model.TripSchedule, constraint model.ConstraintKind) int {
	var cost int
	switch constraint {
	case model.CONSTRAINT_STAY_SEATED:
		// 不下车，等待时间按乘车计
		cost = c.transitFactors.Factor(trip.TransitReluctanceFactorIndex()) * (boardTime - prevArrivalTime)
	case model.CONSTRAINT_GUARANTEED:
		cost = c.waitFactor * (boardTime - prevArrivalTime)
	default:
		cost = c.regularBoardingCost(firstBoarding, prevArrivalTime, boardStop, boardTime)
	}
	for _, m := range c.boardingModifiers {
		cost += m(trip)
	}
	return cost
}

func (c *Calculator) regularBoardingCost(firstBoarding bool, prevArrivalTime, boardStop, boardTime int) int {
	cost := c.waitFactor * (boardTime - prevArrivalTime)
	if firstBoarding {
		cost += c.boardCostOnly
	} else {
		cost += c.boardAndTransferCost
		// 换乘上车才计站点附加代价
		cost += c.stopSurcharges.At(boardStop)
	}
	return cost
}

func (c *Calculator) OnTripRelativeRidingCost(boardTime int, trip model.TripSchedule) int {
	return -boardTime * c.transitFactors.Factor(trip.TransitReluctanceFactorIndex())
}

func (c *Calculator) TransitArrivalCost(boardCost, alightSlack, transitTime int, trip model.TripSchedule, toStop int) int {
	cost := boardCost +
		c.transitFactors.Factor(trip.TransitReluctanceFactorIndex())*transitTime +
		c.waitFactor*alightSlack
	// 预先加上下车站点附加代价，若为最后一次下车则在CostEgress中扣除
	cost += c.stopSurcharges.At(toStop)
	for _, m := range c.arrivalModifiers {
		cost += m(trip, transitTime)
	}
	return cost
}

func (c *Calculator) WaitCost(waitTimeInSeconds int) int {
	return c.waitFactor * waitTimeInSeconds
}

func (c *Calculator) CalculateRemainingMinCost(minTravelTime, minNumTransfers, fromStop int) int {
	if minNumTransfers > -1 {
		return c.boardCostOnly +
			c.boardAndTransferCost*minNumTransfers +
			c.transitFactors.MinFactor()*minTravelTime
	}
	// 已到达目的地，扣除预加的站点附加代价
	return c.transitFactors.MinFactor()*minTravelTime - c.stopSurcharges.At(fromStop)
}

func (c *Calculator) CostEgress(egress model.AccessEgress) int {
	if egress.HasRides() {
		return egress.C1() + c.transferCostOnly
	}
	return egress.C1() - c.stopSurcharges.At(egress.Stop())
}
