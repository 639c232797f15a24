package model

// CostCalculator computes the generalized cost (C1) of travel events in raptor
// cost units (centi-seconds). Implementations are immutable and safe for
// concurrent use.
type CostCalculator interface {
	// 上车代价：等待 + 上车/换乘惩罚 + 站点附加代价，受换乘约束影响
	BoardingCost(firstBoarding bool, prevArrivalTime, boardStop, boardTime int, trip TripSchedule, constraint ConstraintKind) int
	// 仅用于同一pattern内车次间的相对比较
	OnTripRelativeRidingCost(boardTime int, trip TripSchedule) int
	TransitArrivalCost(boardCost, alightSlack, transitTime int, trip TripSchedule, toStop int) int
	WaitCost(waitTimeInSeconds int) int
	// 剩余代价的可采纳下界
	CalculateRemainingMinCost(minTravelTime, minNumTransfers, fromStop int) int
	CostEgress(egress AccessEgress) int
}
