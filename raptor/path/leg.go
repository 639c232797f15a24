package path

import "git.fiblab.net/sim/transitpath/raptor/model"

// Leg is one immutable part of a Path.
type Leg struct {
	kind     LegKind
	fromStop int
	toStop   int
	fromTime int
	toTime   int
	c1       int

	// ACCESS/EGRESS
	street model.AccessEgress
	// TRANSFER
	transfer model.Transfer
	// TRANSIT
	trip          model.TripSchedule
	boardStopPos  int
	alightStopPos int
	// 本段下车后到下一乘车段的换乘约束
	constraint *model.ConstrainedTransfer
}

func (l Leg) Kind() LegKind { return l.kind }
func (l Leg) IsAccess() bool { return l.kind == ACCESS }
func (l Leg) IsTransit() bool { return l.kind == TRANSIT }
func (l Leg) IsTransfer() bool { return l.kind == TRANSFER }
func (l Leg) IsEgress() bool { return l.kind == EGRESS }

// 接驳段为NO_STOP
func (l Leg) FromStop() int { return l.fromStop }

// 离站段为NO_STOP
func (l Leg) ToStop() int { return l.toStop }

func (l Leg) FromTime() int { return l.fromTime }
func (l Leg) ToTime() int { return l.toTime }
func (l Leg) DurationInSeconds() int { return l.toTime - l.fromTime }
func (l Leg) C1() int { return l.c1 }

// Access/egress street path, nil for other kinds.
func (l Leg) Street() model.AccessEgress { return l.street }

// Transfer, nil for other kinds.
func (l Leg) Transfer() model.Transfer { return l.transfer }

// Trip, nil for non-transit legs.
func (l Leg) Trip() model.TripSchedule { return l.trip }
func (l Leg) BoardStopPos() int { return l.boardStopPos }
func (l Leg) AlightStopPos() int { return l.alightStopPos }

// ConstrainedTransferAfterLeg is the constraint between this transit leg and
// the next one, nil when there is none.
func (l Leg) ConstrainedTransferAfterLeg() *model.ConstrainedTransfer { return l.constraint }

// 乘车次数：乘车段为1，接驳/离站段为其中包含的乘车次数
func (l Leg) NumberOfRides() int {
	switch l.kind {
	case TRANSIT:
		return 1
	case ACCESS, EGRESS:
		return l.street.NumberOfRides()
	default:
		return 0
	}
}

func (l Leg) equal(o Leg) bool {
	return l.kind == o.kind &&
		l.fromStop == o.fromStop &&
		l.toStop == o.toStop &&
		l.fromTime == o.fromTime &&
		l.toTime == o.toTime &&
		l.c1 == o.c1 &&
		sameStreet(l.street, o.street) &&
		sameTransfer(l.transfer, o.transfer) &&
		sameTrip(l.trip, o.trip) &&
		l.boardStopPos == o.boardStopPos &&
		l.alightStopPos == o.alightStopPos &&
		l.constraint.TransferConstraint() == o.constraint.TransferConstraint()
}

// 以下按可观察的属性比较，调用方的实现类型不必可比较

func sameStreet(a, b model.AccessEgress) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Stop() == b.Stop() &&
		a.DurationInSeconds() == b.DurationInSeconds() &&
		a.C1() == b.C1() &&
		a.NumberOfRides() == b.NumberOfRides() &&
		a.HasOpeningHours() == b.HasOpeningHours()
}

func sameTransfer(a, b model.Transfer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Stop() == b.Stop() &&
		a.DurationInSeconds() == b.DurationInSeconds() &&
		a.C1() == b.C1()
}

// 乘车段的上下车位置与时刻已在Leg中比较
func sameTrip(a, b model.TripSchedule) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ap, bp := a.Pattern(), b.Pattern()
	return ap.PatternIndex() == bp.PatternIndex() &&
		ap.RouteID() == bp.RouteID() &&
		a.TransitReluctanceFactorIndex() == b.TransitReluctanceFactorIndex()
}
