package model

import "fmt"

// Transfer is a street connection between two stops. Stop is the target stop
// in the search direction.
type Transfer interface {
	Stop() int
	DurationInSeconds() int
	C1() int
}

type StreetTransfer struct {
	stop     int
	duration int
	c1       int
}

func NewTransfer(stop, durationInSeconds, c1 int) *StreetTransfer {
	return &StreetTransfer{stop: stop, duration: durationInSeconds, c1: c1}
}

func (t *StreetTransfer) Stop() int { return t.stop }
func (t *StreetTransfer) DurationInSeconds() int { return t.duration }
func (t *StreetTransfer) C1() int { return t.c1 }

func (t *StreetTransfer) String() string {
	return fmt.Sprintf("Walk %s ~ %d", DurationToStr(t.duration), t.stop)
}

// 换乘约束类型
type ConstraintKind uint8

const (
	// 普通换乘
	CONSTRAINT_REGULAR ConstraintKind = iota
	// 优先换乘（仅影响排序，代价按普通换乘计算）
	CONSTRAINT_PREFERRED
	// 保证换乘（前车等待后车）
	CONSTRAINT_GUARANTEED
	// 同车续乘（不下车）
	CONSTRAINT_STAY_SEATED
)

func (k ConstraintKind) String() string {
	switch k {
	case CONSTRAINT_PREFERRED:
		return "PREFERRED"
	case CONSTRAINT_GUARANTEED:
		return "GUARANTEED"
	case CONSTRAINT_STAY_SEATED:
		return "STAY_SEATED"
	default:
		return "REGULAR"
	}
}

// ConstrainedTransfer is a transfer between two specific trips with special
// rules attached.
type ConstrainedTransfer struct {
	Kind ConstraintKind
	// 优先级，数值越大越优先，仅用于排序
	Priority int
}

// nil表示无约束，按普通换乘处理
func (c *ConstrainedTransfer) TransferConstraint() ConstraintKind {
	if c == nil {
		return CONSTRAINT_REGULAR
	}
	return c.Kind
}

func (c *ConstrainedTransfer) IsRegularTransfer() bool {
	k := c.TransferConstraint()
	return k == CONSTRAINT_REGULAR || k == CONSTRAINT_PREFERRED
}

func (c *ConstrainedTransfer) String() string {
	if c == nil {
		return "REGULAR"
	}
	return fmt.Sprintf("%v(%d)", c.Kind, c.Priority)
}

// TransferConstraintLookup finds the constraint between alighting fromTrip at
// fromStopPos and boarding toTrip at toStopPos.
type TransferConstraintLookup interface {
	FindConstrainedTransfer(fromTrip TripSchedule, fromStopPos int, toTrip TripSchedule, toStopPos int) *ConstrainedTransfer
}

// 车次在某停靠位置的事件，按线路、模式下标与时刻区分车次，不依赖车次类型可比较
type tripEvent struct {
	pattern int
	route   string
	pos     int
	time    int
}

type constraintKey struct {
	from tripEvent
	to   tripEvent
}

func newConstraintKey(fromTrip TripSchedule, fromStopPos int, toTrip TripSchedule, toStopPos int) constraintKey {
	fp, tp := fromTrip.Pattern(), toTrip.Pattern()
	return constraintKey{
		from: tripEvent{fp.PatternIndex(), fp.RouteID(), fromStopPos, fromTrip.Arrival(fromStopPos)},
		to:   tripEvent{tp.PatternIndex(), tp.RouteID(), toStopPos, toTrip.Departure(toStopPos)},
	}
}

// TransferConstraintIndex is a map-backed TransferConstraintLookup keyed by
// the alighting and boarding events (pattern, route, stop position, time).
type TransferConstraintIndex struct {
	constraints map[constraintKey]*ConstrainedTransfer
}

func NewTransferConstraintIndex() *TransferConstraintIndex {
	return &TransferConstraintIndex{constraints: make(map[constraintKey]*ConstrainedTransfer)}
}

func (x *TransferConstraintIndex) Add(fromTrip TripSchedule, fromStopPos int, toTrip TripSchedule, toStopPos int, c *ConstrainedTransfer) {
	x.constraints[newConstraintKey(fromTrip, fromStopPos, toTrip, toStopPos)] = c
}

func (x *TransferConstraintIndex) Size() int {
	return len(x.constraints)
}

func (x *TransferConstraintIndex) FindConstrainedTransfer(fromTrip TripSchedule, fromStopPos int, toTrip TripSchedule, toStopPos int) *ConstrainedTransfer {
	if x == nil {
		return nil
	}
	return x.constraints[newConstraintKey(fromTrip, fromStopPos, toTrip, toStopPos)]
}
