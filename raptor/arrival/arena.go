package arrival

import (
	"fmt"

	"git.fiblab.net/sim/transitpath/raptor/model"
)

// 到站记录类型
type Kind uint8

const (
	ACCESS Kind = iota
	TRANSIT
	TRANSFER
)

func (k Kind) String() string {
	switch k {
	case ACCESS:
		return "Access"
	case TRANSIT:
		return "Transit"
	case TRANSFER:
		return "Transfer"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// 空下标
const NONE int32 = -1

// Record is "how this stop was reached" in one search round. Records are
// linked backwards through Prev.
type Record struct {
	Kind        Kind
	Prev        int32
	Stop        int
	ArrivalTime int
	C1          int
	Round       int

	// ACCESS
	Access model.AccessEgress
	// TRANSIT
	Trip model.TripSchedule
	// TRANSFER
	Transfer model.Transfer
}

func (r Record) String() string {
	switch r.Kind {
	case TRANSIT:
		return fmt.Sprintf("%v { round: %d, stop: %d, trip: %s, arrival: %s }", r.Kind, r.Round, r.Stop, r.Trip.Pattern().DebugInfo(), model.TimeToStr(r.ArrivalTime))
	default:
		return fmt.Sprintf("%v { round: %d, stop: %d, arrival: %s }", r.Kind, r.Round, r.Stop, model.TimeToStr(r.ArrivalTime))
	}
}

// Arena stores the arrival records of one search, addressed by index.
type Arena struct {
	records []Record
}

func NewArena(capacity int) *Arena {
	return &Arena{records: make([]Record, 0, capacity)}
}

func (a *Arena) add(r Record) int32 {
	a.records = append(a.records, r)
	return int32(len(a.records) - 1)
}

// Access adds the arrival at access.Stop(). Round is the number of rides in
// the access.
func (a *Arena) Access(access model.AccessEgress, arrivalTime, c1 int) int32 {
	return a.add(Record{
		Kind:        ACCESS,
		Prev:        NONE,
		Stop:        access.Stop(),
		ArrivalTime: arrivalTime,
		C1:          c1,
		Round:       access.NumberOfRides(),
		Access:      access,
	})
}

func (a *Arena) Transit(prev int32, trip model.TripSchedule, stop, arrivalTime, c1 int) int32 {
	return a.add(Record{
		Kind:        TRANSIT,
		Prev:        prev,
		Stop:        stop,
		ArrivalTime: arrivalTime,
		C1:          c1,
		Round:       a.records[prev].Round + 1,
		Trip:        trip,
	})
}

func (a *Arena) Transfer(prev int32, transfer model.Transfer, arrivalTime, c1 int) int32 {
	return a.add(Record{
		Kind:        TRANSFER,
		Prev:        prev,
		Stop:        transfer.Stop(),
		ArrivalTime: arrivalTime,
		C1:          c1,
		Round:       a.records[prev].Round,
		Transfer:    transfer,
	})
}

func (a *Arena) Get(i int32) Record {
	return a.records[i]
}

func (a *Arena) Size() int {
	return len(a.records)
}

// Reset drops all records and keeps the capacity for the next search.
func (a *Arena) Reset() {
	clear(a.records)
	a.records = a.records[:0]
}
