package arrival

import (
	"fmt"

	"git.fiblab.net/sim/transitpath/raptor/model"
)

// DestinationArrival is an arrival at the destination through Egress, linked
// to the last stop arrival. In a reverse search Egress is the street path
// from the origin and ArrivalTime is the departure time.
type DestinationArrival struct {
	Prev        int32
	Egress      model.AccessEgress
	ArrivalTime int
	C1          int
	C2          int
	Round       int
}

func NewDestinationArrival(arena *Arena, prev int32, egress model.AccessEgress, arrivalTime, c1 int) DestinationArrival {
	return DestinationArrival{
		Prev:        prev,
		Egress:      egress,
		ArrivalTime: arrivalTime,
		C1:          c1,
		C2:          model.NOT_SET,
		Round:       arena.Get(prev).Round + egress.NumberOfRides(),
	}
}

func (d DestinationArrival) WithC2(c2 int) DestinationArrival {
	d.C2 = c2
	return d
}

func (d DestinationArrival) String() string {
	return fmt.Sprintf("Egress { round: %d, from-stop: %d, arrival: %s, c1: %s }", d.Round, d.Egress.Stop(), model.TimeToStr(d.ArrivalTime), model.CostToStr(d.C1))
}
