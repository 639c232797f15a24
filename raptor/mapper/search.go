package mapper

import (
	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/model"
)

// TripTimeSearch finds the exact board and alight events of a transit arrival
// whose previous arrival is at prevStop.
type TripTimeSearch func(r arrival.Record, prevStop int) model.BoardAndAlightTime

// ForwardTripTimeSearch: the record is the alighting, prevStop the boarding
// stop.
func ForwardTripTimeSearch(r arrival.Record, prevStop int) model.BoardAndAlightTime {
	trip := r.Trip
	alight := model.FindArrivalStopPosition(trip, r.ArrivalTime, r.Stop)
	if alight < 0 {
		log.Panicf("trip %s does not arrive at stop %d at %s", trip.Pattern().DebugInfo(), r.Stop, model.TimeToStr(r.ArrivalTime))
	}
	p := trip.Pattern()
	for board := alight - 1; board >= 0; board-- {
		if p.StopIndex(board) == prevStop {
			return model.NewBoardAndAlightTime(trip, board, alight)
		}
	}
	log.Panicf("trip %s does not board at stop %d before stop %d", p.DebugInfo(), prevStop, r.Stop)
	return model.BoardAndAlightTime{}
}

// ReverseTripTimeSearch: the record is the boarding (its time is the
// departure time), prevStop the alighting stop.
func ReverseTripTimeSearch(r arrival.Record, prevStop int) model.BoardAndAlightTime {
	trip := r.Trip
	board := model.FindDepartureStopPosition(trip, r.ArrivalTime, r.Stop)
	if board < 0 {
		log.Panicf("trip %s does not depart from stop %d at %s", trip.Pattern().DebugInfo(), r.Stop, model.TimeToStr(r.ArrivalTime))
	}
	p := trip.Pattern()
	for alight := board + 1; alight < p.NumberOfStopsInPattern(); alight++ {
		if p.StopIndex(alight) == prevStop {
			return model.NewBoardAndAlightTime(trip, board, alight)
		}
	}
	log.Panicf("trip %s does not alight at stop %d after stop %d", p.DebugInfo(), prevStop, r.Stop)
	return model.BoardAndAlightTime{}
}
