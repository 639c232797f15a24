package cost

import (
	"git.fiblab.net/sim/transitpath/raptor/model"
	"github.com/samber/lo"
)

// AccessibilityModifier penalizes boarding trips that are not known to be
// wheelchair accessible.
func AccessibilityModifier(p AccessibilityParams) BoardingModifier {
	unknownCost := ToCost(float64(p.UnknownCost))
	inaccessibleCost := ToCost(float64(p.InaccessibleCost))
	return func(trip model.TripSchedule) int {
		switch trip.Accessibility() {
		case model.ACCESSIBLE:
			return 0
		case model.NOT_ACCESSIBLE:
			return inaccessibleCost
		default:
			return unknownCost
		}
	}
}

// RoutePreferenceModifier adds unpreferredCost(transitTime) when the trip's
// route is in unpreferredRoutes.
func RoutePreferenceModifier(unpreferredRoutes []string, unpreferredCost LinearFunction) ArrivalModifier {
	routes := lo.SliceToMap(unpreferredRoutes, func(r string) (string, struct{}) { return r, struct{}{} })
	return func(trip model.TripSchedule, transitTime int) int {
		if _, ok := routes[trip.Pattern().RouteID()]; ok {
			return unpreferredCost.CalculateRaptorCost(transitTime)
		}
		return 0
	}
}
