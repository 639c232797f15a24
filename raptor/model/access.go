package model

import (
	"fmt"
	"strings"
)

// AccessEgress is a street (or flex) connection between the origin/destination
// and a transit stop. The stop is the boarding stop for access and the
// alighting stop for egress.
type AccessEgress interface {
	Stop() int
	C1() int
	DurationInSeconds() int
	// 接驳中包含的乘车次数（如flex）
	NumberOfRides() int
	HasRides() bool
	// 是否受营业时间约束
	HasOpeningHours() bool
	// 不早于requestedDepartureTime的最早出发时间，不可行时返回TIME_NOT_SET
	EarliestDepartureTime(requestedDepartureTime int) int
	// 不晚于requestedArrivalTime的最晚到达时间，不可行时返回TIME_NOT_SET
	LatestArrivalTime(requestedArrivalTime int) int
	fmt.Stringer
}

// StreetAccess is a walk or flex access/egress with optional opening hours.
type StreetAccess struct {
	stop     int
	duration int
	c1       int
	rides    int
	mode     string

	// 营业时间窗口[opening, closing]（出发时间）
	opening int
	closing int
	hours   bool
}

func Walk(stop, durationInSeconds, c1 int) *StreetAccess {
	return &StreetAccess{stop: stop, duration: durationInSeconds, c1: c1, mode: "Walk"}
}

// 含nRides次乘车的flex接驳
func Flex(stop, durationInSeconds, c1, nRides int) *StreetAccess {
	return &StreetAccess{stop: stop, duration: durationInSeconds, c1: c1, rides: nRides, mode: "Flex"}
}

// 设置出发时间窗口，仅在该窗口内可出发
func (a *StreetAccess) WithOpeningHours(opening, closing int) *StreetAccess {
	if opening > closing {
		log.Panicf("opening hours %d after closing %d", opening, closing)
	}
	a.opening, a.closing, a.hours = opening, closing, true
	return a
}

func (a *StreetAccess) Stop() int { return a.stop }
func (a *StreetAccess) C1() int { return a.c1 }
func (a *StreetAccess) DurationInSeconds() int { return a.duration }
func (a *StreetAccess) NumberOfRides() int { return a.rides }
func (a *StreetAccess) HasRides() bool { return a.rides > 0 }
func (a *StreetAccess) HasOpeningHours() bool { return a.hours }

func (a *StreetAccess) EarliestDepartureTime(requestedDepartureTime int) int {
	if !a.hours {
		return requestedDepartureTime
	}
	if requestedDepartureTime < a.opening {
		return a.opening
	}
	if requestedDepartureTime > a.closing {
		return TIME_NOT_SET
	}
	return requestedDepartureTime
}

func (a *StreetAccess) LatestArrivalTime(requestedArrivalTime int) int {
	if !a.hours {
		return requestedArrivalTime
	}
	departure := requestedArrivalTime - a.duration
	if departure < a.opening {
		return TIME_NOT_SET
	}
	if departure > a.closing {
		return a.closing + a.duration
	}
	return requestedArrivalTime
}

// 如"Walk 3m"，flex接驳附带乘车次数"Flex 7m45s 1x"
func (a *StreetAccess) String() string {
	var sb strings.Builder
	sb.WriteString(a.mode)
	sb.WriteByte(' ')
	sb.WriteString(DurationToStr(a.duration))
	if a.rides > 0 {
		fmt.Fprintf(&sb, " %dx", a.rides)
	}
	if a.hours {
		fmt.Fprintf(&sb, " Open(%s %s)", TimeToStr(a.opening), TimeToStr(a.closing))
	}
	return sb.String()
}
