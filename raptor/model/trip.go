package model

// 车次的无障碍状态
type Accessibility uint8

const (
	ACCESSIBILITY_UNKNOWN Accessibility = iota
	ACCESSIBLE
	NOT_ACCESSIBLE
)

func (a Accessibility) String() string {
	switch a {
	case ACCESSIBLE:
		return "ACCESSIBLE"
	case NOT_ACCESSIBLE:
		return "NOT_ACCESSIBLE"
	default:
		return "UNKNOWN"
	}
}

// Pattern is the stop sequence shared by all trips of one route variant.
type Pattern interface {
	// 第pos个停靠位置对应的stop index
	StopIndex(pos int) int
	NumberOfStopsInPattern() int
	// 上下车slack的分组下标
	SlackIndex() int
	PatternIndex() int
	RouteID() string
	// 用于日志和路径输出，如"BUS L11"
	DebugInfo() string
}

// TripSchedule is one scheduled run of a pattern.
type TripSchedule interface {
	Arrival(stopPos int) int
	Departure(stopPos int) int
	Pattern() Pattern
	// 乘车reluctance的类别下标
	TransitReluctanceFactorIndex() int
	Accessibility() Accessibility
}

// 在车次中查找到达指定stop且到达时间为arrivalTime的停靠位置，找不到返回-1
func FindArrivalStopPosition(trip TripSchedule, arrivalTime, stop int) int {
	p := trip.Pattern()
	for pos := 1; pos < p.NumberOfStopsInPattern(); pos++ {
		if p.StopIndex(pos) == stop && trip.Arrival(pos) == arrivalTime {
			return pos
		}
	}
	return -1
}

// 在车次中查找从指定stop出发且出发时间为departureTime的停靠位置，找不到返回-1
func FindDepartureStopPosition(trip TripSchedule, departureTime, stop int) int {
	p := trip.Pattern()
	for pos := 0; pos < p.NumberOfStopsInPattern()-1; pos++ {
		if p.StopIndex(pos) == stop && trip.Departure(pos) == departureTime {
			return pos
		}
	}
	return -1
}

// BoardAndAlightTime holds the exact board and alight events of one ride.
type BoardAndAlightTime struct {
	BoardStopPos  int
	AlightStopPos int
	BoardTime     int
	AlightTime    int
}

func NewBoardAndAlightTime(trip TripSchedule, boardStopPos, alightStopPos int) BoardAndAlightTime {
	return BoardAndAlightTime{
		BoardStopPos:  boardStopPos,
		AlightStopPos: alightStopPos,
		BoardTime:     trip.Departure(boardStopPos),
		AlightTime:    trip.Arrival(alightStopPos),
	}
}

type RoutePattern struct {
	mode  string
	route string
	stops []int
	index int
	slack int
}

func NewRoutePattern(mode, route string, stops ...int) *RoutePattern {
	return &RoutePattern{mode: mode, route: route, stops: stops}
}

// 设置pattern下标与slack分组
func (p *RoutePattern) WithIndex(patternIndex, slackIndex int) *RoutePattern {
	p.index = patternIndex
	p.slack = slackIndex
	return p
}

func (p *RoutePattern) StopIndex(pos int) int { return p.stops[pos] }
func (p *RoutePattern) NumberOfStopsInPattern() int { return len(p.stops) }
func (p *RoutePattern) SlackIndex() int { return p.slack }
func (p *RoutePattern) PatternIndex() int { return p.index }
func (p *RoutePattern) RouteID() string { return p.route }
func (p *RoutePattern) DebugInfo() string { return p.mode + " " + p.route }

// Schedule is an in-memory TripSchedule.
type Schedule struct {
	pattern         *RoutePattern
	arrivals        []int
	departures      []int
	reluctanceIndex int
	accessibility   Accessibility
}

// 到达时间与出发时间相同的车次
func NewSchedule(pattern *RoutePattern, times ...int) *Schedule {
	if len(times) != pattern.NumberOfStopsInPattern() {
		log.Panicf("schedule of %s has %d times, expected %d", pattern.DebugInfo(), len(times), pattern.NumberOfStopsInPattern())
	}
	return &Schedule{
		pattern:       pattern,
		arrivals:      times,
		departures:    times,
		accessibility: ACCESSIBLE,
	}
}

func (s *Schedule) WithArrivals(times ...int) *Schedule {
	s.arrivals = times
	return s
}

func (s *Schedule) WithDepartures(times ...int) *Schedule {
	s.departures = times
	return s
}

func (s *Schedule) WithReluctanceIndex(index int) *Schedule {
	s.reluctanceIndex = index
	return s
}

func (s *Schedule) WithAccessibility(a Accessibility) *Schedule {
	s.accessibility = a
	return s
}

func (s *Schedule) Arrival(stopPos int) int { return s.arrivals[stopPos] }
func (s *Schedule) Departure(stopPos int) int { return s.departures[stopPos] }
func (s *Schedule) Pattern() Pattern { return s.pattern }
func (s *Schedule) TransitReluctanceFactorIndex() int { return s.reluctanceIndex }
func (s *Schedule) Accessibility() Accessibility { return s.accessibility }
func (s *Schedule) String() string { return s.pattern.DebugInfo() }
