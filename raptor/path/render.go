package path

import (
	"strconv"
	"strings"

	"git.fiblab.net/sim/transitpath/raptor/model"
)

// StopNames resolves a stop index to a display name. A nil StopNames prints
// the index.
type StopNames func(stop int) string

func (f StopNames) name(stop int) string {
	if f == nil {
		return strconv.Itoa(stop)
	}
	return f(stop)
}

// Summary renders the path on one line, e.g.
// "Walk 3m ~ A ~ BUS L11 10:04 10:35 ~ B ~ Walk 7m45s [10:00:15 12:00 1h59m45s Tₓ0 C₁4_060]".
func (p *Path) Summary(names StopNames) string {
	return p.render(names, false)
}

// Detailed adds leg times, leg cost and the wait at each stop to Summary.
func (p *Path) Detailed(names StopNames) string {
	return p.render(names, true)
}

// 站点以下标输出
func (p *Path) String() string {
	return p.render(nil, false)
}

func (p *Path) render(names StopNames, detailed bool) string {
	var sb strings.Builder
	prevToTime := 0
	for i, l := range p.legs {
		if i > 0 {
			sb.WriteString(" ~ ")
			sb.WriteString(names.name(l.fromStop))
			if detailed {
				sb.WriteByte(' ')
				sb.WriteString(model.DurationToStr(l.fromTime - prevToTime))
			}
			sb.WriteString(" ~ ")
		}
		renderLeg(&sb, l, detailed)
		prevToTime = l.toTime
	}
	sb.WriteString(" [")
	sb.WriteString(model.TimeToStr(p.startTime))
	sb.WriteByte(' ')
	sb.WriteString(model.TimeToStr(p.endTime))
	sb.WriteByte(' ')
	sb.WriteString(model.DurationToStr(p.DurationInSeconds()))
	sb.WriteString(" Tₓ")
	sb.WriteString(strconv.Itoa(p.numberOfTransfers))
	sb.WriteString(" C₁")
	sb.WriteString(model.CostToStr(p.c1))
	if p.HasC2() {
		sb.WriteString(" C₂")
		sb.WriteString(strconv.Itoa(p.c2))
	}
	sb.WriteByte(']')
	return sb.String()
}

func renderLeg(sb *strings.Builder, l Leg, detailed bool) {
	switch l.kind {
	case TRANSIT:
		sb.WriteString(l.trip.Pattern().DebugInfo())
		sb.WriteByte(' ')
		sb.WriteString(model.TimeToStr(l.fromTime))
		sb.WriteByte(' ')
		sb.WriteString(model.TimeToStr(l.toTime))
		if detailed {
			sb.WriteByte(' ')
			sb.WriteString(model.DurationToStr(l.DurationInSeconds()))
			sb.WriteString(" C₁")
			sb.WriteString(model.CostToStr(l.c1))
		}
		return
	case TRANSFER:
		sb.WriteString("Walk ")
		sb.WriteString(model.DurationToStr(l.DurationInSeconds()))
	default:
		sb.WriteString(l.street.String())
	}
	if detailed {
		sb.WriteByte(' ')
		sb.WriteString(model.TimeToStr(l.fromTime))
		sb.WriteByte(' ')
		sb.WriteString(model.TimeToStr(l.toTime))
		sb.WriteString(" C₁")
		sb.WriteString(model.CostToStr(l.c1))
	}
}
