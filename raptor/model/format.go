package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTime parses "HH:MM" or "HH:MM:SS" into seconds since midnight. Hours
// past 23 are allowed for trips running after midnight.
func ParseTime(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidTime)
	}
	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || (i > 0 && v > 59) {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidTime)
		}
		hms[i] = v
	}
	return hms[0]*3600 + hms[1]*60 + hms[2], nil
}

// Time is ParseTime for literals, it panics on malformed input.
func Time(s string) int {
	t, err := ParseTime(s)
	if err != nil {
		log.Panicf("%v", err)
	}
	return t
}

// 时刻输出：秒为0时为HH:MM，否则HH:MM:SS；跨天附加"+1d"/"-1d"
func TimeToStr(t int) string {
	if t == TIME_NOT_SET {
		return "-"
	}
	days := t / SECONDS_PER_DAY
	t %= SECONDS_PER_DAY
	if t < 0 {
		t += SECONDS_PER_DAY
		days--
	}
	h, m, s := t/3600, t/60%60, t%60
	var str string
	if s == 0 {
		str = fmt.Sprintf("%02d:%02d", h, m)
	} else {
		str = fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	if days != 0 {
		str += fmt.Sprintf("%+dd", days)
	}
	return str
}

// 时长输出，如1h59m45s、3m、45s
func DurationToStr(d int) string {
	if d == 0 {
		return "0s"
	}
	var sb strings.Builder
	if d < 0 {
		sb.WriteByte('-')
		d = -d
	}
	h, m, s := d/3600, d/60%60, d%60
	if h > 0 {
		fmt.Fprintf(&sb, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&sb, "%dm", m)
	}
	if s > 0 {
		fmt.Fprintf(&sb, "%ds", s)
	}
	return sb.String()
}

// 代价输出（单位秒），千位以"_"分隔，仅有小数部分时保留两位小数
func CostToStr(cost int) string {
	var sb strings.Builder
	if cost < 0 {
		sb.WriteByte('-')
		cost = -cost
	}
	sb.WriteString(groupThousands(cost / 100))
	if frac := cost % 100; frac != 0 {
		fmt.Fprintf(&sb, ".%02d", frac)
	}
	return sb.String()
}

func groupThousands(v int) string {
	s := strconv.Itoa(v)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
