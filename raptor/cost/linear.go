package cost

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"git.fiblab.net/sim/transitpath/raptor/model"
	"gopkg.in/yaml.v3"
)

var linearFunctionPattern = regexp.MustCompile(`^\s*([0-9][0-9.hms]*)\s*\+\s*([0-9]+(?:\.[0-9]+)?)\s*[a-zA-Z]?\s*$`)

// LinearFunction is a penalty "a + b·t" where a is a constant in seconds and
// t is a duration in seconds.
type LinearFunction struct {
	Constant    int
	Coefficient float64
}

// ParseLinearFunction parses "a + b x". The constant is either whole seconds
// or a Go duration ("5m", "1h30m") that is a whole number of seconds.
func ParseLinearFunction(s string) (LinearFunction, error) {
	m := linearFunctionPattern.FindStringSubmatch(s)
	if m == nil {
		return LinearFunction{}, fmt.Errorf("%q: %w", s, ErrInvalidLinearFunction)
	}
	constant, err := parseSeconds(m[1])
	if err != nil {
		return LinearFunction{}, fmt.Errorf("%q: %w", s, ErrInvalidLinearFunction)
	}
	coefficient, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return LinearFunction{}, fmt.Errorf("%q: %w", s, ErrInvalidLinearFunction)
	}
	f := LinearFunction{Constant: constant, Coefficient: coefficient}
	return f, f.Validate()
}

func parseSeconds(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	// 代价常数以整秒计
	if d%time.Second != 0 {
		return 0, fmt.Errorf("%v is not a whole number of seconds", d)
	}
	return int(d / time.Second), nil
}

func (f LinearFunction) Validate() error {
	if f.Constant < 0 || f.Coefficient < 0 {
		return fmt.Errorf("%v: negative term: %w", f, ErrInvalidLinearFunction)
	}
	return nil
}

// 计算t秒对应的代价（raptor cost）
func (f LinearFunction) CalculateRaptorCost(t int) int {
	return ToCost(float64(f.Constant) + f.Coefficient*float64(t))
}

func (f LinearFunction) String() string {
	c := strconv.FormatFloat(f.Coefficient, 'f', -1, 64)
	if !strings.Contains(c, ".") {
		c += ".0"
	}
	return fmt.Sprintf("%s + %s t", model.DurationToStr(f.Constant), c)
}

func (f *LinearFunction) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseLinearFunction(value.Value)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
