package cost

import (
	"fmt"
	"math"
)

// RelaxFunction widens a cost before comparison: relax(v) = round(v·Ratio) + Slack.
type RelaxFunction struct {
	Ratio float64 `yaml:"ratio"`
	// raptor cost
	Slack int `yaml:"slack"`
}

// 不放宽
var NORMAL = RelaxFunction{Ratio: 1.0, Slack: 0}

func NewRelaxFunction(ratio float64, slack int) (RelaxFunction, error) {
	f := RelaxFunction{Ratio: ratio, Slack: slack}
	return f, f.Validate()
}

func (f RelaxFunction) Validate() error {
	if f.Ratio < MIN_RELAX_RATIO || f.Ratio > MAX_RELAX_RATIO {
		return fmt.Errorf("ratio %v not in [%v, %v]: %w", f.Ratio, MIN_RELAX_RATIO, MAX_RELAX_RATIO, ErrInvalidRelaxFunction)
	}
	if f.Slack < 0 {
		return fmt.Errorf("negative slack %d: %w", f.Slack, ErrInvalidRelaxFunction)
	}
	return nil
}

func (f RelaxFunction) Relax(v int) int {
	return int(math.Round(float64(v)*f.Ratio)) + f.Slack
}

func (f RelaxFunction) IsNormal() bool {
	return f.Ratio == 1.0 && f.Slack == 0
}

func (f RelaxFunction) String() string {
	if f.IsNormal() {
		return "NORMAL"
	}
	return fmt.Sprintf("f(x) = %.2f * x + %.2f", f.Ratio, float64(f.Slack)/COST_PER_SECOND)
}
