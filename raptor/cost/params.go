package cost

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AccessibilityParams configures wheelchair routing penalties (seconds).
type AccessibilityParams struct {
	Enabled          bool `yaml:"enabled"`
	UnknownCost      int  `yaml:"unknown_cost"`
	InaccessibleCost int  `yaml:"inaccessible_cost"`
}

// Params is the per-request cost configuration. Times and costs are seconds;
// reluctances are multipliers. Build it with DefaultParams, then Validate.
type Params struct {
	BoardCost      int     `yaml:"board_cost"`
	TransferCost   int     `yaml:"transfer_cost"`
	WaitReluctance float64 `yaml:"wait_reluctance"`
	// 按车次reluctance类别下标索引
	TransitReluctance []float64 `yaml:"transit_reluctance"`

	Accessibility AccessibilityParams `yaml:"accessibility"`

	UnpreferredRoutes []string       `yaml:"unpreferred_routes"`
	UnpreferredCost   LinearFunction `yaml:"unpreferred_cost"`
}

func DefaultParams() Params {
	return Params{
		BoardCost:         DEFAULT_BOARD_COST,
		TransferCost:      DEFAULT_TRANSFER_COST,
		WaitReluctance:    DEFAULT_WAIT_RELUCTANCE,
		TransitReluctance: []float64{DEFAULT_TRANSIT_RELUCTANCE},
		Accessibility: AccessibilityParams{
			UnknownCost:      DEFAULT_UNKNOWN_ACCESSIBILITY_COST,
			InaccessibleCost: DEFAULT_INACCESSIBLE_COST,
		},
	}
}

func (p Params) Validate() error {
	if p.BoardCost < 0 {
		return fmt.Errorf("negative board cost %d: %w", p.BoardCost, ErrInvalidParams)
	}
	if p.TransferCost < 0 {
		return fmt.Errorf("negative transfer cost %d: %w", p.TransferCost, ErrInvalidParams)
	}
	if p.WaitReluctance < 0 {
		return fmt.Errorf("negative wait reluctance %v: %w", p.WaitReluctance, ErrInvalidParams)
	}
	for i, r := range p.TransitReluctance {
		if r <= 0 {
			return fmt.Errorf("transit reluctance[%d] = %v must be positive: %w", i, r, ErrInvalidParams)
		}
	}
	if p.Accessibility.UnknownCost < 0 || p.Accessibility.InaccessibleCost < 0 {
		return fmt.Errorf("negative accessibility cost: %w", ErrInvalidParams)
	}
	if err := p.UnpreferredCost.Validate(); err != nil {
		return fmt.Errorf("unpreferred cost: %w", err)
	}
	return nil
}

// 未配置的字段取默认值，解析后立即校验
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	type plain Params
	v := plain(DefaultParams())
	if err := value.Decode(&v); err != nil {
		return err
	}
	if err := Params(v).Validate(); err != nil {
		return err
	}
	*p = Params(v)
	return nil
}

// StopSurcharges is the per-stop board/alight surcharge in raptor cost,
// indexed by stop. A nil table means no surcharge anywhere.
type StopSurcharges []int

// 越界或nil时返回0
func (s StopSurcharges) At(stop int) int {
	if stop < 0 || stop >= len(s) {
		return 0
	}
	return s[stop]
}
