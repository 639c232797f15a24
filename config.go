package main

import (
	"errors"
	"fmt"
	"os"

	"git.fiblab.net/sim/transitpath/raptor/cost"
	"git.fiblab.net/sim/transitpath/raptor/mapper"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"git.fiblab.net/sim/transitpath/raptor/path"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type ComparatorConfig struct {
	PreferLateArrival             bool `yaml:"prefer_late_arrival"`
	IncludeIterationDepartureTime bool `yaml:"include_iteration_departure_time"`
	IncludeC1                     bool `yaml:"include_c1"`
	// 为空时不放宽C1
	Relax *RelaxConfig `yaml:"relax"`
	// C2越小越好
	IncludeC2 bool `yaml:"include_c2"`
}

// RelaxConfig relaxes C1 to ratio·c1 + slack. Like the other costs in the
// file, slack is given in seconds.
type RelaxConfig struct {
	Ratio float64 `yaml:"ratio"`
	Slack int     `yaml:"slack"`
}

// 转换为raptor cost
func (r RelaxConfig) Function() (cost.RelaxFunction, error) {
	return cost.NewRelaxFunction(r.Ratio, cost.ToCost(float64(r.Slack)))
}

type SearchConfig struct {
	ReverseSearch bool `yaml:"reverse_search"`
	// 首个迭代的出发时间，如"08:00"
	Start string `yaml:"start"`
	// 并行搜索的出发时间窗口数及窗口间隔（分钟）
	Windows       int `yaml:"windows"`
	WindowMinutes int `yaml:"window_minutes"`
	// 为空表示不限制
	ArrivalTimeLimit string `yaml:"arrival_time_limit"`
}

// Config is the driver configuration file.
type Config struct {
	Cost       cost.Params      `yaml:"cost"`
	Slack      model.Slack      `yaml:"slack"`
	Comparator ComparatorConfig `yaml:"comparator"`
	Search     SearchConfig     `yaml:"search"`
	// stop index -> 上下车附加代价（秒）
	StopSurcharges map[int]int `yaml:"stop_surcharges"`
}

func DefaultConfig() *Config {
	return &Config{
		Cost:       cost.DefaultParams(),
		Slack:      *model.NewSlack(60, 60, 0),
		Comparator: ComparatorConfig{IncludeC1: true},
		Search: SearchConfig{
			Start:         "08:00",
			Windows:       4,
			WindowMinutes: 1,
		},
	}
}

// LoadConfig reads a YAML config file. Missing keys keep their defaults.
func LoadConfig(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", file, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := c.Cost.Validate(); err != nil {
		return err
	}
	if c.Slack.Transfer < 0 || lo.Min(c.Slack.Board) < 0 || lo.Min(c.Slack.Alight) < 0 {
		return fmt.Errorf("negative slack: %w", ErrInvalidConfig)
	}
	if c.Comparator.Relax != nil {
		if _, err := c.Comparator.Relax.Function(); err != nil {
			return err
		}
		if !c.Comparator.IncludeC1 {
			return fmt.Errorf("relax without include_c1: %w", ErrInvalidConfig)
		}
	}
	if _, err := model.ParseTime(c.Search.Start); err != nil {
		return fmt.Errorf("search start: %w", err)
	}
	if c.Search.Windows < 1 {
		return fmt.Errorf("search windows %d < 1: %w", c.Search.Windows, ErrInvalidConfig)
	}
	if c.Search.WindowMinutes < 1 {
		return fmt.Errorf("search window minutes %d < 1: %w", c.Search.WindowMinutes, ErrInvalidConfig)
	}
	if c.Search.ArrivalTimeLimit != "" {
		if _, err := model.ParseTime(c.Search.ArrivalTimeLimit); err != nil {
			return fmt.Errorf("arrival time limit: %w", err)
		}
	}
	for stop, s := range c.StopSurcharges {
		if stop < 0 || s < 0 {
			return fmt.Errorf("stop surcharge %d: %d: %w", stop, s, ErrInvalidConfig)
		}
	}
	return nil
}

// ComparatorOptions must be called on a validated config.
func (c *Config) ComparatorOptions() path.ComparatorOptions {
	opts := path.ComparatorOptions{
		PreferLateArrival:             c.Comparator.PreferLateArrival,
		IncludeIterationDepartureTime: c.Comparator.IncludeIterationDepartureTime,
		ReverseSearch:                 c.Search.ReverseSearch,
		IncludeC1:                     c.Comparator.IncludeC1,
	}
	if c.Comparator.Relax != nil {
		if relax, err := c.Comparator.Relax.Function(); err == nil {
			opts.Relax = &relax
		}
	}
	if c.Comparator.IncludeC2 {
		opts.C2Dominance = func(l, r int) bool { return l < r }
	}
	return opts
}

// MapperOptions must be called on a validated config.
func (c *Config) MapperOptions() mapper.Options {
	opts := mapper.DefaultOptions()
	opts.Comparator = c.ComparatorOptions()
	opts.ReverseSearch = c.Search.ReverseSearch
	if c.Search.ArrivalTimeLimit != "" {
		opts.ArrivalTimeLimit = model.Time(c.Search.ArrivalTimeLimit)
	}
	return opts
}

// IterationDepartureTimes returns the departure time of each search window.
func (c *Config) IterationDepartureTimes() []int {
	start := model.Time(c.Search.Start)
	return lo.Times(c.Search.Windows, func(i int) int {
		return start + i*c.Search.WindowMinutes*60
	})
}

// StopSurchargeTable converts the configured surcharges to raptor cost; nil
// when none is configured.
func (c *Config) StopSurchargeTable() cost.StopSurcharges {
	if len(c.StopSurcharges) == 0 {
		return nil
	}
	table := make(cost.StopSurcharges, lo.Max(lo.Keys(c.StopSurcharges))+1)
	for stop, s := range c.StopSurcharges {
		table[stop] = cost.ToCost(float64(s))
	}
	return table
}
