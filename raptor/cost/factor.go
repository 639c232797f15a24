package cost

import "github.com/samber/lo"

// FactorStrategy looks up a multiplier (in raptor cost per second) by
// category index.
type FactorStrategy interface {
	Factor(index int) int
	// 所有分类中的最小值，用于启发式下界
	MinFactor() int
}

// 所有分类共用同一个值
type SingleValueFactor int

func (f SingleValueFactor) Factor(int) int { return int(f) }
func (f SingleValueFactor) MinFactor() int { return int(f) }

// IndexedFactor has one factor per category and caches the minimum.
type IndexedFactor struct {
	factors []int
	min     int
}

func NewIndexedFactor(factors []int) *IndexedFactor {
	if len(factors) == 0 {
		log.Panicf("indexed factor needs at least one value")
	}
	return &IndexedFactor{factors: factors, min: lo.Min(factors)}
}

func (f *IndexedFactor) Factor(index int) int { return f.factors[index] }
func (f *IndexedFactor) MinFactor() int { return f.min }

// 根据reluctance配置创建因子策略，单值时退化为SingleValueFactor
func NewFactorStrategy(reluctance []float64) FactorStrategy {
	switch len(reluctance) {
	case 0:
		return SingleValueFactor(ToCost(DEFAULT_TRANSIT_RELUCTANCE))
	case 1:
		return SingleValueFactor(ToCost(reluctance[0]))
	default:
		return NewIndexedFactor(ToCosts(reluctance))
	}
}
