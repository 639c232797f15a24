package path_test

import (
	"testing"

	"git.fiblab.net/sim/transitpath/raptor/cost"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"git.fiblab.net/sim/transitpath/raptor/path"
	"git.fiblab.net/sim/transitpath/raptor/testcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBasicPath(ctx path.Context, c *testcase.BasicPath) *path.Path {
	return path.NewHeadPathBuilder(ctx, testcase.ITERATION_START).
		Access(c.Access).
		Transit(c.Trip1, model.NewBoardAndAlightTime(c.Trip1, 0, 1)).
		Transfer(c.Transfer, testcase.STOP_C).
		Transit(c.Trip2, model.NewBoardAndAlightTime(c.Trip2, 0, 1)).
		Transit(c.Trip3, model.NewBoardAndAlightTime(c.Trip3, 0, 1)).
		Egress(c.Egress).
		C2(testcase.C2).
		Build()
}

func TestBasicPath(t *testing.T) {
	c := testcase.NewBasicPath()
	p := buildBasicPath(c.Context(), c)

	assert.Equal(t, testcase.SUMMARY, p.Summary(testcase.StopName))
	assert.Equal(t, testcase.DETAILED, p.Detailed(testcase.StopName))
	assert.Equal(t, testcase.TOTAL_C1, p.C1())
	assert.Equal(t, 2, p.NumberOfTransfers())
	assert.Equal(t, model.Time("10:00:15"), p.StartTime())
	assert.Equal(t, model.Time("12:00"), p.EndTime())
	assert.Equal(t, testcase.ITERATION_START, p.IterationDepartureTime())
	assert.Equal(t, 6, p.NumberOfLegs())
	assert.Len(t, p.TransitLegs(), 3)
	assert.Equal(t, []model.TripSchedule{c.Trip1, c.Trip2, c.Trip3}, p.Trips())
	assert.True(t, p.AccessLeg().IsAccess())
	assert.True(t, p.EgressLeg().IsEgress())
	assert.Equal(t, testcase.STOP_B, p.Leg(2).FromStop())
	assert.Contains(t, p.String(), "~ 1 ~ BUS L11")
}

func TestTailBuilderBuildsTheSamePath(t *testing.T) {
	c := testcase.NewBasicPath()
	head := buildBasicPath(c.Context(), c)
	tail := path.NewTailPathBuilder(c.Context(), testcase.ITERATION_START).
		Egress(c.Egress).
		Transit(c.Trip3, model.NewBoardAndAlightTime(c.Trip3, 0, 1)).
		Transit(c.Trip2, model.NewBoardAndAlightTime(c.Trip2, 0, 1)).
		Transfer(c.Transfer, testcase.STOP_C).
		Transit(c.Trip1, model.NewBoardAndAlightTime(c.Trip1, 0, 1)).
		Access(c.Access).
		C2(testcase.C2).
		Build()

	assert.Equal(t, testcase.DETAILED, tail.Detailed(testcase.StopName))
	assert.True(t, path.Equal(head, tail))
}

func TestLegContiguity(t *testing.T) {
	c := testcase.NewBasicPath()
	p := buildBasicPath(c.Context(), c)
	legs := p.Legs()
	for i := 0; i+1 < len(legs); i++ {
		assert.Equal(t, legs[i].ToStop(), legs[i+1].FromStop(), "leg %d", i)
		assert.LessOrEqual(t, legs[i].ToTime(), legs[i+1].FromTime(), "leg %d", i)
		assert.LessOrEqual(t, legs[i].FromTime(), legs[i].ToTime(), "leg %d", i)
	}
	// 返回的是副本
	legs[0] = legs[1]
	assert.True(t, p.AccessLeg().IsAccess())
}

func TestNoCalculatorGivesZeroCost(t *testing.T) {
	c := testcase.NewBasicPath()
	p := buildBasicPath(path.Context{Slack: testcase.Slack()}, c)
	assert.Equal(t, 0, p.C1())
	assert.Equal(t, model.Time("10:00:15"), p.StartTime())
}

func TestFlexAccessAndEgress(t *testing.T) {
	c := testcase.NewBasicPath()
	access := model.Flex(testcase.STOP_A, 600, 100000, 1)
	egress := model.Flex(testcase.STOP_B, 300, 50000, 1).WithOpeningHours(model.Time("10:40"), model.Time("11:00"))
	p := path.NewHeadPathBuilder(c.Context(), testcase.ITERATION_START).
		Access(access).
		Transit(c.Trip1, model.NewBoardAndAlightTime(c.Trip1, 0, 1)).
		Egress(egress).
		Build()

	// 含乘车的接驳需额外的换乘slack
	assert.Equal(t, model.Time("10:04")-testcase.BOARD_SLACK-testcase.TRANSFER_SLACK, p.AccessLeg().ToTime())
	// 离站段等到营业时间开始
	assert.Equal(t, model.Time("10:40"), p.EgressLeg().FromTime())
	assert.Equal(t, 2, p.NumberOfTransfers())

	calc := testcase.Calculator()
	wait := model.Time("10:40") - (model.Time("10:35") + testcase.ALIGHT_SLACK)
	assert.Equal(t, calc.WaitCost(wait)+calc.CostEgress(egress), p.EgressLeg().C1())
	// 接驳含乘车，第一次上车按换乘计
	board := calc.BoardingCost(false, p.AccessLeg().ToTime(), testcase.STOP_A, model.Time("10:04"), c.Trip1, model.CONSTRAINT_REGULAR)
	assert.Equal(t, calc.TransitArrivalCost(board, testcase.ALIGHT_SLACK, 31*60, c.Trip1, testcase.STOP_B), p.Leg(1).C1())
}

func TestWalkOnlyPath(t *testing.T) {
	c := testcase.NewBasicPath()
	p := path.NewHeadPathBuilder(c.Context(), testcase.ITERATION_START).
		Access(model.Walk(testcase.STOP_A, 120, 24000)).
		Transfer(c.Transfer, testcase.STOP_C).
		Egress(model.Walk(testcase.STOP_C, 60, 12000)).
		Build()
	assert.Equal(t, testcase.ITERATION_START, p.StartTime())
	assert.Equal(t, testcase.ITERATION_START+120+testcase.TRANSFER_DURATION+60, p.EndTime())
	assert.Equal(t, -1, p.NumberOfTransfers())
	assert.Equal(t, 24000+testcase.WalkCost(testcase.TRANSFER_DURATION)+12000, p.C1())
	assert.False(t, p.HasC2())
	assert.NotContains(t, p.String(), "C₂")
}

func TestConstrainedTransfer(t *testing.T) {
	c := testcase.NewBasicPath()
	index := model.NewTransferConstraintIndex()
	index.Add(c.Trip2, 1, c.Trip3, 0, &model.ConstrainedTransfer{Kind: model.CONSTRAINT_GUARANTEED})
	ctx := c.Context()
	ctx.Constraints = index
	p := buildBasicPath(ctx, c)

	legs := p.TransitLegs()
	assert.Nil(t, legs[0].ConstrainedTransferAfterLeg())
	assert.Equal(t, model.CONSTRAINT_GUARANTEED, legs[1].ConstrainedTransferAfterLeg().TransferConstraint())

	// 保证换乘不计上车与换乘代价
	regular := buildBasicPath(c.Context(), c)
	saved := cost.ToCost(testcase.BOARD_COST+testcase.TRANSFER_COST) + testcase.STOP_COST_D
	assert.Equal(t, regular.C1()-saved, p.C1())
	assert.False(t, path.Equal(regular, p))
}

func TestStaySeated(t *testing.T) {
	pattern := model.NewRoutePattern("BUS", "L1", testcase.STOP_A, testcase.STOP_B)
	next := model.NewRoutePattern("BUS", "L2", testcase.STOP_B, testcase.STOP_C)
	t1 := model.NewSchedule(pattern, model.Time("10:00"), model.Time("10:10"))
	t2 := model.NewSchedule(next, model.Time("10:10"), model.Time("10:20"))
	index := model.NewTransferConstraintIndex()
	index.Add(t1, 1, t2, 0, &model.ConstrainedTransfer{Kind: model.CONSTRAINT_STAY_SEATED})

	calc := testcase.Calculator()
	ctx := path.Context{Slack: testcase.Slack(), Calculator: calc, Constraints: index}
	p := path.NewHeadPathBuilder(ctx, testcase.ITERATION_START).
		Access(model.Walk(testcase.STOP_A, 60, 12000)).
		Transit(t1, model.NewBoardAndAlightTime(t1, 0, 1)).
		Transit(t2, model.NewBoardAndAlightTime(t2, 0, 1)).
		Egress(model.Walk(testcase.STOP_C, 60, 12000)).
		Build()

	// 下车slack使等待时间为负
	board := calc.BoardingCost(false, model.Time("10:10")+testcase.ALIGHT_SLACK, testcase.STOP_B, model.Time("10:10"), t2, model.CONSTRAINT_STAY_SEATED)
	assert.Equal(t, -testcase.ALIGHT_SLACK*100, board)
	assert.Equal(t, calc.TransitArrivalCost(board, testcase.ALIGHT_SLACK, 600, t2, testcase.STOP_C), p.Leg(2).C1())
}

func TestBuilderPanics(t *testing.T) {
	c := testcase.NewBasicPath()
	ctx := c.Context()
	ba := model.NewBoardAndAlightTime(c.Trip1, 0, 1)

	assert.Panics(t, func() {
		path.NewHeadPathBuilder(ctx, 0).Transit(c.Trip1, ba).Egress(model.Walk(testcase.STOP_B, 60, 0)).Build()
	}, "missing access")
	assert.Panics(t, func() {
		path.NewHeadPathBuilder(ctx, 0).Access(c.Access).Transit(c.Trip1, ba).Build()
	}, "missing egress")
	assert.Panics(t, func() {
		path.NewHeadPathBuilder(ctx, 0).Access(c.Access).Build()
	}, "access only")
	assert.Panics(t, func() {
		b := path.NewHeadPathBuilder(ctx, 0).Access(c.Access).Transit(c.Trip1, ba).Egress(model.Walk(testcase.STOP_B, 60, 0))
		b.Build()
		b.Build()
	}, "double build")
	assert.Panics(t, func() {
		path.NewHeadPathBuilder(ctx, 0).Access(c.Access).Transit(c.Trip1, ba).Egress(c.Egress).Build()
	}, "egress not at alight stop")
	assert.Panics(t, func() {
		closed := model.Walk(testcase.STOP_A, 180, 0).WithOpeningHours(model.Time("11:00"), model.Time("12:00"))
		path.NewHeadPathBuilder(ctx, 0).Access(closed).Transit(c.Trip1, ba).Egress(model.Walk(testcase.STOP_B, 60, 0)).Build()
	}, "access closed")
	assert.Panics(t, func() {
		path.NewHeadPathBuilder(path.Context{}, 0)
	}, "no slack")
}

func TestComparators(t *testing.T) {
	c := testcase.NewBasicPath()
	ctx := c.Context()
	build := func(egress *model.StreetAccess, iteration int) *path.Path {
		return path.NewHeadPathBuilder(ctx, iteration).
			Access(c.Access).
			Transit(c.Trip1, model.NewBoardAndAlightTime(c.Trip1, 0, 1)).
			Egress(egress).
			Build()
	}
	// 时间、换乘次数相同，代价1000与1050
	cheap := build(model.Walk(testcase.STOP_B, 60, 1000), testcase.ITERATION_START)
	expensive := build(model.Walk(testcase.STOP_B, 60, 1050), testcase.ITERATION_START)
	require.Equal(t, cheap.EndTime(), expensive.EndTime())
	require.Equal(t, cheap.C1()+50, expensive.C1())

	withCost := path.NewParetoSet(path.ComparatorOptions{IncludeC1: true}, nil)
	withCost.Add(expensive)
	withCost.Add(cheap)
	assert.Equal(t, []*path.Path{cheap}, withCost.Elements())

	noCost := path.NewParetoSet(path.ComparatorOptions{}, nil)
	noCost.Add(expensive)
	noCost.Add(cheap)
	assert.Equal(t, 2, noCost.Size())
	// 相同路径只保留一次
	assert.False(t, noCost.Add(buildBasicPathLike(cheap, build)))
	assert.Equal(t, 2, noCost.Size())

	// 放宽后两条都保留
	relax, err := cost.NewRelaxFunction(1.0, 100)
	require.NoError(t, err)
	relaxed := path.NewParetoSet(path.ComparatorOptions{IncludeC1: true, Relax: &relax}, nil)
	relaxed.Add(cheap)
	relaxed.Add(expensive)
	assert.Equal(t, 2, relaxed.Size())
	relaxed.Add(cheap)
	assert.Equal(t, 2, relaxed.Size())

	// 迭代出发时间越晚越好
	later := build(model.Walk(testcase.STOP_B, 60, 1000), testcase.ITERATION_START+60)
	better := path.NewComparator(path.ComparatorOptions{IncludeIterationDepartureTime: true})
	assert.True(t, better(later, cheap))
	assert.False(t, better(cheap, later))
	reverse := path.NewComparator(path.ComparatorOptions{IncludeIterationDepartureTime: true, ReverseSearch: true})
	assert.True(t, reverse(cheap, later))

	// 更长的离站段到达更晚
	slow := build(model.Walk(testcase.STOP_B, 120, 0), testcase.ITERATION_START)
	base := path.NewComparator(path.ComparatorOptions{})
	assert.True(t, base(cheap, slow))
	assert.False(t, base(slow, cheap))
	lateArrival := path.NewComparator(path.ComparatorOptions{PreferLateArrival: true})
	assert.False(t, lateArrival(slow, cheap))

	c2 := path.NewComparator(path.ComparatorOptions{C2Dominance: func(l, r int) bool { return l < r }})
	assert.False(t, c2(cheap, expensive))
}

// 以相同参数重新构建一条路径
func buildBasicPathLike(p *path.Path, build func(*model.StreetAccess, int) *path.Path) *path.Path {
	return build(p.EgressLeg().Street().(*model.StreetAccess), p.IterationDepartureTime())
}

func TestRelaxedCostMonotonicity(t *testing.T) {
	c := testcase.NewBasicPath()
	ctx := c.Context()
	var paths []*path.Path
	for i, extra := range []int{0, 400, 150, 900, 50, 2000, 300} {
		paths = append(paths, path.NewHeadPathBuilder(ctx, testcase.ITERATION_START+i).
			Access(c.Access).
			Transit(c.Trip1, model.NewBoardAndAlightTime(c.Trip1, 0, 1)).
			Egress(model.Walk(testcase.STOP_B, 60, 1000+extra)).
			Build())
	}
	prev := 0
	for _, ratio := range []float64{1.0, 1.0001, 1.001, 1.01, 1.5} {
		relax, err := cost.NewRelaxFunction(ratio, 0)
		require.NoError(t, err)
		set := path.NewParetoSet(path.ComparatorOptions{IncludeC1: true, Relax: &relax}, nil)
		for _, p := range paths {
			set.Add(p)
		}
		assert.GreaterOrEqual(t, set.Size(), prev, "ratio %v", ratio)
		prev = set.Size()

		// 集合内任意两条路径互不支配
		better := path.NewComparator(path.ComparatorOptions{IncludeC1: true, Relax: &relax})
		es := set.Elements()
		for i := range es {
			for j := range es {
				if i != j {
					assert.False(t, better(es[i], es[j]) && !better(es[j], es[i]))
				}
			}
		}
	}
}
