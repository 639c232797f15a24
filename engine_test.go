package main

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"git.fiblab.net/sim/transitpath/metrics"
	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"git.fiblab.net/sim/transitpath/raptor/pareto"
	"git.fiblab.net/sim/transitpath/raptor/path"
	"git.fiblab.net/sim/transitpath/raptor/testcase"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 与testcase一致的配置
func basicConfig() *Config {
	c := DefaultConfig()
	c.Cost = testcase.CostParams()
	c.Slack = *testcase.Slack()
	c.StopSurcharges = map[int]int{
		testcase.STOP_B: testcase.STOP_COST_B / 100,
		testcase.STOP_D: testcase.STOP_COST_D / 100,
	}
	c.Search.Start = model.TimeToStr(testcase.ITERATION_START)
	return c
}

func basicForwardWindow(c *testcase.BasicPath, iterationDepartureTime int) Window {
	a := arrival.NewArena(8)
	i := a.Access(c.Access, model.Time("10:03:15"), 0)
	i = a.Transit(i, c.Trip1, testcase.STOP_B, model.Time("10:35"), 0)
	i = a.Transfer(i, c.Transfer, model.Time("10:39"), 0)
	i = a.Transit(i, c.Trip2, testcase.STOP_D, model.Time("11:23"), 0)
	i = a.Transit(i, c.Trip3, testcase.STOP_E, model.Time("11:52"), 0)
	dest := arrival.NewDestinationArrival(a, i, c.Egress, model.Time("12:00"), 0).WithC2(testcase.C2)
	return Window{IterationDepartureTime: iterationDepartureTime, Arena: a, Destinations: []arrival.DestinationArrival{dest}}
}

func TestEngineBasicPath(t *testing.T) {
	engine, err := NewEngine(basicConfig(), nil, nil)
	require.NoError(t, err)
	c := testcase.NewBasicPath()

	paths, err := engine.Search(context.Background(), []Window{basicForwardWindow(c, testcase.ITERATION_START)})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, testcase.SUMMARY, paths[0].Summary(testcase.StopName))
	assert.Equal(t, testcase.DETAILED, paths[0].Detailed(testcase.StopName))
}

func TestEngineReverseBasicPath(t *testing.T) {
	cfg := basicConfig()
	cfg.Search.ReverseSearch = true
	engine, err := NewEngine(cfg, model.NewTransferConstraintIndex(), nil)
	require.NoError(t, err)
	c := testcase.NewBasicPath()

	a := arrival.NewArena(8)
	i := a.Access(c.Egress, model.Time("11:52:15"), 0)
	i = a.Transit(i, c.Trip3, testcase.STOP_D, model.Time("11:40"), 0)
	i = a.Transit(i, c.Trip2, testcase.STOP_C, model.Time("11:00"), 0)
	i = a.Transfer(i, c.ReverseTransfer, model.Time("10:35:15"), 0)
	i = a.Transit(i, c.Trip1, testcase.STOP_A, model.Time("10:04"), 0)
	dest := arrival.NewDestinationArrival(a, i, c.Access, model.Time("10:00:15"), 0).WithC2(testcase.C2)

	paths, err := engine.Search(context.Background(), []Window{
		{IterationDepartureTime: model.Time("12:00"), Arena: a, Destinations: []arrival.DestinationArrival{dest}},
	})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, testcase.SUMMARY, paths[0].Summary(testcase.StopName))
}

func TestEngineMergesWindows(t *testing.T) {
	c := testcase.NewBasicPath()
	windows := []Window{
		basicForwardWindow(c, testcase.ITERATION_START),
		basicForwardWindow(c, testcase.ITERATION_START+300),
	}

	// 迭代出发时间不同的路径互不相等，均保留
	engine, err := NewEngine(basicConfig(), nil, nil)
	require.NoError(t, err)
	paths, err := engine.Search(context.Background(), windows)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	// 比较迭代出发时间时，较晚出发的路径支配较早的
	cfg := basicConfig()
	cfg.Comparator.IncludeIterationDepartureTime = true
	engine, err = NewEngine(cfg, nil, nil)
	require.NoError(t, err)
	paths, err = engine.Search(context.Background(), windows)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, testcase.ITERATION_START+300, paths[0].IterationDepartureTime())
}

func TestEngineSynthetic(t *testing.T) {
	for _, reverse := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Search.ReverseSearch = reverse
		collector := metrics.NewCollector()
		engine, err := NewEngine(cfg, nil, collector)
		require.NoError(t, err)

		windows := NewSynthetic(42, &cfg.Slack).Windows(cfg.IterationDepartureTimes(), 30, reverse)
		require.Len(t, windows, cfg.Search.Windows)
		for _, w := range windows {
			require.Len(t, w.Destinations, 30)
			assert.IsNonDecreasing(t, lo.Map(w.Destinations, func(d arrival.DestinationArrival, _ int) int { return d.Round }))
		}
		paths, err := engine.Search(context.Background(), windows)
		require.NoError(t, err)
		require.NotEmpty(t, paths)

		better := path.NewComparator(cfg.ComparatorOptions())
		for i, p := range paths {
			legs := p.Legs()
			assert.True(t, legs[0].IsAccess())
			assert.True(t, legs[len(legs)-1].IsEgress())
			for k := 1; k < len(legs); k++ {
				assert.Equal(t, legs[k-1].ToStop(), legs[k].FromStop(), p.String())
				assert.LessOrEqual(t, legs[k-1].ToTime(), legs[k].FromTime(), p.String())
			}
			// 结果中任意两条路径互不支配
			for j, q := range paths {
				if i != j {
					assert.False(t, better(p, q) && !better(q, p), "%v dominates %v", p, q)
				}
			}
		}
		rec := httptest.NewRecorder()
		collector.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		assert.Contains(t, rec.Body.String(), "transitpath_paths_accepted_total")
		assert.NotContains(t, rec.Body.String(), "transitpath_paths_accepted_total 0\n")
	}
}

func TestEngineMergeOrder(t *testing.T) {
	cfg := DefaultConfig()
	engine, err := NewEngine(cfg, nil, nil)
	require.NoError(t, err)
	windows := NewSynthetic(7, &cfg.Slack).Windows(cfg.IterationDepartureTimes(), 20, false)

	// 逐个窗口搜索后按窗口顺序合并
	merger := pareto.NewMerger(path.NewComparator(cfg.ComparatorOptions()), pareto.WithEquality(path.Equal))
	for _, w := range windows {
		paths, err := engine.Search(context.Background(), []Window{w})
		require.NoError(t, err)
		merger.Merge(paths)
	}
	expected := lo.Map(merger.Elements(), func(p *path.Path, _ int) string { return p.String() })
	require.NotEmpty(t, expected)

	for i := 0; i < 10; i++ {
		paths, err := engine.Search(context.Background(), windows)
		require.NoError(t, err)
		assert.Equal(t, expected, lo.Map(paths, func(p *path.Path, _ int) string { return p.String() }))
	}
}

func TestEngineCancelled(t *testing.T) {
	engine, err := NewEngine(basicConfig(), nil, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Search(ctx, []Window{basicForwardWindow(testcase.NewBasicPath(), testcase.ITERATION_START)})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewEngineInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cost.WaitReluctance = -1
	_, err := NewEngine(cfg, nil, nil)
	assert.Error(t, err)
}

func TestRunBenchmark(t *testing.T) {
	*benchmarkCount = 5
	*destinations = 10
	cfg := DefaultConfig()
	engine, err := NewEngine(cfg, nil, nil)
	require.NoError(t, err)

	r := runBenchmark(context.Background(), engine, cfg)
	assert.Equal(t, 5, r.count)
	assert.EqualValues(t, 5, r.success)
	assert.GreaterOrEqual(t, r.paths, int64(5))
}
