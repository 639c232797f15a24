package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"git.fiblab.net/sim/transitpath/metrics"
	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/mapper"
	"git.fiblab.net/sim/transitpath/raptor/model"
	"git.fiblab.net/sim/transitpath/raptor/testcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *metrics.Collector) string {
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCollector(t *testing.T) {
	c := testcase.NewBasicPath()
	arena := arrival.NewArena(8)
	i := arena.Access(c.Access, model.Time("10:03:15"), 0)
	i = arena.Transit(i, c.Trip1, testcase.STOP_B, model.Time("10:35"), 0)
	i = arena.Transfer(i, c.Transfer, model.Time("10:39"), 0)
	i = arena.Transit(i, c.Trip2, testcase.STOP_D, model.Time("11:23"), 0)
	i = arena.Transit(i, c.Trip3, testcase.STOP_E, model.Time("11:52"), 0)
	dest := arrival.NewDestinationArrival(arena, i, c.Egress, model.Time("12:00"), 0)

	collector := metrics.NewCollector()
	lifeCycle := mapper.NewLifeCycle()
	opts := mapper.DefaultOptions()
	opts.Listener = collector
	opts.Observer = collector
	opts.ArrivalTimeLimit = model.Time("12:30")
	paths := mapper.NewDestinationArrivalPaths(mapper.NewForwardPathMapper(arena, c.Context(), lifeCycle), lifeCycle, opts)

	assert.True(t, paths.Add(dest))
	assert.False(t, paths.Add(dest))
	late := dest
	late.ArrivalTime = model.Time("13:00")
	assert.False(t, paths.Add(late))

	body := scrape(t, collector)
	assert.Contains(t, body, "transitpath_paths_accepted_total 1\n")
	assert.Contains(t, body, "transitpath_paths_rejected_total 1\n")
	assert.Contains(t, body, "transitpath_paths_dropped_total 0\n")
	assert.Contains(t, body, "transitpath_arrivals_rejected_by_time_limit_total 1\n")
	assert.Contains(t, body, `transitpath_paths_accepted_by_rides_total{rides="3"} 1`)
	assert.Contains(t, body, "transitpath_mapping_duration_seconds_count 2\n")
	assert.Contains(t, body, "transitpath_path_c1_seconds_sum 8154\n")
}
