// Package metrics exports the pareto and mapping events of path searches to
// Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"git.fiblab.net/sim/transitpath/raptor/arrival"
	"git.fiblab.net/sim/transitpath/raptor/path"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const NAMESPACE = "transitpath"

// Collector is a pareto.EventListener[*path.Path] and a mapper.Observer.
// It owns its registry; all methods are safe for concurrent use.
type Collector struct {
	reg *prometheus.Registry

	PathsAccepted       prometheus.Counter
	PathsRejected       prometheus.Counter
	PathsDropped        prometheus.Counter
	TimeLimitRejections prometheus.Counter
	// 按乘车次数统计被接受的路径
	AcceptedByRides *prometheus.CounterVec

	MappingDuration prometheus.Histogram
	PathC1          prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		reg: reg,
		PathsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "paths_accepted_total",
			Help:      "Paths accepted into a pareto set.",
		}),
		PathsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "paths_rejected_total",
			Help:      "Paths rejected by a pareto set.",
		}),
		PathsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "paths_dropped_total",
			Help:      "Pareto set members dropped by a dominating path.",
		}),
		TimeLimitRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "arrivals_rejected_by_time_limit_total",
			Help:      "Destination arrivals outside the arrival time limit.",
		}),
		AcceptedByRides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "paths_accepted_by_rides_total",
			Help:      "Accepted paths by number of transit legs.",
		}, []string{"rides"}),
		MappingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: NAMESPACE,
			Name:      "mapping_duration_seconds",
			Help:      "Time to map a destination arrival to a path.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 2, 18),
		}),
		PathC1: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: NAMESPACE,
			Name:      "path_c1_seconds",
			Help:      "Generalized cost of accepted paths, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(60, 2, 10),
		}),
	}
	reg.MustRegister(
		c.PathsAccepted, c.PathsRejected, c.PathsDropped, c.TimeLimitRejections,
		c.AcceptedByRides, c.MappingDuration, c.PathC1,
	)
	return c
}

func (c *Collector) Accepted(p *path.Path) {
	c.PathsAccepted.Inc()
	c.AcceptedByRides.WithLabelValues(ridesLabel(len(p.TransitLegs()))).Inc()
	c.PathC1.Observe(float64(p.C1()) / 100)
}

func (c *Collector) Rejected(p, by *path.Path) { c.PathsRejected.Inc() }
func (c *Collector) Dropped(p, by *path.Path)  { c.PathsDropped.Inc() }

func (c *Collector) RejectedByTimeLimit(dest arrival.DestinationArrival) {
	c.TimeLimitRejections.Inc()
}

func (c *Collector) Mapped(p *path.Path, elapsed time.Duration) {
	c.MappingDuration.Observe(elapsed.Seconds())
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// 乘车次数超过3次的合并为一个标签
func ridesLabel(rides int) string {
	if rides > 3 {
		return "4+"
	}
	return strconv.Itoa(rides)
}
