package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/treesearch/search"
)

const namespace = "treesearch"

// Outcome label values.
const (
	OutcomeGoal      = "goal"
	OutcomeExhausted = "exhausted"
)

// Collector is a search.Observer backed by Prometheus metrics.
type Collector struct {
	checkpoints *prometheus.CounterVec
	frontier    prometheus.Gauge
	generated   prometheus.Gauge
	searches    *prometheus.CounterVec
	depth       prometheus.Histogram
}

var _ search.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		checkpoints: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkpoints_total",
				Help:      "Number of search checkpoints reached.",
			},
			[]string{"checkpoint"},
		),
		frontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_size",
			Help:      "Frontier size at the latest checkpoint.",
		}),
		generated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes_generated",
			Help:      "Nodes generated by the current run at the latest checkpoint.",
		}),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Number of finished searches by outcome.",
			},
			[]string{"outcome"},
		),
		depth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_depth",
			Help:      "Depth of the goal node of successful searches.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	for _, m := range []prometheus.Collector{c.checkpoints, c.frontier, c.generated, c.searches, c.depth} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Observe implements search.Observer.
func (c *Collector) Observe(ev search.Event) error {
	c.checkpoints.WithLabelValues(ev.Checkpoint.String()).Inc()
	c.frontier.Set(float64(len(ev.Frontier)))
	c.generated.Set(float64(ev.Stats.Generated))

	switch ev.Checkpoint {
	case search.CheckpointGoal:
		c.searches.WithLabelValues(OutcomeGoal).Inc()
		if ev.Tree != nil && ev.Node != search.NoNode {
			c.depth.Observe(float64(ev.Tree.Depth(ev.Node)))
		}
	case search.CheckpointExhausted:
		c.searches.WithLabelValues(OutcomeExhausted).Inc()
	}

	return nil
}

// WriteText writes every metric family gathered from g to w in the text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
