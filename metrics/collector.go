// Package metrics exposes bitmaprange windows as Prometheus gauges, the
// way the teacher's plugin/prometheus exposes server stats.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Al3x4n/Fast-DDS/pkg/bitmaprange"
	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

const metricPrefix = "bitmaprange_"

// Window is the narrow view a Collector needs from a BitmapRange; it
// lets callers register windows without exposing Add/BaseUpdate here.
type Window interface {
	Base() seqnum.SequenceNumber
	NumBits() uint32
	Empty() bool
}

var _ Window = (*bitmaprange.BitmapRange[seqnum.SequenceNumber])(nil)

var _ prometheus.Collector = (*Collector)(nil)

// Collector is a prometheus.Collector over a named set of windows,
// typically one per reader or writer GUID.
type Collector struct {
	mu      sync.RWMutex
	windows map[string]Window
}

// New returns an empty Collector. Register it with
// prometheus.DefaultRegisterer.MustRegister(c) the way plugin/prometheus
// registers the Prometheus plugin.
func New() *Collector {
	return &Collector{windows: make(map[string]Window)}
}

// Set registers or replaces the window tracked under owner.
func (c *Collector) Set(owner string, w Window) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.windows[owner] = w
}

// Remove stops tracking owner.
func (c *Collector) Remove(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.windows, owner)
}

func (c *Collector) Describe(desc chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, desc)
}

func (c *Collector) Collect(m chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for owner, w := range c.windows {
		collectWindow(owner, w, m)
	}
}

// collectWindow emits the watermark-derived gauges for one window.
// NumBits() is the watermark itself -- callers needing the exact highest
// acknowledged sequence number should read the snapshot API directly
// rather than trust this gauge's precision.
func collectWindow(owner string, w Window, m chan<- prometheus.Metric) {
	m <- prometheus.MustNewConstMetric(
		prometheus.NewDesc(metricPrefix+"base", "", []string{"owner"}, nil),
		prometheus.GaugeValue,
		float64(w.Base()), owner,
	)
	m <- prometheus.MustNewConstMetric(
		prometheus.NewDesc(metricPrefix+"num_bits", "", []string{"owner"}, nil),
		prometheus.GaugeValue,
		float64(w.NumBits()), owner,
	)
	empty := 0.0
	if w.Empty() {
		empty = 1.0
	}
	m <- prometheus.MustNewConstMetric(
		prometheus.NewDesc(metricPrefix+"empty", "", []string{"owner"}, nil),
		prometheus.GaugeValue,
		empty, owner,
	)
}
