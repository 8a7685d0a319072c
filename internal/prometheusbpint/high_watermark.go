package prometheusbpint

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// HighWatermark is an int64 gauge that also remembers the highest value it
// ever had.
//
// The zero value is ready to use.
type HighWatermark struct {
	lock sync.Mutex
	curr int64
	max  int64
}

// Inc increases the current value by 1.
func (hw *HighWatermark) Inc() {
	hw.lock.Lock()
	defer hw.lock.Unlock()

	hw.curr++
	if hw.curr > hw.max {
		hw.max = hw.curr
	}
}

// Dec decreases the current value by 1.
func (hw *HighWatermark) Dec() {
	hw.lock.Lock()
	defer hw.lock.Unlock()

	hw.curr--
}

// Get returns the current value.
func (hw *HighWatermark) Get() int64 {
	curr, _ := hw.Snapshot()
	return curr
}

// Max returns the high watermark.
func (hw *HighWatermark) Max() int64 {
	_, max := hw.Snapshot()
	return max
}

// Snapshot returns both the current value and the high watermark,
// read together.
func (hw *HighWatermark) Snapshot() (curr, max int64) {
	hw.lock.Lock()
	defer hw.lock.Unlock()

	return hw.curr, hw.max
}

// HighWatermarkCollector reports a HighWatermark as two gauges when scraped.
//
// It's an unchecked collector,
// so several of them can share the same descs with different label values.
type HighWatermarkCollector struct {
	Value *HighWatermark

	CurrDesc    *prometheus.Desc
	MaxDesc     *prometheus.Desc
	LabelValues []string
}

var _ prometheus.Collector = HighWatermarkCollector{}

// Describe implements prometheus.Collector.
func (c HighWatermarkCollector) Describe(ch chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector.
func (c HighWatermarkCollector) Collect(ch chan<- prometheus.Metric) {
	curr, max := c.Value.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.CurrDesc, prometheus.GaugeValue, float64(curr), c.LabelValues...)
	ch <- prometheus.MustNewConstMetric(c.MaxDesc, prometheus.GaugeValue, float64(max), c.LabelValues...)
}
