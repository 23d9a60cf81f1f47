package rawmem

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSource is anything that can snapshot allocator statistics.
type MetricsSource interface {
	Metrics() Metrics
}

// Collector exports allocator statistics as Prometheus metrics.
type Collector struct {
	src MetricsSource

	bytesInUse  *prometheus.Desc
	reserved    *prometheus.Desc
	peakInUse   *prometheus.Desc
	liveBlocks  *prometheus.Desc
	allocations *prometheus.Desc
	frees       *prometheus.Desc
}

// NewCollector returns a collector reading from src on every scrape.
func NewCollector(src MetricsSource) *Collector {
	return &Collector{
		src: src,
		bytesInUse: prometheus.NewDesc("nostl_rawmem_bytes_in_use",
			"Bytes requested by live raw blocks.", nil, nil),
		reserved: prometheus.NewDesc("nostl_rawmem_bytes_reserved",
			"Bytes held for live raw blocks, alignment included.", nil, nil),
		peakInUse: prometheus.NewDesc("nostl_rawmem_peak_bytes_in_use",
			"High-water mark of bytes in use.", nil, nil),
		liveBlocks: prometheus.NewDesc("nostl_rawmem_live_blocks",
			"Raw blocks allocated and not yet freed.", nil, nil),
		allocations: prometheus.NewDesc("nostl_rawmem_allocations_total",
			"Raw blocks ever allocated.", nil, nil),
		frees: prometheus.NewDesc("nostl_rawmem_frees_total",
			"Raw blocks ever freed.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesInUse
	ch <- c.reserved
	ch <- c.peakInUse
	ch <- c.liveBlocks
	ch <- c.allocations
	ch <- c.frees
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.bytesInUse, prometheus.GaugeValue, float64(m.BytesInUse))
	ch <- prometheus.MustNewConstMetric(c.reserved, prometheus.GaugeValue, float64(m.BytesReserved))
	ch <- prometheus.MustNewConstMetric(c.peakInUse, prometheus.GaugeValue, float64(m.PeakBytesInUse))
	ch <- prometheus.MustNewConstMetric(c.liveBlocks, prometheus.GaugeValue, float64(m.LiveBlocks))
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(m.Allocations))
	ch <- prometheus.MustNewConstMetric(c.frees, prometheus.CounterValue, float64(m.Frees))
}
