// Package metrics exports [mpsc.Stats] snapshots as Prometheus metrics.
//
//	tx, rx := mpsc.New[Job](64, mpsc.WithName("jobs"))
//	prometheus.MustRegister(metrics.NewCollector("jobs", rx))
//
// Values are read at scrape time, so nothing is recorded on the send or
// receive path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/baxromumarov/mpsc"
)

// StatsSource is satisfied by [mpsc.Sender] and [mpsc.Receiver].
type StatsSource interface {
	Stats() mpsc.Stats
}

type descs struct {
	capacity  *prometheus.Desc
	buffered  *prometheus.Desc
	available *prometheus.Desc
	reserved  *prometheus.Desc
	parked    *prometheus.Desc
	senders   *prometheus.Desc
	closed    *prometheus.Desc
	sent      *prometheus.Desc
	received  *prometheus.Desc
	rejected  *prometheus.Desc
}

func newDescs(name string) descs {
	labels := prometheus.Labels{"channel": name}
	desc := func(fqName, help string) *prometheus.Desc {
		return prometheus.NewDesc(fqName, help, nil, labels)
	}

	return descs{
		capacity:  desc("mpsc_capacity", "Fixed capacity of the channel."),
		buffered:  desc("mpsc_buffered", "Values waiting for the receiver."),
		available: desc("mpsc_available_permits", "Permits free to reserve."),
		reserved:  desc("mpsc_reserved_permits", "Permits held by senders but not yet used."),
		parked:    desc("mpsc_parked_senders", "Senders waiting for a permit."),
		senders:   desc("mpsc_senders", "Live sender handles."),
		closed:    desc("mpsc_closed", "1 if the channel no longer grants reservations."),
		sent:      desc("mpsc_sent_total", "Values admitted to the channel."),
		received:  desc("mpsc_received_total", "Values taken by the receiver."),
		rejected:  desc("mpsc_rejected_total", "Non-waiting sends refused because the channel was full."),
	}
}

func (d *descs) all() []*prometheus.Desc {
	return []*prometheus.Desc{
		d.capacity, d.buffered, d.available, d.reserved, d.parked,
		d.senders, d.closed, d.sent, d.received, d.rejected,
	}
}

type collector struct {
	src StatsSource
	d   descs
}

var _ prometheus.Collector = &collector{}

// NewCollector returns a prometheus.Collector that reports src with the
// constant label channel=name. Register one collector per channel; two
// collectors with the same name conflict at registration.
func NewCollector(name string, src StatsSource) prometheus.Collector {
	return &collector{src: src, d: newDescs(name)}
}

// Describe implements the prometheus.Collector interface.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.d.all() {
		ch <- d
	}
}

// Collect implements the prometheus.Collector interface.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()

	gauge := func(d *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v)
	}
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}

	closed := 0.0
	if st.Closed {
		closed = 1
	}

	gauge(c.d.capacity, float64(st.Capacity))
	gauge(c.d.buffered, float64(st.Buffered))
	gauge(c.d.available, float64(st.Available))
	gauge(c.d.reserved, float64(st.Reserved))
	gauge(c.d.parked, float64(st.Parked))
	gauge(c.d.senders, float64(st.Senders))
	gauge(c.d.closed, closed)
	counter(c.d.sent, st.Sent)
	counter(c.d.received, st.Received)
	counter(c.d.rejected, st.Rejected)
}
