package perf

import (
	"expvar"
	"net/http"

	"github.com/encodeous/metric"
)

var (
	RunLatency        = metric.NewHistogram("1m1s")
	MessagesProcessed = metric.NewCounter("10s1s")
	UpdatesDropped    = metric.NewCounter("10s1s")
	Announcements     = metric.NewCounter("10s1s")
)

func init() {
	http.Handle("/debug/metrics", metric.Handler(metric.Exposed))
	expvar.Publish("lotus:MessagesProcessed/s", MessagesProcessed)
	expvar.Publish("lotus:UpdatesDropped/s", UpdatesDropped)
	expvar.Publish("lotus:Announcements/s", Announcements)
	expvar.Publish("lotus:RunLatency (µs)", RunLatency)
}
