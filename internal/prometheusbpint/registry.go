// Package prometheusbpint holds the Prometheus registerer shared by the
// packages of this module.
package prometheusbpint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GlobalRegistry should be used to register all metrics from this module.
//
// Every metric registered through it carries a twister_go label,
// so they are easy to tell apart from the metrics of the embedding service.
var GlobalRegistry = prometheus.WrapRegistererWith(prometheus.Labels{
	"twister_go": "v0",
}, prometheus.DefaultRegisterer)
