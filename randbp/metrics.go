package randbp

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reddit/twister.go/internal/prometheusbpint"
)

const (
	profileLabel = "profile"
	seededLabel  = "seeded"
	opLabel      = "op"
)

var (
	createdLabels = []string{
		profileLabel,
		seededLabel,
	}

	generatorsCreated = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "randbp_generators_created_total",
		Help: "Total generators created, by profile and whether an explicit seed was given",
	}, createdLabels)

	sharedDraws = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "randbp_shared_draws_total",
		Help: "Total draws from the shared generator, by operation",
	}, []string{opLabel})

	seedFallbacks = promauto.With(prometheusbpint.GlobalRegistry).NewCounter(prometheus.CounterOpts{
		Name: "randbp_seed_fallback_total",
		Help: "Total times reading seed entropy from crypto/rand failed and the current time was mixed in instead",
	})
)

var (
	localInUseDesc = prometheus.NewDesc(
		"randbp_local_in_use",
		"Generators currently borrowed from a per-profile pool",
		[]string{profileLabel},
		nil,
	)
	localInUseMaxDesc = prometheus.NewDesc(
		"randbp_local_in_use_max",
		"High watermark of generators borrowed from a per-profile pool",
		[]string{profileLabel},
		nil,
	)
)

func recordCreated(p Profile, seeded bool) {
	generatorsCreated.WithLabelValues(p.String(), strconv.FormatBool(seeded)).Inc()
}

// Values of the op label of randbp_shared_draws_total.
const (
	opInt      = "int"
	opIntN     = "intn"
	opIntRange = "intrange"
	opFloat64  = "float64"
	opRead     = "read"
)
