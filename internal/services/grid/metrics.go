package grid

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gridsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_grids_active",
			Help: "Number of recipe grids currently held by the registry",
		},
	)

	gridsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_grids_evicted_total",
			Help: "Total number of idle recipe grids evicted",
		},
	)

	imageFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_grid_image_failures_total",
			Help: "Total number of distinct recipe image load failures reported",
		},
	)

	preferenceWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_grid_preference_writes_total",
			Help: "Total number of image visibility preference writes",
		},
		[]string{"outcome"},
	)
)
