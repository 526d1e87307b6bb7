// Package metrics defines and registers all custom Prometheus metrics for
// the recipebook API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recipebook"

// RecipesCreatedTotal counts recipes accepted by the create endpoint.
// Label:
//   - difficulty: "easy", "medium", or "hard"
var RecipesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_created_total",
		Help:      "Total number of recipes created, by difficulty.",
	},
	[]string{"difficulty"},
)

// RecipesDeletedTotal counts recipes removed through the delete endpoint.
var RecipesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_deleted_total",
		Help:      "Total number of recipes deleted.",
	},
)

// RecipeValidationFailuresTotal counts recipe requests rejected by
// validation: create/update payloads and list filter parameters alike.
var RecipeValidationFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipe_validation_failures_total",
		Help:      "Total number of recipe requests rejected by validation.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered user accounts.",
	},
)
