// Package metrics defines the Prometheus instruments for domain operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ListsCreated counts successfully created lists.
	ListsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "superlists_lists_created_total",
		Help: "Number of lists created.",
	})

	// ItemsAdded counts items appended to existing lists.
	ItemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "superlists_items_added_total",
		Help: "Number of items added to existing lists.",
	})

	// ValidationFailures counts rejected item writes by reason
	// ("empty" or "duplicate").
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "superlists_item_validation_failures_total",
		Help: "Number of item writes rejected by validation.",
	}, []string{"reason"})

	// LoginEmailsSent counts issued login tokens handed to the mailer.
	LoginEmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "superlists_login_emails_sent_total",
		Help: "Number of login emails sent.",
	})

	// TokenRedemptions counts redemption attempts by outcome
	// ("ok" or "miss").
	TokenRedemptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "superlists_token_redemptions_total",
		Help: "Number of login token redemption attempts.",
	}, []string{"outcome"})
)
