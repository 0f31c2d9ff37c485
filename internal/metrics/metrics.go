// Package metrics holds the relay's Prometheus collectors.
//
// Labels are limited to the intent kind, so cardinality stays bounded no
// matter how many users or topics exist.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "feedback"

type Metrics struct {
	// Forwarded counts user messages forwarded into topics.
	Forwarded prometheus.Counter
	// Copied counts staff replies copied to users.
	Copied prometheus.Counter
	Edited prometheus.Counter
	// Deleted counts replies removed on both sides.
	Deleted prometheus.Counter

	TopicsCreated   prometheus.Counter
	TopicsRecreated prometheus.Counter
	// Conflicts counts optimistic updates rejected on a version mismatch.
	Conflicts prometheus.Counter

	Updates        *prometheus.CounterVec
	UpdateErrors   *prometheus.CounterVec
	UpdateDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}

	m := &Metrics{
		Forwarded:       counter("messages_forwarded_total", "User messages forwarded to the feedback chat."),
		Copied:          counter("messages_copied_total", "Staff replies copied to users."),
		Edited:          counter("messages_edited_total", "Staff reply edits propagated to users."),
		Deleted:         counter("messages_deleted_total", "Replies deleted on both sides."),
		TopicsCreated:   counter("topics_created_total", "Forum topics created for new users."),
		TopicsRecreated: counter("topics_recreated_total", "Forum topics recreated after the chat lost them."),
		Conflicts:       counter("version_conflicts_total", "Optimistic updates rejected on a version mismatch."),
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "updates_total",
				Help:      "Classified updates by intent.",
			},
			[]string{"intent"},
		),
		UpdateErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "update_errors_total",
				Help:      "Updates whose handling failed, by intent.",
			},
			[]string{"intent"},
		),
		UpdateDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "update_duration_seconds",
				Help:      "Time spent handling an update, by intent.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"intent"},
		),
	}

	reg.MustRegister(
		m.Forwarded,
		m.Copied,
		m.Edited,
		m.Deleted,
		m.TopicsCreated,
		m.TopicsRecreated,
		m.Conflicts,
		m.Updates,
		m.UpdateErrors,
		m.UpdateDuration,
	)

	return m
}

// NewNop returns collectors that are not registered anywhere.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
