// Package metrics counts controller events in a private Prometheus registry
// and can expose them over HTTP on a local address.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/julianstephens/auragenie/internal/app"
	"github.com/julianstephens/auragenie/internal/constants"
	"github.com/julianstephens/auragenie/internal/logger"
)

type Collector struct {
	registry       *prometheus.Registry
	moodChanges    *prometheus.CounterVec
	tabSwitches    *prometheus.CounterVec
	goalsAdded     prometheus.Counter
	goalsCompleted prometheus.Counter
	healthUpdates  *prometheus.CounterVec
	chatMessages   *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		moodChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.AppName,
				Name:      "mood_changes_total",
				Help:      "Mood selections by mood",
			},
			[]string{"mood"},
		),
		tabSwitches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.AppName,
				Name:      "tab_switches_total",
				Help:      "Navigation changes by destination tab",
			},
			[]string{"tab"},
		),
		goalsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: constants.AppName,
			Name:      "goals_added_total",
			Help:      "Goals created",
		}),
		goalsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: constants.AppName,
			Name:      "goals_completed_total",
			Help:      "Incomplete to complete goal transitions",
		}),
		healthUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.AppName,
				Name:      "health_updates_total",
				Help:      "Health metric updates by metric",
			},
			[]string{"metric"},
		),
		chatMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.AppName,
				Name:      "chat_messages_total",
				Help:      "Chat messages appended by role",
			},
			[]string{"role"},
		),
	}
	c.registry.MustRegister(
		c.moodChanges,
		c.tabSwitches,
		c.goalsAdded,
		c.goalsCompleted,
		c.healthUpdates,
		c.chatMessages,
	)
	return c
}

// Attach subscribes the collector to ctrl and returns the unsubscribe func
func (c *Collector) Attach(ctrl *app.Controller) func() {
	return ctrl.Subscribe(c.Observe)
}

// Observe records a single controller event
func (c *Collector) Observe(ev app.Event) {
	switch ev.Kind {
	case app.EventMoodChanged:
		c.moodChanges.WithLabelValues(string(ev.Mood)).Inc()
	case app.EventTabChanged:
		c.tabSwitches.WithLabelValues(string(ev.Tab)).Inc()
	case app.EventGoalAdded:
		c.goalsAdded.Inc()
	case app.EventGoalToggled:
		if ev.Goal.Completed {
			c.goalsCompleted.Inc()
		}
	case app.EventHealthUpdated:
		c.healthUpdates.WithLabelValues(string(ev.HealthKey)).Inc()
	}
	for _, msg := range ev.Messages {
		c.chatMessages.WithLabelValues(string(msg.Role)).Inc()
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes the registry on addr until ctx is cancelled
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(constants.MetricsPath, c.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "addr", addr, "path", constants.MetricsPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
