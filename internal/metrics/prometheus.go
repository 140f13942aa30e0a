// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "slotguard_slots"

// Prometheus records the slot state activity as prometheus metrics.
type Prometheus struct {
	checked        prometheus.Counter
	equivocations  prometheus.Counter
	slotsPruned    prometheus.Counter
	firstSavedSlot prometheus.Gauge
}

// NewPrometheus creates the slot state metrics and registers them
// on the given registerer. Metrics already registered are reused.
func NewPrometheus(registerer prometheus.Registerer) (metrics *Prometheus, err error) {
	metrics = &Prometheus{
		checked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checked_total",
			Help:      "total number of headers checked for equivocation",
		}),
		equivocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "equivocations_total",
			Help:      "total number of equivocations detected",
		}),
		slotsPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pruned_total",
			Help:      "total number of slots pruned from the database",
		}),
		firstSavedSlot: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "first_saved",
			Help:      "oldest slot which can still be in the database",
		}),
	}

	metrics.checked, err = registerCounter(registerer, "checked counter", metrics.checked)
	if err != nil {
		return nil, err
	}

	metrics.equivocations, err = registerCounter(registerer, "equivocations counter", metrics.equivocations)
	if err != nil {
		return nil, err
	}

	metrics.slotsPruned, err = registerCounter(registerer, "slots pruned counter", metrics.slotsPruned)
	if err != nil {
		return nil, err
	}

	err = registerer.Register(metrics.firstSavedSlot)
	if err != nil {
		alreadyRegistered := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &alreadyRegistered) {
			return nil, fmt.Errorf("cannot register first saved slot gauge: %w", err)
		}
		metrics.firstSavedSlot = alreadyRegistered.ExistingCollector.(prometheus.Gauge)
	}

	return metrics, nil
}

func registerCounter(registerer prometheus.Registerer, name string,
	counter prometheus.Counter) (registered prometheus.Counter, err error) {
	err = registerer.Register(counter)
	if err == nil {
		return counter, nil
	}

	alreadyRegistered := prometheus.AlreadyRegisteredError{}
	if !errors.As(err, &alreadyRegistered) {
		return nil, fmt.Errorf("cannot register %s: %w", name, err)
	}
	return alreadyRegistered.ExistingCollector.(prometheus.Counter), nil
}

// Checked increments the checked headers counter.
func (m *Prometheus) Checked() {
	m.checked.Inc()
}

// EquivocationDetected increments the equivocations counter.
func (m *Prometheus) EquivocationDetected() {
	m.equivocations.Inc()
}

// SlotsPruned adds count to the pruned slots counter.
func (m *Prometheus) SlotsPruned(count uint64) {
	m.slotsPruned.Add(float64(count))
}

// FirstSavedSlotSet sets the first saved slot gauge.
func (m *Prometheus) FirstSavedSlotSet(slot uint64) {
	m.firstSavedSlot.Set(float64(slot))
}

// Noop discards all metrics.
type Noop struct{}

func (Noop) Checked()                 {}
func (Noop) EquivocationDetected()    {}
func (Noop) SlotsPruned(uint64)       {}
func (Noop) FirstSavedSlotSet(uint64) {}
