/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package batching

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ARM-software/golang-batchqueue/commonerrors"
)

const (
	metricsNamespace = "batchqueue"

	labelOutcome     = "outcome"
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

// Metrics exposes the activity of a Batcher to prometheus. A nil *Metrics records nothing.
type Metrics struct {
	itemsEnqueued  prometheus.Counter
	batches        *prometheus.CounterVec
	partialBatches prometheus.Counter
	batchSize      prometheus.Histogram
	queueLength    prometheus.Gauge
}

// NewMetrics creates the batching metrics and registers them.
// If collectors with the same description are already registered, they are reused.
func NewMetrics(registerer prometheus.Registerer) (m *Metrics, err error) {
	if registerer == nil {
		err = commonerrors.UndefinedVariable("prometheus registerer")
		return
	}
	m = &Metrics{
		itemsEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "items_enqueued_total",
			Help:      "Total number of elements submitted to the queue.",
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "batches_total",
			Help:      "Total number of batches pulled from the queue, by delivery outcome.",
		}, []string{labelOutcome}),
		partialBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "partial_batches_total",
			Help:      "Total number of batches released by the flush timeout before reaching the minimum batch size.",
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "batch_size",
			Help:      "Number of elements per batch.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		queueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "queue_length",
			Help:      "Current number of elements buffered in the queue.",
		}),
	}
	m.itemsEnqueued, err = register(registerer, m.itemsEnqueued)
	if err != nil {
		return
	}
	m.batches, err = register(registerer, m.batches)
	if err != nil {
		return
	}
	m.partialBatches, err = register(registerer, m.partialBatches)
	if err != nil {
		return
	}
	m.batchSize, err = register(registerer, m.batchSize)
	if err != nil {
		return
	}
	m.queueLength, err = register(registerer, m.queueLength)
	return
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) (C, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}
	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return collector, commonerrors.WrapError(commonerrors.ErrConflict, err, "could not register metric")
}

// ItemsEnqueued records elements being submitted to the queue.
func (m *Metrics) ItemsEnqueued(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.itemsEnqueued.Add(float64(count))
}

// BatchProcessed records the outcome of a batch delivery.
func (m *Metrics) BatchProcessed(size int, partial bool, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeDelivered
	if err != nil {
		outcome = OutcomeFailed
	}
	m.batches.WithLabelValues(outcome).Inc()
	if partial {
		m.partialBatches.Inc()
	}
	m.batchSize.Observe(float64(size))
}

// SetQueueLength records the number of buffered elements.
func (m *Metrics) SetQueueLength(length int) {
	if m == nil {
		return
	}
	m.queueLength.Set(float64(length))
}
