package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BundleMetrics tracks bundle lifecycle activity: proposals, executed
// leaves, disputes and reconciliation latency.
type BundleMetrics struct {
	opts metric.MeasurementOption

	proposedCounter         metric.Int64Counter
	executedLeavesCounter   metric.Int64Counter
	rootMismatchCounter     metric.Int64Counter
	reconciliationHistogram metric.Float64Histogram
}

func NewBundleMetrics(meter metric.Meter, env, id string) (*BundleMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("instance", id),
	)

	proposedCounter, err := meter.Int64Counter(
		"dataworker.ProposedBundles",
		metric.WithDescription("Number of root bundles proposed to the hub"),
	)
	if err != nil {
		return nil, err
	}

	executedLeavesCounter, err := meter.Int64Counter(
		"dataworker.ExecutedLeaves",
		metric.WithDescription("Number of settlement leaves executed per root type"),
	)
	if err != nil {
		return nil, err
	}

	rootMismatchCounter, err := meter.Int64Counter(
		"dataworker.RootMismatches",
		metric.WithDescription("Number of validated proposals with diverging roots"),
	)
	if err != nil {
		return nil, err
	}

	reconciliationHistogram, err := meter.Float64Histogram(
		"dataworker.ReconciliationTime",
		metric.WithDescription("Duration of full reconciliation passes in seconds"),
	)
	if err != nil {
		return nil, err
	}

	return &BundleMetrics{
		opts:                    opts,
		proposedCounter:         proposedCounter,
		executedLeavesCounter:   executedLeavesCounter,
		rootMismatchCounter:     rootMismatchCounter,
		reconciliationHistogram: reconciliationHistogram,
	}, nil
}

func (m *BundleMetrics) BundleProposed() {
	m.proposedCounter.Add(context.Background(), 1, m.opts)
}

func (m *BundleMetrics) LeafExecuted(rootType string) {
	m.executedLeavesCounter.Add(context.Background(), 1, m.opts, metric.WithAttributes(attribute.String("root", rootType)))
}

func (m *BundleMetrics) RootMismatch(rootType string) {
	m.rootMismatchCounter.Add(context.Background(), 1, m.opts, metric.WithAttributes(attribute.String("root", rootType)))
}

func (m *BundleMetrics) ObserveReconciliation(duration time.Duration) {
	m.reconciliationHistogram.Record(context.Background(), duration.Seconds(), m.opts)
}
