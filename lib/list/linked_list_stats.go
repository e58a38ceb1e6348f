package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	LinkedListStatsName = "xlist"

	statsAttrOp  = "xlist.op"
	statsAttrErr = "xlist.err"

	statsErrOutOfRange = "out_of_range"
	statsErrEmpty      = "empty"
	statsErrUnknown    = "unknown"
)

// linkedListStats records nothing if it is nil.
type linkedListStats struct {
	length         metric.Int64UpDownCounter
	opCount        metric.Int64Counter
	opFailedCount  metric.Int64Counter
	traversalSteps metric.Int64Histogram
}

func (stats *linkedListStats) RecordOp(op linkedListOp) {
	if stats == nil {
		return
	}
	stats.opCount.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(statsAttrOp, op.String())),
	)
}

func (stats *linkedListStats) RecordLen(delta int64) {
	if stats == nil {
		return
	}
	stats.length.Add(context.Background(), delta)
}

func (stats *linkedListStats) RecordFailure(op linkedListOp, err error) {
	if stats == nil || err == nil {
		return
	}
	reason := statsErrUnknown
	switch {
	case errors.Is(err, ErrOutOfRange):
		reason = statsErrOutOfRange
	case errors.Is(err, ErrEmptyCollection):
		reason = statsErrEmpty
	}
	stats.opFailedCount.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(statsAttrOp, op.String()),
			attribute.String(statsAttrErr, reason),
		),
	)
}

func (stats *linkedListStats) RecordTraversal(steps int64) {
	if stats == nil {
		return
	}
	stats.traversalSteps.Record(context.Background(), steps)
}

func newLinkedListStats(mp metric.MeterProvider, name string) *linkedListStats {
	meterName := fmt.Sprintf("%s/%s", LinkedListStatsName, name)
	meter := mp.Meter(meterName)
	return &linkedListStats{
		length: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"xlist.len",
				metric.WithDescription("The number of nodes in the linked list."),
			),
		),
		opCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"xlist.op.count",
				metric.WithDescription("The number of linked list operations."),
			),
		),
		opFailedCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"xlist.op.failed.count",
				metric.WithDescription("The number of rejected linked list operations."),
			),
		),
		traversalSteps: lo.Must[metric.Int64Histogram](meter.
			Int64Histogram(
				"xlist.traversal.steps",
				metric.WithDescription("The number of nodes visited to locate a position."),
			),
		),
	}
}
