package telemetry

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/grafana/pyroscope-go"
)

// Label keys used when tagging profiles. Pyroscope indexes every value, so
// keys stay coarse: handler names, routes, operations, billing periods.
const (
	ProfilingLabelController = "controller"
	ProfilingLabelRoute      = "route"
	ProfilingLabelMethod     = "method"
	ProfilingLabelOperation  = "operation"
	ProfilingLabelPeriod     = "period"
)

// maxLabelValueLength caps label values so a runaway route or operation name
// cannot blow up profile cardinality.
const maxLabelValueLength = 128

// highCardinalityLabels are keys sanitizeLabels silently drops. Each of
// these grows without bound over a deployment's lifetime. period is absent
// on purpose: twelve values a year is fine.
var highCardinalityLabels = map[string]bool{
	"user_id":      true,
	"request_id":   true,
	"statement_id": true,
	"customer_id":  true,
	"trace_id":     true,
	"span_id":      true,
	"session_id":   true,
}

// WithProfilingLabels runs fn with the given labels attached to its profile
// samples. The labels map is copied up front, so callers may reuse it.
// Invalid or high-cardinality entries are dropped rather than rejected; with
// nothing left fn simply runs unlabeled.
func WithProfilingLabels(ctx context.Context, labels map[string]string, fn func(context.Context)) {
	pairs := sanitizeLabels(labels)
	if len(pairs) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(pairs...), fn)
}

// HTTPRequestLabels builds the label set the profiling middleware attaches
// to each request. Empty components are left out.
func HTTPRequestLabels(controller, route, method string) map[string]string {
	labels := make(map[string]string, 3)
	if controller != "" {
		labels[ProfilingLabelController] = controller
	}
	if route != "" {
		labels[ProfilingLabelRoute] = route
	}
	if method != "" {
		labels[ProfilingLabelMethod] = method
	}
	return labels
}

// StatementOperationLabels builds labels for a statement operation scoped to
// a billing period. period is "YYYY-MM", matching the statement period key.
func StatementOperationLabels(operation, period string) map[string]string {
	return map[string]string{
		ProfilingLabelOperation: operation,
		ProfilingLabelPeriod:    period,
	}
}

// sanitizeLabels turns a label map into the flat, deterministic key-value
// slice pyroscope.Labels expects. Empty and high-cardinality entries are
// dropped, keys are normalized to snake_case, and values truncated to
// maxLabelValueLength.
func sanitizeLabels(labels map[string]string) []string {
	if len(labels) == 0 {
		return nil
	}

	keys := slices.Sorted(maps.Keys(labels))

	pairs := make([]string, 0, len(labels)*2)
	for _, key := range keys {
		value := labels[key]
		if key == "" || value == "" || highCardinalityLabels[key] {
			continue
		}
		if len(value) > maxLabelValueLength {
			value = value[:maxLabelValueLength]
		}

		key = sanitizeLabelKey(key)
		if key == "" {
			continue
		}
		pairs = append(pairs, key, value)
	}
	if len(pairs) == 0 {
		return nil
	}
	return pairs
}

// sanitizeLabelKey normalizes a key to snake_case ASCII. Spaces and hyphens
// become underscores, anything else outside [a-z0-9_] is removed.
func sanitizeLabelKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r == ' ', r == '-':
			return '_'
		default:
			return -1
		}
	}, strings.ToLower(key))
}
