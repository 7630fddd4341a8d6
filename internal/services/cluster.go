package services

import (
	"fmt"
	"slices"
	"time"
)

// ClusterArrivals groups temporally close arrival instants into
// rendezvous windows and returns one mean instant per window, in
// chronological order.
//
// The walk is chained: an instant joins the open cluster when its gap
// to the previous instant in sort order (not the cluster's first
// member) is at most maxGapMinutes. A cluster's total span may
// therefore exceed maxGapMinutes once it has three or more members;
// callers rely on this adjacent-gap semantics. The gap comparison is
// inclusive: a gap of exactly maxGapMinutes stays in the cluster.
func ClusterArrivals(arrivals []time.Time, maxGapMinutes int) ([]time.Time, error) {
	if maxGapMinutes <= 0 {
		return nil, fmt.Errorf("cluster arrivals: maxGapMinutes must be positive, got %d: %w", maxGapMinutes, ErrInvalidInput)
	}

	if len(arrivals) == 0 {
		return []time.Time{}, nil
	}

	sorted := slices.Clone(arrivals)
	slices.SortFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })

	maxGap := time.Duration(maxGapMinutes) * time.Minute

	windows := make([]time.Time, 0, 1)
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || sorted[i].Sub(sorted[i-1]) > maxGap {
			windows = append(windows, meanInstant(sorted[start:i]))
			start = i
		}
	}

	return windows, nil
}

// meanInstant averages instants by accumulating millisecond deltas
// against the first member. Deltas are bounded by the cluster span, so
// the accumulation stays far from int64 overflow even for very large
// groups, unlike summing raw epoch values.
func meanInstant(members []time.Time) time.Time {
	base := members[0]

	var sum int64
	for _, m := range members {
		sum += m.Sub(base).Milliseconds()
	}

	return base.Add(time.Duration(sum/int64(len(members))) * time.Millisecond)
}
