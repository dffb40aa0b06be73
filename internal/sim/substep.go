package sim

import "math"

// planSubSteps decomposes a requested frame advance into equal sub-steps no
// larger than ceiling days each, capped at maxSubSteps integrator calls.
// The cap trades accuracy for bounded per-frame work: beyond it, sub-steps
// grow instead of multiplying.
func planSubSteps(requestedDt, ceiling float64, maxSubSteps int) (count int, subDt float64) {
	// The small backoff keeps exact multiples (5.4 / 0.9) from rounding up
	// to an extra sub-step.
	count = int(math.Ceil(requestedDt/ceiling - 1e-9))
	if count < 1 {
		count = 1
	}
	if count > maxSubSteps {
		count = maxSubSteps
	}
	return count, requestedDt / float64(count)
}
