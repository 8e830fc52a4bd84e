package assessment

import "github.com/learnmate/learnmate/core"

// trendWindow is how many recent scores participate in trend
// classification: the newest plus up to five before it.
const trendWindow = 6

// ClassifyTrend labels a learner's score history, oldest first. Only
// the last trendWindow scores count. Fewer than two scores is stable.
// With exactly two, any rise is improving and any fall is declining.
// From three on, the window must be monotonic with at least one strict
// step in the same direction; anything mixed or flat is stable.
func ClassifyTrend(history []float64) core.TrendLabel {
	if len(history) > trendWindow {
		history = history[len(history)-trendWindow:]
	}
	if len(history) < 2 {
		return core.TrendStable
	}

	if len(history) == 2 {
		switch {
		case history[1] > history[0]:
			return core.TrendImproving
		case history[1] < history[0]:
			return core.TrendDeclining
		default:
			return core.TrendStable
		}
	}

	rising, falling := true, true
	strictRise, strictFall := false, false
	for i := 1; i < len(history); i++ {
		switch {
		case history[i] > history[i-1]:
			falling = false
			strictRise = true
		case history[i] < history[i-1]:
			rising = false
			strictFall = true
		}
	}

	if rising && strictRise {
		return core.TrendImproving
	}
	if falling && strictFall {
		return core.TrendDeclining
	}
	return core.TrendStable
}
