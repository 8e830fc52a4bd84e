package reindex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTrackerReportsAtIntervals(t *testing.T) {
	var buf strings.Builder
	tracker := NewProgressTracker(&buf, 100, 25)
	tracker.Start()

	tracker.Update(10) // below the interval, no report yet
	assert.Empty(t, buf.String())

	tracker.Update(30)
	assert.Contains(t, buf.String(), "30/100")

	tracker.Finish()
	assert.Contains(t, buf.String(), "100/100")
	assert.Contains(t, buf.String(), "100.0%")
}

func TestProgressTrackerCapsAtTotal(t *testing.T) {
	var buf strings.Builder
	tracker := NewProgressTracker(&buf, 10, 1)
	tracker.Start()

	tracker.Update(15)
	assert.Contains(t, buf.String(), "10/10")
}

func TestProgressTrackerIgnoresUpdatesBeforeStart(t *testing.T) {
	var buf strings.Builder
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Update(5)
	tracker.Finish()
	assert.Empty(t, buf.String())
	assert.Zero(t, tracker.Elapsed())
}
