package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRun_BeforeHourRunsSameDay(t *testing.T) {
	now := time.Date(2026, time.March, 10, 6, 30, 0, 0, time.UTC)

	run := nextRun(now, 8)

	assert.Equal(t, time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC), run)
}

func TestNextRun_AfterHourRunsNextDay(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	run := nextRun(now, 8)

	assert.Equal(t, time.Date(2026, time.March, 11, 8, 0, 0, 0, time.UTC), run)
}

func TestNextRun_ExactlyAtHourRunsNextDay(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	run := nextRun(now, 8)

	assert.Equal(t, time.Date(2026, time.March, 11, 8, 0, 0, 0, time.UTC), run)
}

func TestNextRun_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, time.March, 10, 23, 59, 0, 0, loc)

	run := nextRun(now, 8)

	assert.Equal(t, time.Date(2026, time.March, 11, 8, 0, 0, 0, loc), run)
}
