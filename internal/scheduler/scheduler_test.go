package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"codeberg.org/mutker/argonctl/internal/scheduler"
)

func TestNotDueBeforeInterval(t *testing.T) {
	t0 := time.Now()
	s := scheduler.New(t0, 100*time.Second)

	assert.False(t, s.Update(t0))
	assert.False(t, s.Update(t0.Add(50*time.Second)))
}

func TestDueAfterInterval(t *testing.T) {
	t0 := time.Now()
	s := scheduler.New(t0, 100*time.Second)

	assert.True(t, s.Update(t0.Add(150*time.Second)))
}

func TestDueTickConsumesInterval(t *testing.T) {
	t0 := time.Now()
	s := scheduler.New(t0, 100*time.Second)

	t1 := t0.Add(150 * time.Second)
	assert.True(t, s.Update(t1))
	assert.False(t, s.Update(t1.Add(10*time.Second)))
	assert.True(t, s.Update(t1.Add(100*time.Second)))
}

func TestWaitingDoesNotAdvanceReference(t *testing.T) {
	t0 := time.Now()
	s := scheduler.New(t0, 100*time.Second)

	// Repeated waiting polls must not push the due point further out
	assert.False(t, s.Update(t0.Add(40*time.Second)))
	assert.False(t, s.Update(t0.Add(80*time.Second)))
	assert.True(t, s.Update(t0.Add(100*time.Second)))
}

func TestBackwardsTimeResets(t *testing.T) {
	t0 := time.Now()
	s := scheduler.New(t0, 100*time.Second)

	past := t0.Add(-time.Hour)
	assert.False(t, s.Update(past))

	// The reference point moved to the regressed instant, so the next
	// tick is measured from there
	assert.False(t, s.Update(past.Add(50*time.Second)))
	assert.True(t, s.Update(past.Add(100*time.Second)))
}
