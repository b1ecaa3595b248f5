package service

import (
	"testing"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streakFixture drives the service with a settable clock.
type streakFixture struct {
	svc *StreakService
	now time.Time
}

func newStreakFixture(t *testing.T) *streakFixture {
	t.Helper()
	f := &streakFixture{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	f.svc = NewStreakServiceWithClock(newTestStore(t), func() time.Time { return f.now })
	return f
}

func (f *streakFixture) advanceDays(n int) {
	f.now = f.now.AddDate(0, 0, n)
}

func TestRecordActivity_FirstDay(t *testing.T) {
	f := newStreakFixture(t)

	rec, err := f.svc.RecordActivity("alice")
	require.NoError(t, err)

	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 1, rec.LongestStreak)
	assert.Equal(t, "2025-03-10", rec.LastActiveDate)
	assert.Equal(t, []string{"2025-03-10"}, rec.ActiveDays)
}

func TestRecordActivity_SameDayIsNoOp(t *testing.T) {
	f := newStreakFixture(t)

	_, err := f.svc.RecordActivity("alice")
	require.NoError(t, err)
	rec, err := f.svc.RecordActivity("alice")
	require.NoError(t, err)

	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Len(t, rec.ActiveDays, 1)
}

func TestRecordActivity_ConsecutiveDayExtends(t *testing.T) {
	f := newStreakFixture(t)

	_, err := f.svc.RecordActivity("alice")
	require.NoError(t, err)
	f.advanceDays(1)
	rec, err := f.svc.RecordActivity("alice")
	require.NoError(t, err)

	assert.Equal(t, 2, rec.CurrentStreak)
	assert.Equal(t, 2, rec.LongestStreak)
	assert.Equal(t, []string{"2025-03-10", "2025-03-11"}, rec.ActiveDays)
}

func TestRecordActivity_GapResetsButKeepsLongest(t *testing.T) {
	f := newStreakFixture(t)

	_, err := f.svc.RecordActivity("alice")
	require.NoError(t, err)
	f.advanceDays(1)
	_, err = f.svc.RecordActivity("alice")
	require.NoError(t, err)

	f.advanceDays(3)
	rec, err := f.svc.RecordActivity("alice")
	require.NoError(t, err)

	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 2, rec.LongestStreak)
}

func TestRecordActivity_ActiveDaysCapped(t *testing.T) {
	f := newStreakFixture(t)

	var rec model.StreakRecord
	var err error
	for i := 0; i < model.MaxActiveDays+5; i++ {
		rec, err = f.svc.RecordActivity("alice")
		require.NoError(t, err)
		f.advanceDays(1)
	}

	assert.Len(t, rec.ActiveDays, model.MaxActiveDays)
	assert.Equal(t, model.MaxActiveDays+5, rec.CurrentStreak)
	// The window keeps the most recent days.
	assert.Equal(t, rec.LastActiveDate, rec.ActiveDays[len(rec.ActiveDays)-1])
}

func TestStreak_UnseenUserIsEmpty(t *testing.T) {
	f := newStreakFixture(t)

	rec := f.svc.Streak("nobody")
	assert.Equal(t, 0, rec.CurrentStreak)
	assert.Empty(t, rec.ActiveDays)
}
