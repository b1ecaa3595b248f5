package model

// DateLayout is the calendar-day format used for streak bookkeeping.
const DateLayout = "2006-01-02"

// MaxActiveDays caps the per-user activity window.
const MaxActiveDays = 30

// StreakRecord tracks a user's consecutive-day activity. ActiveDays holds
// the most recent distinct calendar days (DateLayout strings, ascending),
// truncated to MaxActiveDays.
// swagger:model StreakRecord
type StreakRecord struct {
	Username       string   `json:"username"`
	CurrentStreak  int      `json:"current_streak"`
	LongestStreak  int      `json:"longest_streak"`
	LastActiveDate string   `json:"last_active_date,omitempty"`
	ActiveDays     []string `json:"active_days"`
}

// HasDay reports whether the given day is already recorded.
func (s StreakRecord) HasDay(day string) bool {
	for _, d := range s.ActiveDays {
		if d == day {
			return true
		}
	}
	return false
}
