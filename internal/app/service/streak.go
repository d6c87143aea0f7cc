package service

import "time"

// DistinctDays collapses solve timestamps to distinct midnight-normalized
// calendar days in loc, most recent first. Input must already be sorted
// most recent first.
func DistinctDays(dates []time.Time, loc *time.Location) []time.Time {
	var days []time.Time
	for _, d := range dates {
		day := truncateToDay(d.In(loc))
		if len(days) > 0 && days[len(days)-1].Equal(day) {
			continue
		}
		days = append(days, day)
	}
	return days
}

// CalculateStreak counts the consecutive calendar days ending at today or
// yesterday on which at least one question was solved. days must be
// distinct midnight-normalized days sorted most recent first, and today
// must be midnight-normalized in the same location.
//
// A solve exactly one day ago keeps the streak alive; the streak only
// breaks once a full day is skipped.
func CalculateStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	mostRecent := days[0]
	if !mostRecent.Equal(today) && !mostRecent.Equal(today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// truncateToDay normalizes t to midnight in its own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
