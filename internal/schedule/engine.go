// Package schedule computes meeting dates for the weekly showcase: which
// calendar date is the "next" meeting, and which past and future weeks the
// week selector should offer. All functions are pure; callers supply the
// current time.
package schedule

import (
	"time"

	"showcase/internal/domain"
)

// DateKeyLayout is the canonical date-key form. Lexicographic order of keys
// in this layout coincides with chronological order, which the rest of the
// system relies on.
const DateKeyLayout = "2006-01-02"

// displayLayout is the long form shown to users, e.g. "Thursday, January 4, 2024".
const displayLayout = "Monday, January 2, 2006"

// FutureWeekCount is how many upcoming meeting dates the week selector offers.
const FutureWeekCount = 8

// Engine computes meeting dates for a fixed weekday and signup cutoff hour.
type Engine struct {
	// Weekday is the day meetings happen on.
	Weekday time.Weekday
	// CutoffHour is the local hour at/after which "today" no longer counts
	// as the upcoming meeting when today is the meeting weekday.
	CutoffHour int
}

// NewEngine returns an Engine for the given meeting weekday and cutoff hour.
func NewEngine(weekday time.Weekday, cutoffHour int) Engine {
	return Engine{Weekday: weekday, CutoffHour: cutoffHour}
}

// NextMeetingDate returns the date key of the next meeting relative to now,
// in now's location. On the meeting weekday itself, today counts as "next"
// strictly before the cutoff hour; at or after it the result is today + 7.
func (e Engine) NextMeetingDate(now time.Time) string {
	return e.nextMeetingDay(now).Format(DateKeyLayout)
}

func (e Engine) nextMeetingDay(now time.Time) time.Time {
	days := (int(e.Weekday) - int(now.Weekday()) + 7) % 7
	if days == 0 && now.Hour() >= e.CutoffHour {
		days = 7
	}
	return now.AddDate(0, 0, days)
}

// thisWeeksMeetingDay is the starting point of the backward walk over past
// weeks: today when today is the meeting weekday (regardless of the cutoff),
// otherwise the upcoming occurrence.
func (e Engine) thisWeeksMeetingDay(now time.Time) time.Time {
	days := (int(e.Weekday) - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, days)
}

// FormatForDisplay renders a date key as its long form. Keys that do not
// parse are returned unchanged. The date is treated as a civil date: the
// formatted output parses back to the same calendar day with no timezone
// drift.
func FormatForDisplay(dateKey string) string {
	t, err := time.Parse(DateKeyLayout, dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format(displayLayout)
}

// EnumerateWeeks produces the week-selector entries: every relevant past
// meeting date followed by the next FutureWeekCount future ones.
//
// The future window starts at NextMeetingDate(now); its first entry is the
// current week. The past window walks back one week at a time from this
// week's meeting day, down to the earliest date in presentationDates, and
// emits a week only when it has at least one presentation or an inactive
// marker. With no presentations at all there is no past window.
//
// presentationDates is the meeting date of every presentation (duplicates
// fine); inactive maps a date key to its marker reason (possibly empty).
// The result is fully materialized and recomputed on every call.
func (e Engine) EnumerateWeeks(now time.Time, presentationDates []string, inactive map[string]string) []domain.Week {
	weeks := make([]domain.Week, 0, FutureWeekCount)

	next := e.nextMeetingDay(now)
	for i := 0; i < FutureWeekCount; i++ {
		key := next.AddDate(0, 0, 7*i).Format(DateKeyLayout)
		reason, isInactive := inactive[key]
		weeks = append(weeks, domain.Week{
			Date:           key,
			FormattedDate:  FormatForDisplay(key),
			IsCurrent:      i == 0,
			IsInactive:     isInactive,
			InactiveReason: reason,
		})
	}

	if len(presentationDates) == 0 {
		return weeks
	}

	earliest := presentationDates[0]
	counts := make(map[string]int, len(presentationDates))
	for _, d := range presentationDates {
		if d < earliest {
			earliest = d
		}
		counts[d]++
	}

	var past []domain.Week
	for day := e.thisWeeksMeetingDay(now).AddDate(0, 0, -7); ; day = day.AddDate(0, 0, -7) {
		key := day.Format(DateKeyLayout)
		if key < earliest {
			break
		}
		if counts[key] == 0 {
			if _, marked := inactive[key]; !marked {
				continue
			}
		}
		reason, isInactive := inactive[key]
		past = append(past, domain.Week{
			Date:           key,
			FormattedDate:  FormatForDisplay(key),
			IsPast:         true,
			IsInactive:     isInactive,
			InactiveReason: reason,
		})
	}

	// The walk collected past weeks newest first; the selector wants them
	// oldest first, ahead of the future window.
	result := make([]domain.Week, 0, len(past)+len(weeks))
	for i := len(past) - 1; i >= 0; i-- {
		result = append(result, past[i])
	}
	return append(result, weeks...)
}
