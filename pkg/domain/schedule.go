// schedule.go — Day filtering for the report's schedule table.
package domain

import (
	"sort"
	"strings"
)

// MaxScheduleRows caps the schedule table at a single page; matching items
// beyond this count are truncated, never wrapped to a second page.
const MaxScheduleRows = 7

// ScheduleForDay selects the sessions for one weekday, sorted by period
// ascending and truncated to MaxScheduleRows. Day matching is
// case-insensitive.
func ScheduleForDay(items []ScheduleItem, day string) []ScheduleItem {
	want := strings.ToLower(strings.TrimSpace(day))
	if want == "" {
		return nil
	}

	var matched []ScheduleItem
	for _, it := range items {
		if strings.ToLower(strings.TrimSpace(it.Day)) == want {
			matched = append(matched, it)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Period < matched[j].Period
	})

	if len(matched) > MaxScheduleRows {
		matched = matched[:MaxScheduleRows]
	}
	return matched
}
