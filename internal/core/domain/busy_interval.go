package domain

import "time"

// BusyInterval - занятый промежуток из внешнего календаря, полуинтервал [Start, End)
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps проверяет пересечение с предложенным промежутком [start, end).
// Касание границ пересечением не считается
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && b.Start.Before(end)
}

func OverlapsAny(busy []BusyInterval, start, end time.Time) bool {
	for _, interval := range busy {
		if interval.Overlaps(start, end) {
			return true
		}
	}
	return false
}
