package pkg

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Time-range preset names accepted by list filters.
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// PresetRange resolves a time-range preset into concrete [start, end) bounds
// using the given clock's location. The week starts on Monday.
func PresetRange(preset string, now time.Time) (start, end time.Time, err error) {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch preset {
	case RangeToday:
		return midnight, midnight.AddDate(0, 0, 1), nil
	case RangeWeek:
		// time.Weekday counts Sunday as 0; shift so Monday opens the window.
		offset := (int(now.Weekday()) + 6) % 7
		start = midnight.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), nil
	case RangeMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown time range preset %q", preset)
	}
}

// CreatedBetween returns a GORM scope narrowing column to [from, to).
// Nil bounds are skipped.
func CreatedBetween(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" < ?", *to)
		}
		return db
	}
}
