package pkg

import (
	"testing"
	"time"
)

func TestPresetRange_Today(t *testing.T) {
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

	start, end, err := PresetRange(RangeToday, now)
	if err != nil {
		t.Fatalf("PresetRange: %v", err)
	}
	if !start.Equal(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestPresetRange_WeekStartsMonday(t *testing.T) {
	// 2024-03-13 is a Wednesday; the week opened on Monday the 11th.
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

	start, end, err := PresetRange(RangeWeek, now)
	if err != nil {
		t.Fatalf("PresetRange: %v", err)
	}
	if !start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want Monday the 11th", start)
	}
	if !end.Equal(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	// A Sunday belongs to the week that opened the previous Monday.
	sunday := time.Date(2024, 3, 17, 9, 0, 0, 0, time.UTC)
	start, _, err = PresetRange(RangeWeek, sunday)
	if err != nil {
		t.Fatalf("PresetRange: %v", err)
	}
	if !start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("sunday week start = %v, want Monday the 11th", start)
	}

	// A Monday opens its own week.
	monday := time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC)
	start, _, err = PresetRange(RangeWeek, monday)
	if err != nil {
		t.Fatalf("PresetRange: %v", err)
	}
	if !start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monday week start = %v", start)
	}
}

func TestPresetRange_Month(t *testing.T) {
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

	start, end, err := PresetRange(RangeMonth, now)
	if err != nil {
		t.Fatalf("PresetRange: %v", err)
	}
	if !start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestPresetRange_Unknown(t *testing.T) {
	if _, _, err := PresetRange("quarter", time.Now()); err == nil {
		t.Error("expected error for unknown preset")
	}
}
