package domain

import (
	"testing"
	"time"
)

// helper: build a UTC instant that corresponds to a local wall time in tz
func mustLocalUTC(t *testing.T, tz string, y int, m time.Month, d, hh, mm int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	if err != nil {
		t.Fatalf("load tz: %v", err)
	}
	return time.Date(y, m, d, hh, mm, 0, 0, loc).UTC()
}

func TestResolveLocal_HoChiMinh(t *testing.T) {
	// 2025-06-02 is a Monday; Asia/Ho_Chi_Minh has no DST (+07).
	now := mustLocalUTC(t, "Asia/Ho_Chi_Minh", 2025, time.June, 2, 8, 0)
	lt, ok := ResolveLocal(now, "Asia/Ho_Chi_Minh")
	if !ok {
		t.Fatalf("expected ok for valid tz")
	}
	if lt.Hour != 8 || lt.Minute != 0 {
		t.Fatalf("want 08:00, got %s", lt.HHMM())
	}
	if lt.DayOfWeek != 1 || lt.DayName != "Monday" {
		t.Fatalf("want Monday(1), got %s(%d)", lt.DayName, lt.DayOfWeek)
	}
}

func TestResolveLocal_DSTTransition(t *testing.T) {
	// Europe/Berlin switched to CEST on 2025-03-30; 12:00 UTC is 14:00 local.
	now := time.Date(2025, time.March, 30, 12, 0, 0, 0, time.UTC)
	lt, ok := ResolveLocal(now, "Europe/Berlin")
	if !ok {
		t.Fatalf("expected ok for valid tz")
	}
	if lt.Hour != 14 {
		t.Fatalf("want hour 14 after DST switch, got %d", lt.Hour)
	}
}

func TestResolveLocal_InvalidTZFallsBack(t *testing.T) {
	now := time.Date(2025, time.June, 2, 1, 2, 0, 0, time.UTC)
	lt, ok := ResolveLocal(now, "Not/A_Zone")
	if ok {
		t.Fatalf("expected ok=false for invalid tz")
	}
	want := now.In(time.Local)
	if lt.Hour != want.Hour() || lt.Minute != want.Minute() {
		t.Fatalf("fallback mismatch: got %s, want %02d:%02d",
			lt.HHMM(), want.Hour(), want.Minute())
	}
	if lt.DayName == "" {
		t.Fatalf("fallback must still carry a day name")
	}
}
