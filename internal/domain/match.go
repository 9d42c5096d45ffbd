package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock parses an "HH:MM" 24-hour time. Reminder documents come
// from two generations of mobile clients, so malformed values are
// expected; callers treat ok=false as "slot never due".
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func clockString(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}

// DueSlots returns the slots of r that are due at the given local
// time, in fixed morning→evening order. A slot is due when its
// configured hour and minute equal the current ones; the granularity
// is exactly one minute, so the caller must sweep once per minute.
// If the reminder's day filter excludes today, nothing is due.
func DueSlots(r *Reminder, lt LocalTime) []Slot {
	if !r.FiresOn(lt.DayOfWeek) {
		return nil
	}
	var due []Slot
	for _, slot := range Slots {
		raw, exists := r.SlotTimes[slot]
		if !exists || raw == "" {
			continue
		}
		h, m, ok := ParseClock(raw)
		if !ok {
			continue
		}
		if h == lt.Hour && m == lt.Minute {
			due = append(due, slot)
		}
	}
	return due
}
