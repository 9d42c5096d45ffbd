package domain

import "time"

// LocalTime is an instant resolved into a reminder's wall clock.
type LocalTime struct {
	Hour      int // 0..23
	Minute    int // 0..59
	DayOfWeek int // 0=Sunday .. 6=Saturday
	DayName   string
}

// ResolveLocal converts now into local wall-clock time in the named
// IANA timezone. When the timezone cannot be loaded it falls back to
// the process-local zone and reports ok=false; a single bad timezone
// string must never abort the sweep for other users.
func ResolveLocal(now time.Time, tz string) (LocalTime, bool) {
	ok := true
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
		ok = false
	}
	lt := now.In(loc)
	return LocalTime{
		Hour:      lt.Hour(),
		Minute:    lt.Minute(),
		DayOfWeek: int(lt.Weekday()),
		DayName:   lt.Weekday().String(),
	}, ok
}

// HHMM renders the local time as a zero-padded clock string.
func (t LocalTime) HHMM() string {
	return clockString(t.Hour, t.Minute)
}
