package domain

// Slot is one of the four named dose times a reminder may configure.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotNoon      Slot = "noon"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// Slots lists all slots in evaluation order.
var Slots = []Slot{SlotMorning, SlotNoon, SlotAfternoon, SlotEvening}

// DefaultSnoozeMinutes is applied when a reminder has no snooze duration.
const DefaultSnoozeMinutes = 10

// Reminder is the canonical medication reminder shape. The store layer
// normalizes both historical field-naming schemes into this struct; the
// rest of the server never sees raw documents.
type Reminder struct {
	ID       string
	UserID   string
	Timezone string
	Active   bool

	// SelectedDays holds weekday numbers 0 (Sunday) through 6.
	// An empty set means the reminder fires every day.
	SelectedDays []int

	// SlotTimes maps a slot to its configured "HH:MM" local time.
	// Slots with no configured time are absent.
	SlotTimes map[Slot]string

	Detailed     bool
	MedicineName string
	Dosage       string

	SnoozeMinutes int
}

// FiresOn reports whether the reminder's day filter allows the given
// weekday (0=Sunday).
func (r *Reminder) FiresOn(dayOfWeek int) bool {
	if len(r.SelectedDays) == 0 {
		return true
	}
	for _, d := range r.SelectedDays {
		if d == dayOfWeek {
			return true
		}
	}
	return false
}
