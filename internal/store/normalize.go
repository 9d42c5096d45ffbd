package store

import (
	"encoding/json"
	"fmt"

	"github.com/ArthurHoang15/notification-server/internal/domain"
)

// Reminder and user documents exist in two historical field-naming
// schemes (snake_case from the original backend, camelCase from a
// later app release). This file is the only place that knows both;
// everything above the store sees one canonical shape. When a document
// carries both spellings the snake_case value wins, matching the
// precedence of the original lookup chains.

type rawDoc map[string]json.RawMessage

func pickRaw(m rawDoc, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func pickString(m rawDoc, keys ...string) string {
	raw, ok := pickRaw(m, keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func pickBool(m rawDoc, keys ...string) bool {
	raw, ok := pickRaw(m, keys...)
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

func pickInt(m rawDoc, def int, keys ...string) int {
	raw, ok := pickRaw(m, keys...)
	if !ok {
		return def
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return def
	}
	return n
}

func pickIntSlice(m rawDoc, keys ...string) []int {
	raw, ok := pickRaw(m, keys...)
	if !ok {
		return nil
	}
	var ns []int
	if err := json.Unmarshal(raw, &ns); err != nil {
		return nil
	}
	return ns
}

// decodeUser normalizes a stored user document.
func decodeUser(id string, doc []byte) (domain.User, error) {
	var m rawDoc
	if err := json.Unmarshal(doc, &m); err != nil {
		return domain.User{}, fmt.Errorf("user %s: %w", id, err)
	}
	return domain.User{
		ID:        id,
		PushToken: pickString(m, "fcm_token", "fcmToken"),
		Language:  domain.NormalizeLanguage(pickString(m, "language")),
	}, nil
}

var slotTimeKeys = map[domain.Slot][2]string{
	domain.SlotMorning:   {"morning_time", "morningTime"},
	domain.SlotNoon:      {"noon_time", "noonTime"},
	domain.SlotAfternoon: {"afternoon_time", "afternoonTime"},
	domain.SlotEvening:   {"evening_time", "eveningTime"},
}

// decodeReminder normalizes a stored reminder document. defaultTZ is
// applied when the document carries no timezone.
func decodeReminder(id, userID string, doc []byte, defaultTZ string) (domain.Reminder, error) {
	var m rawDoc
	if err := json.Unmarshal(doc, &m); err != nil {
		return domain.Reminder{}, fmt.Errorf("reminder %s: %w", id, err)
	}

	tz := pickString(m, "timezone")
	if tz == "" {
		tz = defaultTZ
	}

	times := make(map[domain.Slot]string)
	for slot, keys := range slotTimeKeys {
		if v := pickString(m, keys[0], keys[1]); v != "" {
			times[slot] = v
		}
	}

	return domain.Reminder{
		ID:            id,
		UserID:        userID,
		Timezone:      tz,
		Active:        pickBool(m, "is_active", "isActive"),
		SelectedDays:  pickIntSlice(m, "selected_days", "selectedDays"),
		SlotTimes:     times,
		Detailed:      pickBool(m, "is_detailed_reminder", "isDetailedReminder"),
		MedicineName:  pickString(m, "medicine_name", "medicineName"),
		Dosage:        pickString(m, "dosage"),
		SnoozeMinutes: pickInt(m, domain.DefaultSnoozeMinutes, "snooze_duration", "snoozeDuration"),
	}, nil
}
