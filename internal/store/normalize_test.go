package store

import (
	"testing"

	"github.com/ArthurHoang15/notification-server/internal/domain"
)

func TestSnakeCaseWinsWhenBothPresent(t *testing.T) {
	doc := []byte(`{
		"medicine_name": "Snake",
		"medicineName": "Camel",
		"is_active": true,
		"isActive": false,
		"snooze_duration": 5,
		"snoozeDuration": 25
	}`)
	r, err := decodeReminder("r1", "u1", doc, "UTC")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.MedicineName != "Snake" {
		t.Fatalf("medicine: %q", r.MedicineName)
	}
	if !r.Active {
		t.Fatalf("is_active must win over isActive")
	}
	if r.SnoozeMinutes != 5 {
		t.Fatalf("snooze: %d", r.SnoozeMinutes)
	}
}

func TestNullFieldsFallThrough(t *testing.T) {
	doc := []byte(`{"fcm_token": null, "fcmToken": "tok"}`)
	u, err := decodeUser("u1", doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.PushToken != "tok" {
		t.Fatalf("null snake value must fall through to camel, got %q", u.PushToken)
	}
}

func TestWrongTypedFieldsDoNotPanic(t *testing.T) {
	doc := []byte(`{
		"is_active": "yes",
		"selected_days": "weekdays",
		"snooze_duration": "soon",
		"morning_time": 800
	}`)
	r, err := decodeReminder("r1", "u1", doc, "UTC")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Active {
		t.Fatalf("unparseable bool must default to false")
	}
	if r.SelectedDays != nil {
		t.Fatalf("unparseable days must default to empty")
	}
	if r.SnoozeMinutes != domain.DefaultSnoozeMinutes {
		t.Fatalf("unparseable snooze must default, got %d", r.SnoozeMinutes)
	}
	if _, ok := r.SlotTimes[domain.SlotMorning]; ok {
		t.Fatalf("numeric slot time must be dropped")
	}
}
