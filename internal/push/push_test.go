package push

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeTransport struct {
	token    string
	data     map[string]string
	priority string
	ttl      time.Duration
	calls    int
	err      error
}

func (f *fakeTransport) Send(_ context.Context, token string, data map[string]string, priority string, ttl time.Duration) (string, error) {
	f.calls++
	f.token = token
	f.data = data
	f.priority = priority
	f.ttl = ttl
	if f.err != nil {
		return "", f.err
	}
	return "msg-123", nil
}

func TestSend_PayloadContract(t *testing.T) {
	ft := &fakeTransport{}
	d := NewDispatcher(ft, zap.NewNop())

	res := d.Send(context.Background(), "token-1", "title-x", "body-x", Meta{
		ReminderID:    "rem-9",
		TimeSlot:      "morning",
		SnoozeMinutes: 15,
		MedicineName:  "Paracetamol",
		Dosage:        "500mg",
	})

	if !res.Success || res.MessageID != "msg-123" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if ft.token != "token-1" {
		t.Fatalf("token: %q", ft.token)
	}
	if ft.priority != "high" || ft.ttl != time.Hour {
		t.Fatalf("priority/ttl: %q %v", ft.priority, ft.ttl)
	}

	// Field names and values are a contract with the mobile app.
	want := map[string]string{
		"type":            "medication_reminder",
		"title":           "title-x",
		"body":            "body-x",
		"reminder_id":     "rem-9",
		"time_slot":       "morning",
		"snooze_duration": "15",
		"medicine_name":   "Paracetamol",
		"dosage":          "500mg",
		"click_action":    "OPEN_REMINDER",
	}
	if len(ft.data) != len(want) {
		t.Fatalf("payload keys: got %d want %d (%v)", len(ft.data), len(want), ft.data)
	}
	for k, v := range want {
		if ft.data[k] != v {
			t.Fatalf("payload[%s]: got %q want %q", k, ft.data[k], v)
		}
	}
}

func TestSend_Defaults(t *testing.T) {
	ft := &fakeTransport{}
	d := NewDispatcher(ft, zap.NewNop())

	d.Send(context.Background(), "tok", "t", "b", Meta{ReminderID: "r", TimeSlot: "evening"})

	if got := ft.data["snooze_duration"]; got != "10" {
		t.Fatalf("default snooze: %q", got)
	}
	if got := ft.data["medicine_name"]; got != "" {
		t.Fatalf("medicine_name must default to empty string, got %q", got)
	}
	if got := ft.data["dosage"]; got != "" {
		t.Fatalf("dosage must default to empty string, got %q", got)
	}
}

func TestSend_TransportErrorIsContained(t *testing.T) {
	sendErr := errors.New("registration-token-not-registered")
	ft := &fakeTransport{err: sendErr}
	d := NewDispatcher(ft, zap.NewNop())

	res := d.Send(context.Background(), "dead-token", "t", "b", Meta{ReminderID: "r"})
	if res.Success {
		t.Fatalf("want failure result")
	}
	if !errors.Is(res.Err, sendErr) {
		t.Fatalf("want wrapped transport error, got %v", res.Err)
	}
	if res.MessageID != "" {
		t.Fatalf("no message id on failure")
	}
}
