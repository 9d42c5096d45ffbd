// Package push delivers data-only FCM messages to user devices.
//
// Payloads carry no notification block on purpose: the app's
// onMessageReceived must run in every app state so the app renders the
// reminder itself (custom channel, snooze actions, sound).
package push

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Fixed payload fields. These are a bit-exact contract with the mobile
// app; renaming any key breaks delivery handling on installed clients.
const (
	payloadType = "medication_reminder"
	clickAction = "OPEN_REMINDER"

	// PriorityHigh asks the platform to deliver even in doze.
	PriorityHigh = "high"

	// MessageTTL bounds how late a reminder may arrive after a
	// transport outage; a dose reminder is useless hours later.
	MessageTTL = time.Hour
)

// Transport sends one data payload to one device token and returns the
// provider message id. Errors are provider-specific and treated as
// opaque by callers.
type Transport interface {
	Send(ctx context.Context, token string, data map[string]string, priority string, ttl time.Duration) (string, error)
}

// Meta is the reminder context attached to every dispatched payload.
type Meta struct {
	ReminderID    string
	TimeSlot      string
	SnoozeMinutes int
	MedicineName  string
	Dosage        string
}

// Result reports the outcome of one dispatch attempt.
type Result struct {
	Success   bool
	MessageID string
	Err       error
}

// Dispatcher composes the wire payload and pushes it through a
// Transport. Failures are logged and returned in the Result, never
// propagated: one dead token must not abort a sweep.
type Dispatcher struct {
	transport Transport
	log       *zap.Logger
}

func NewDispatcher(transport Transport, log *zap.Logger) *Dispatcher {
	return &Dispatcher{transport: transport, log: log}
}

// Send dispatches one notification. It always returns a Result; the
// error inside is informational.
func (d *Dispatcher) Send(ctx context.Context, token, title, body string, meta Meta) Result {
	snooze := meta.SnoozeMinutes
	if snooze <= 0 {
		snooze = 10
	}

	data := map[string]string{
		"type":            payloadType,
		"title":           title,
		"body":            body,
		"reminder_id":     meta.ReminderID,
		"time_slot":       meta.TimeSlot,
		"snooze_duration": strconv.Itoa(snooze),
		"medicine_name":   meta.MedicineName,
		"dosage":          meta.Dosage,
		"click_action":    clickAction,
	}

	id, err := d.transport.Send(ctx, token, data, PriorityHigh, MessageTTL)
	if err != nil {
		d.log.Error("notification send failed",
			zap.Error(err),
			zap.String("reminder", meta.ReminderID),
			zap.String("slot", meta.TimeSlot),
		)
		return Result{Success: false, Err: err}
	}

	d.log.Info("notification sent",
		zap.String("messageID", id),
		zap.String("reminder", meta.ReminderID),
		zap.String("slot", meta.TimeSlot),
	)
	return Result{Success: true, MessageID: id}
}
