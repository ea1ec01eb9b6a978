package dispatch

import (
	"errors"
	"strings"
	"testing"
)

func TestMapAppointmentCreatedBuildsConfirmationLink(t *testing.T) {
	payload := []byte(`{
		"appointment_id": "appt-1",
		"shop_id": "shop-1",
		"user_id": "user-1",
		"shop_name": "Star Berber",
		"start_time": "2025-05-25T10:00:00Z"
	}`)
	res, err := Map("booking.appointment.created.v1", payload, Options{ConfirmBaseURL: "https://app.example.com"})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if res.Notification.UserID != "user-1" || res.Notification.Type != "appointment_created" {
		t.Fatalf("unexpected notification: %+v", res.Notification)
	}
	if res.Notification.RelatedID != "appt-1" {
		t.Fatalf("related id not set: %+v", res.Notification)
	}
	if res.Email == nil {
		t.Fatal("expected confirmation e-mail")
	}
	if !strings.Contains(res.Email.Body, "https://app.example.com/appointments/appt-1/confirm") {
		t.Fatalf("confirmation link missing from body: %q", res.Email.Body)
	}
}

func TestMapReviewTargetsOwner(t *testing.T) {
	payload := []byte(`{"review_id": "rev-1", "shop_id": "shop-1", "shop_name": "Star Berber", "owner_id": "owner-1", "user_id": "user-1", "rating": 4}`)
	res, err := Map("marketplace.review.created.v1", payload, Options{})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if res.Notification.UserID != "owner-1" {
		t.Fatalf("review notification should target the shop owner, got %s", res.Notification.UserID)
	}
	if !strings.Contains(res.Notification.Message, "4-star") {
		t.Fatalf("rating missing from message: %q", res.Notification.Message)
	}
	if res.Email != nil {
		t.Fatal("reviews should not send e-mail")
	}
}

func TestMapMessageTargetsReceiver(t *testing.T) {
	payload := []byte(`{"message_id": "msg-1", "shop_id": "shop-1", "sender_id": "user-1", "receiver_id": "owner-1"}`)
	res, err := Map("marketplace.message.sent.v1", payload, Options{})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if res.Notification.UserID != "owner-1" || res.Notification.Type != "message_received" {
		t.Fatalf("unexpected notification: %+v", res.Notification)
	}
}

func TestMapReminderDue(t *testing.T) {
	payload := []byte(`{"appointment_id": "appt-1", "shop_id": "shop-1", "user_id": "user-1", "shop_name": "Star Berber", "start_time": "2025-05-25T10:00:00Z"}`)
	res, err := Map("scheduler.reminder.due.v1", payload, Options{})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if res.Email == nil {
		t.Fatal("reminders should send e-mail")
	}
	if res.Notification.Type != "appointment_reminder" {
		t.Fatalf("unexpected type %s", res.Notification.Type)
	}
}

func TestMapUnknownType(t *testing.T) {
	if _, err := Map("billing.invoice.paid.v1", []byte(`{}`), Options{}); !errors.Is(err, ErrUnhandled) {
		t.Fatalf("expected ErrUnhandled, got %v", err)
	}
}
