package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/randevuapp/randevu/services/notification-service/internal/storage"
)

// ErrUnhandled marks event types this service consumes but produces no user
// notification for.
var ErrUnhandled = errors.New("unhandled event type")

type Options struct {
	// ConfirmBaseURL prefixes the confirmation link in the appointment
	// request e-mail.
	ConfirmBaseURL string
}

type Email struct {
	Subject string
	Body    string
}

// Result is what one consumed event turns into: a feed row for the target
// user and, for the event types that warrant it, an e-mail.
type Result struct {
	Notification storage.Notification
	Email        *Email
}

type appointmentEvent struct {
	AppointmentID string `json:"appointment_id"`
	ShopID        string `json:"shop_id"`
	UserID        string `json:"user_id"`
	ShopName      string `json:"shop_name"`
	ServiceName   string `json:"service_name"`
	StartTime     string `json:"start_time"`
	Reason        string `json:"reason"`
	CanceledBy    string `json:"canceled_by"`
	RemindAt      string `json:"remind_at"`
}

type reviewEvent struct {
	ReviewID string `json:"review_id"`
	ShopID   string `json:"shop_id"`
	ShopName string `json:"shop_name"`
	OwnerID  string `json:"owner_id"`
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating"`
}

type messageEvent struct {
	MessageID  string `json:"message_id"`
	ShopID     string `json:"shop_id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
}

// Map translates a consumed event into the notification to persist and the
// e-mail to send. It is pure; delivery and persistence stay with the caller.
func Map(eventType string, payload []byte, opts Options) (Result, error) {
	switch eventType {
	case "booking.appointment.created.v1":
		var evt appointmentEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return Result{}, err
		}
		if evt.UserID == "" || evt.AppointmentID == "" {
			return Result{}, errors.New("missing appointment event fields")
		}
		shopName := orFallback(evt.ShopName, "the shop")
		res := Result{Notification: storage.Notification{
			UserID:    evt.UserID,
			Type:      "appointment_created",
			Title:     "Appointment requested",
			Message:   fmt.Sprintf("Your appointment at %s is waiting for your confirmation.", shopName),
			RelatedID: evt.AppointmentID,
		}}
		link := strings.TrimRight(opts.ConfirmBaseURL, "/") + "/appointments/" + evt.AppointmentID + "/confirm"
		res.Email = &Email{
			Subject: "Confirm your appointment",
			Body: fmt.Sprintf("You requested an appointment at %s for %s.\r\n\r\nConfirm it here: %s\r\n",
				shopName, evt.StartTime, link),
		}
		return res, nil

	case "booking.appointment.confirmed.v1":
		var evt appointmentEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return Result{}, err
		}
		shopName := orFallback(evt.ShopName, "the shop")
		return Result{
			Notification: storage.Notification{
				UserID:    evt.UserID,
				Type:      "appointment_confirmed",
				Title:     "Appointment confirmed",
				Message:   fmt.Sprintf("%s confirmed your appointment for %s.", shopName, evt.StartTime),
				RelatedID: evt.AppointmentID,
			},
			Email: &Email{
				Subject: "Your appointment is confirmed",
				Body:    fmt.Sprintf("%s confirmed your appointment for %s.\r\n", shopName, evt.StartTime),
			},
		}, nil

	case "booking.appointment.completed.v1":
		var evt appointmentEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return Result{}, err
		}
		return Result{Notification: storage.Notification{
			UserID:    evt.UserID,
			Type:      "appointment_completed",
			Title:     "Appointment completed",
			Message:   "How was it? Leave a review to help others.",
			RelatedID: evt.AppointmentID,
		}}, nil

	case "booking.appointment.canceled.v1":
		var evt appointmentEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return Result{}, err
		}
		msg := "Your appointment was canceled."
		if evt.Reason != "" {
			msg = fmt.Sprintf("Your appointment was canceled: %s", evt.Reason)
		}
		return Result{
			Notification: storage.Notification{
				UserID:    evt.UserID,
				Type:      "appointment_canceled",
				Title:     "Appointment canceled",
				Message:   msg,
				RelatedID: evt.AppointmentID,
			},
			Email: &Email{
				Subject: "Your appointment was canceled",
				Body:    msg + "\r\n",
			},
		}, nil

	case "scheduler.reminder.due.v1":
		var evt appointmentEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return Result{}, err
		}
		shopName := orFallback(evt.ShopName, "the shop")
		msg := fmt.Sprintf("Reminder: your appointment at %s starts at %s.", shopName, evt.StartTime)
		return Result{
			Notification: storage.Notification{
				UserID:    evt.UserID,
				Type:      "appointment_reminder",
				Title:     "Upcoming appointment",
				Message:   msg,
				RelatedID: evt.AppointmentID,
			},
			Email: &Email{
				Subject: "Appointment reminder",
				Body:    msg + "\r\n",
			},
		}, nil

	case "marketplace.review.created.v1":
		var evt reviewEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return Result{}, err
		}
		if evt.OwnerID == "" {
			return Result{}, errors.New("review event missing owner_id")
		}
		return Result{Notification: storage.Notification{
			UserID:    evt.OwnerID,
			Type:      "review_created",
			Title:     "New review",
			Message:   fmt.Sprintf("%s received a new %d-star review.", orFallback(evt.ShopName, "Your shop"), evt.Rating),
			RelatedID: evt.ReviewID,
		}}, nil

	case "marketplace.message.sent.v1":
		var evt messageEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return Result{}, err
		}
		if evt.ReceiverID == "" {
			return Result{}, errors.New("message event missing receiver_id")
		}
		return Result{Notification: storage.Notification{
			UserID:    evt.ReceiverID,
			Type:      "message_received",
			Title:     "New message",
			Message:   "You have a new message.",
			RelatedID: evt.MessageID,
		}}, nil
	}

	return Result{}, ErrUnhandled
}

func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
