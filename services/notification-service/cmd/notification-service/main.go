package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/randevuapp/randevu/libs/config"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/libs/kafkax"
	otelx "github.com/randevuapp/randevu/libs/otel"
	"github.com/randevuapp/randevu/libs/runtime"
	"github.com/randevuapp/randevu/services/notification-service/internal/consumer"
	"github.com/randevuapp/randevu/services/notification-service/internal/dispatch"
	"github.com/randevuapp/randevu/services/notification-service/internal/email"
	"github.com/randevuapp/randevu/services/notification-service/internal/handlers"
	"github.com/randevuapp/randevu/services/notification-service/internal/inbox"
	"github.com/randevuapp/randevu/services/notification-service/internal/outbox"
	"github.com/randevuapp/randevu/services/notification-service/internal/push"
	"github.com/randevuapp/randevu/services/notification-service/internal/sms"
	"github.com/randevuapp/randevu/services/notification-service/internal/storage"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func writeDeliveryEvent(ctx context.Context, pool *db.Pool, outboxRepo *outbox.Repository, eventType, relatedID, userID, channel, detail string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	payload, err := json.Marshal(map[string]any{
		"related_id": relatedID,
		"user_id":    userID,
		"channel":    channel,
		"detail":     detail,
		"at":         time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	if err := outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "notification",
		AggregateID:   relatedID,
		EventType:     eventType,
		Payload:       payload,
	}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func main() {
	service := config.String("SERVICE_NAME", "notification-service")
	port, err := config.Port("PORT", "8085")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	inboxRepo := inbox.NewRepository(pool)
	notificationsRepo := storage.NewRepository(pool)
	tokensRepo := storage.NewPushTokenRepository(pool)
	recipientsRepo := storage.NewRecipientRepository(pool)
	outboxRepo := outbox.NewRepository(pool)

	brokers := config.String("KAFKA_BROKERS", "")
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   brokers,
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	emailSender := email.NewSMTPSender(
		config.String("SMTP_HOST", "mailpit"),
		config.String("SMTP_PORT", "1025"),
		config.String("SMTP_FROM", "no-reply@randevu.local"),
	)

	var pushSender push.Sender
	if url := config.String("PUSH_WEBHOOK_URL", ""); url != "" {
		pushSender = push.NewWebhookSender(url, config.String("PUSH_WEBHOOK_TOKEN", ""))
	} else {
		pushSender = push.NewNoopSender()
	}

	var smsSender sms.Sender
	if url := config.String("SMS_WEBHOOK_URL", ""); url != "" {
		smsSender = sms.NewWebhookSender(url, config.String("SMS_WEBHOOK_TOKEN", ""))
	} else {
		smsSender = sms.NewNoopSender()
	}

	dispatchOpts := dispatch.Options{
		ConfirmBaseURL: config.String("APP_BASE_URL", "http://localhost:3000"),
	}
	groupID := config.String("KAFKA_GROUP_ID", "notification-service")

	// One handler covers every feed-producing topic; dispatch decides the
	// target and the channels per event type.
	dispatchHandler := func(ctx context.Context, msg kafka.Message) error {
		res, err := dispatch.Map(msg.Topic, msg.Value, dispatchOpts)
		if err != nil {
			logger.Error("event dispatch failed", "err", err, "topic", msg.Topic)
			return nil
		}

		status := "sent"
		detail := ""

		if res.Email != nil {
			rec, err := recipientsRepo.Get(ctx, res.Notification.UserID)
			switch {
			case err != nil && storage.IsNotFound(err):
				logger.Warn("no e-mail on file", "user_id", res.Notification.UserID)
			case err != nil:
				return err
			default:
				if err := emailSender.Send(rec.Email, res.Email.Subject, res.Email.Body); err != nil {
					status = "failed"
					detail = err.Error()
					logger.Error("email send failed", "err", err, "user_id", res.Notification.UserID)
				}
			}
		}

		tokens, err := tokensRepo.ListForUser(ctx, res.Notification.UserID)
		if err != nil {
			return err
		}
		for _, t := range tokens {
			if err := pushSender.Send(ctx, push.Message{
				Token: t.Token,
				Title: res.Notification.Title,
				Body:  res.Notification.Message,
			}); err != nil {
				status = "failed"
				detail = err.Error()
				logger.Error("push send failed", "err", err, "user_id", res.Notification.UserID)
			}
		}

		res.Notification.Status = status
		if _, err := notificationsRepo.Insert(ctx, res.Notification); err != nil {
			logger.Error("failed to persist notification", "err", err)
			return err
		}

		eventType := "notification.sent.v1"
		if status == "failed" {
			eventType = "notification.failed.v1"
		}
		return writeDeliveryEvent(ctx, pool, outboxRepo, eventType, res.Notification.RelatedID, res.Notification.UserID, res.Notification.Type, detail)
	}

	feedTopics := []string{
		"booking.appointment.created.v1",
		"booking.appointment.confirmed.v1",
		"booking.appointment.completed.v1",
		"booking.appointment.canceled.v1",
		"scheduler.reminder.due.v1",
		"marketplace.review.created.v1",
		"marketplace.message.sent.v1",
	}
	for _, topic := range feedTopics {
		c := consumer.New(logger, inboxRepo, consumer.Config{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}, dispatchHandler)
		go c.Run(ctx)
	}

	// Local projection of auth users, so e-mail delivery never calls auth.
	userConsumer := consumer.New(logger, inboxRepo, consumer.Config{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   config.String("USER_TOPIC", "auth.user.created.v1"),
	}, func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			UserID      string `json:"user_id"`
			Email       string `json:"email"`
			DisplayName string `json:"display_name"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil || payload.UserID == "" || payload.Email == "" {
			logger.Error("invalid user event", "err", err)
			return nil
		}
		return recipientsRepo.Upsert(ctx, storage.Recipient{
			UserID:      payload.UserID,
			Email:       payload.Email,
			DisplayName: payload.DisplayName,
		})
	})
	go userConsumer.Run(ctx)

	// OTP codes go out over SMS; the code never appears in an API response.
	otpConsumer := consumer.New(logger, inboxRepo, consumer.Config{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   config.String("OTP_TOPIC", "auth.otp.requested.v1"),
	}, func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			Phone string `json:"phone"`
			Code  string `json:"code"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil || payload.Phone == "" || payload.Code == "" {
			logger.Error("invalid otp event", "err", err)
			return nil
		}
		body := "Your verification code is " + payload.Code
		if err := smsSender.Send(ctx, payload.Phone, body); err != nil {
			logger.Error("otp sms failed", "err", err)
			return writeDeliveryEvent(ctx, pool, outboxRepo, "notification.failed.v1", payload.Phone, "", "otp", err.Error())
		}
		return writeDeliveryEvent(ctx, pool, outboxRepo, "notification.sent.v1", payload.Phone, "", "otp", smsSender.ProviderID())
	})
	go otpConsumer.Run(ctx)

	notificationHandler := handlers.NewNotificationHandler(notificationsRepo, tokensRepo)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)},
	)
	mux.HandleFunc("GET /api/v1/notifications", notificationHandler.List)
	mux.HandleFunc("POST /api/v1/notifications/read", notificationHandler.MarkRead)
	mux.HandleFunc("POST /api/v1/push/subscribe", notificationHandler.Subscribe)

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithRecover(logger),
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "notification")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
