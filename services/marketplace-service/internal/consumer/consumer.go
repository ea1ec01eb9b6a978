package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/libs/kafkax"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/inbox"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Popularity consumes confirmed-appointment events and keeps the shop
// popularity counters (booking_count + daily metrics) up to date.
type Popularity struct {
	reader *kafka.Reader
	logger *slog.Logger
	pool   *db.Pool
	inbox  *inbox.Repository
	shops  *storage.ShopRepository
}

type Config struct {
	Brokers string
	GroupID string
	Topic   string
}

func NewPopularity(logger *slog.Logger, pool *db.Pool, inboxRepo *inbox.Repository, shops *storage.ShopRepository, cfg Config) *Popularity {
	brokers := kafkax.SplitBrokers(cfg.Brokers)
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Popularity{
		reader: reader,
		logger: logger,
		pool:   pool,
		inbox:  inboxRepo,
		shops:  shops,
	}
}

func (c *Popularity) Run(ctx context.Context) {
	defer c.reader.Close()

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("kafka read error", "err", err)
			time.Sleep(1 * time.Second)
			continue
		}

		ctxMsg := kafkax.ExtractTraceContext(ctx, msg)
		ctxSpan, span := otel.Tracer("kafka").Start(ctxMsg, "kafka.consume",
			trace.WithAttributes(
				attribute.String("messaging.system", "kafka"),
				attribute.String("messaging.destination", msg.Topic),
			),
		)

		meta := kafkax.ExtractEventMeta(msg)

		ok, err := c.inbox.Record(ctxSpan, meta.EventID, meta.EventType)
		if err != nil {
			c.logger.Error("inbox record failed", "err", err)
			span.RecordError(err)
			span.End()
			continue
		}
		if !ok {
			c.logger.Info("duplicate event ignored", "event_id", meta.EventID, "event_type", meta.EventType)
			span.End()
			continue
		}

		if err := c.handle(ctxSpan, msg); err != nil {
			c.logger.Error("handler error", "err", err, "event_id", meta.EventID)
			span.RecordError(err)
		}
		span.End()
	}
}

type confirmedEvent struct {
	AppointmentID string    `json:"appointment_id"`
	ShopID        string    `json:"shop_id"`
	StartTime     time.Time `json:"start_time"`
}

func (c *Popularity) handle(ctx context.Context, msg kafka.Message) error {
	var evt confirmedEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return err
	}
	if evt.ShopID == "" {
		c.logger.Warn("confirmed event without shop_id", "topic", msg.Topic)
		return nil
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := c.shops.IncrementBookingCount(ctx, tx, evt.ShopID); err != nil {
		return err
	}

	day := evt.StartTime.UTC().Truncate(24 * time.Hour)
	if evt.StartTime.IsZero() {
		day = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO appointment_metrics (shop_id, day, confirmed_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (shop_id, day) DO UPDATE
		SET confirmed_count = appointment_metrics.confirmed_count + 1
	`, evt.ShopID, day); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
