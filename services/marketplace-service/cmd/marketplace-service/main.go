package main

import (
	"context"
	"net/http"
	"time"

	"github.com/randevuapp/randevu/libs/config"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/libs/kafkax"
	otelx "github.com/randevuapp/randevu/libs/otel"
	"github.com/randevuapp/randevu/libs/runtime"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/consumer"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/handlers"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/inbox"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/outbox"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "marketplace-service")
	port, err := config.Port("PORT", "8082")
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

	shopRepo := storage.NewShopRepository(pool)
	catalogRepo := storage.NewCatalogRepository(pool)
	reviewRepo := storage.NewReviewRepository(pool)
	favoriteRepo := storage.NewFavoriteRepository(pool)
	messageRepo := storage.NewMessageRepository(pool)
	profileRepo := storage.NewProfileRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	inboxRepo := inbox.NewRepository(pool)

	brokers := config.String("KAFKA_BROKERS", "")
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   brokers,
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	if brokers != "" {
		popularity := consumer.NewPopularity(logger, pool, inboxRepo, shopRepo, consumer.Config{
			Brokers: brokers,
			GroupID: config.String("KAFKA_GROUP_ID", "marketplace-popularity"),
			Topic:   config.String("POPULARITY_TOPIC", "booking.appointment.confirmed.v1"),
		})
		go popularity.Run(ctx)
	} else {
		logger.Warn("popularity consumer disabled (no kafka brokers configured)")
	}

	shopHandler := handlers.NewShopHandler(shopRepo, catalogRepo)
	reviewHandler := handlers.NewReviewHandler(pool, reviewRepo, shopRepo, outboxRepo)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, shopRepo)
	messageHandler := handlers.NewMessageHandler(pool, messageRepo, shopRepo, outboxRepo)
	profileHandler := handlers.NewProfileHandler(profileRepo)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)},
	)

	// Public catalog reads.
	mux.HandleFunc("GET /api/v1/shops", shopHandler.List)
	mux.HandleFunc("GET /api/v1/shops/user/my-shops", shopHandler.MyShops)
	mux.HandleFunc("GET /api/v1/shops/category/{category}", shopHandler.ListByCategory)
	mux.HandleFunc("GET /api/v1/shops/{id}", shopHandler.Get)
	mux.HandleFunc("GET /api/v1/shops/{id}/services", shopHandler.ListServices)
	mux.HandleFunc("GET /api/v1/shops/{id}/staff", shopHandler.ListStaff)
	mux.HandleFunc("GET /api/v1/search", shopHandler.Search)

	// Owner-side management (role gated at the edge, ownership checked here).
	mux.HandleFunc("POST /api/v1/business/shops", shopHandler.Create)
	mux.HandleFunc("PUT /api/v1/business/shops/{id}", shopHandler.Update)
	mux.HandleFunc("POST /api/v1/business/shops/{id}/services", shopHandler.CreateService)
	mux.HandleFunc("PUT /api/v1/business/shops/{id}/services/{serviceId}", shopHandler.UpdateService)
	mux.HandleFunc("DELETE /api/v1/business/shops/{id}/services/{serviceId}", shopHandler.DeleteService)
	mux.HandleFunc("POST /api/v1/business/shops/{id}/staff", shopHandler.CreateStaff)
	mux.HandleFunc("DELETE /api/v1/business/shops/{id}/staff/{staffId}", shopHandler.DeleteStaff)

	mux.HandleFunc("POST /api/v1/reviews", reviewHandler.Create)
	mux.HandleFunc("GET /api/v1/reviews/user", reviewHandler.ListMine)
	mux.HandleFunc("GET /api/v1/reviews/shop/{id}", reviewHandler.ListByShop)
	mux.HandleFunc("PUT /api/v1/reviews/{id}", reviewHandler.Update)
	mux.HandleFunc("DELETE /api/v1/reviews/{id}", reviewHandler.Delete)

	mux.HandleFunc("GET /api/v1/favorites", favoriteHandler.List)
	mux.HandleFunc("POST /api/v1/favorites/{shopId}", favoriteHandler.Add)
	mux.HandleFunc("DELETE /api/v1/favorites/{shopId}", favoriteHandler.Remove)

	mux.HandleFunc("POST /api/v1/messages", messageHandler.Send)
	mux.HandleFunc("GET /api/v1/messages/shop/{id}", messageHandler.ListForShop)
	mux.HandleFunc("POST /api/v1/messages/read", messageHandler.MarkRead)

	mux.HandleFunc("GET /api/v1/profile", profileHandler.Get)
	mux.HandleFunc("PUT /api/v1/profile", profileHandler.Update)

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithRecover(logger),
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "marketplace")
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

	if err := startGrpcServer(ctx, logger, pool, shopRepo, catalogRepo); err != nil {
		logger.Error("grpc server failed to start", "err", err)
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
