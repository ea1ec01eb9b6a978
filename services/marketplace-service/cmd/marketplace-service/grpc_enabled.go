//go:build protogen

package main

import (
	"context"
	"log/slog"
	"net"

	"github.com/randevuapp/randevu/libs/config"
	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/libs/grpcx"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/grpcserver"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

func startGrpcServer(ctx context.Context, logger *slog.Logger, pool *db.Pool, shops *storage.ShopRepository, catalog *storage.CatalogRepository) error {
	port, err := config.Port("GRPC_PORT", "9090")
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcx.UnaryServerRequestIDInterceptor()),
	)
	grpcserver.Register(srv, pool, shops, catalog)

	go func() {
		logger.Info("grpc server starting", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc server error", "err", err)
		}
	}()

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	return nil
}
