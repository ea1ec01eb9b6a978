//go:build protogen

package main

import (
	"log/slog"

	"github.com/randevuapp/randevu/libs/config"
	"github.com/randevuapp/randevu/services/booking-service/internal/directory"
)

func newBaseLoader(logger *slog.Logger) directory.Loader {
	if addr := config.String("MARKETPLACE_GRPC_ADDR", ""); addr != "" {
		loader, err := directory.NewGRPCLoader(addr)
		if err == nil {
			return loader
		}
		logger.Error("grpc directory loader init failed; falling back to http", "err", err)
	}
	return directory.NewHTTPLoader(config.String("MARKETPLACE_URL", "http://marketplace-service:8082"))
}
