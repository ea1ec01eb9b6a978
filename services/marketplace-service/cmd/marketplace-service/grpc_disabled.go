//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/randevuapp/randevu/libs/db"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *db.Pool, _ *storage.ShopRepository, _ *storage.CatalogRepository) error {
	return nil
}
