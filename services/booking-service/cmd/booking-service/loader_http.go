//go:build !protogen

package main

import (
	"log/slog"

	"github.com/randevuapp/randevu/libs/config"
	"github.com/randevuapp/randevu/services/booking-service/internal/directory"
)

func newBaseLoader(_ *slog.Logger) directory.Loader {
	return directory.NewHTTPLoader(config.String("MARKETPLACE_URL", "http://marketplace-service:8082"))
}
