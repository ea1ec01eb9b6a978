//go:build protogen

package grpcserver

import (
	"context"

	"github.com/randevuapp/randevu/libs/db"
	marketplacev1 "github.com/randevuapp/randevu/protos/gen/marketplace/v1"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type server struct {
	marketplacev1.UnimplementedShopDirectoryServiceServer
	pool    *db.Pool
	shops   *storage.ShopRepository
	catalog *storage.CatalogRepository
}

func Register(grpcServer *grpc.Server, pool *db.Pool, shops *storage.ShopRepository, catalog *storage.CatalogRepository) {
	marketplacev1.RegisterShopDirectoryServiceServer(grpcServer, &server{pool: pool, shops: shops, catalog: catalog})
}

func (s *server) GetShopInfo(ctx context.Context, req *marketplacev1.ShopInfoRequest) (*marketplacev1.ShopInfoResponse, error) {
	if req.GetShopId() == "" {
		return nil, status.Error(codes.InvalidArgument, "shop_id is required")
	}

	shop, err := s.shops.GetByID(ctx, req.GetShopId())
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "shop not found")
		}
		return nil, status.Error(codes.Internal, "failed to load shop")
	}

	resp := &marketplacev1.ShopInfoResponse{
		ShopId:    shop.ID,
		OwnerId:   shop.OwnerID,
		Name:      shop.Name,
		Address:   shop.Address,
		ImageMain: shop.ImageMain,
		IsActive:  shop.IsActive,
	}
	for day, hours := range shop.WorkingHours {
		resp.WorkingHours = append(resp.WorkingHours, &marketplacev1.DayHours{
			Day:   day,
			Open:  hours.Open,
			Close: hours.Close,
		})
	}

	services, err := s.catalog.ListServices(ctx, shop.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to load services")
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, &marketplacev1.ServiceInfo{
			Id:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: int32(svc.DurationMinutes),
			Price:           svc.Price,
			DiscountedPrice: svc.DiscountedPrice,
		})
	}

	staff, err := s.catalog.ListStaff(ctx, shop.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to load staff")
	}
	for _, st := range staff {
		resp.Staff = append(resp.Staff, &marketplacev1.StaffInfo{
			Id:       st.ID,
			Name:     st.Name,
			IsActive: st.IsActive,
		})
	}

	return resp, nil
}
