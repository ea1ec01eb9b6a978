//go:build protogen

package directory

import (
	"context"
	"time"

	"github.com/randevuapp/randevu/libs/grpcx"
	marketplacev1 "github.com/randevuapp/randevu/protos/gen/marketplace/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCLoader resolves shops through the marketplace gRPC directory instead of
// its HTTP surface.
type GRPCLoader struct {
	client marketplacev1.ShopDirectoryServiceClient
}

func NewGRPCLoader(addr string) (*GRPCLoader, error) {
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &GRPCLoader{client: marketplacev1.NewShopDirectoryServiceClient(conn)}, nil
}

func (l *GRPCLoader) Shop(ctx context.Context, shopID string) (ShopInfo, error) {
	resp, err := l.client.GetShopInfo(ctx, &marketplacev1.ShopInfoRequest{ShopId: shopID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ShopInfo{}, ErrNotFound
		}
		return ShopInfo{}, err
	}

	info := ShopInfo{
		ID:        resp.GetShopId(),
		OwnerID:   resp.GetOwnerId(),
		Name:      resp.GetName(),
		Address:   resp.GetAddress(),
		ImageMain: resp.GetImageMain(),
		IsActive:  resp.GetIsActive(),
	}
	if len(resp.GetWorkingHours()) > 0 {
		info.WorkingHours = make(map[string]DayHours, len(resp.GetWorkingHours()))
		for _, d := range resp.GetWorkingHours() {
			info.WorkingHours[d.GetDay()] = DayHours{Open: d.GetOpen(), Close: d.GetClose()}
		}
	}
	for _, svc := range resp.GetServices() {
		info.Services = append(info.Services, ServiceInfo{
			ID:              svc.GetId(),
			Name:            svc.GetName(),
			DurationMinutes: int(svc.GetDurationMinutes()),
			Price:           svc.GetPrice(),
			DiscountedPrice: svc.GetDiscountedPrice(),
		})
	}
	for _, st := range resp.GetStaff() {
		info.Staff = append(info.Staff, StaffInfo{
			ID:       st.GetId(),
			Name:     st.GetName(),
			IsActive: st.GetIsActive(),
		})
	}
	return info, nil
}
