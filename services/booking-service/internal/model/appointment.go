package model

import (
	"time"

	"github.com/randevuapp/randevu/services/booking-service/internal/lifecycle"
)

type Appointment struct {
	ID                string           `json:"id"`
	ShopID            string           `json:"shop_id"`
	ServiceID         string           `json:"service_id"`
	UserID            string           `json:"user_id"`
	StaffID           string           `json:"staff_id,omitempty"`
	Status            lifecycle.Status `json:"status"`
	StartTime         time.Time        `json:"start_time"`
	EndTime           time.Time        `json:"end_time"`
	Price             float64          `json:"price"`
	Notes             string           `json:"notes,omitempty"`
	UserConfirmed     bool             `json:"user_confirmed"`
	BusinessConfirmed bool             `json:"business_confirmed"`
	CancelReason      string           `json:"cancel_reason,omitempty"`
	CanceledBy        string           `json:"canceled_by,omitempty"`
	CanceledAt        *time.Time       `json:"canceled_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// AppointmentView is the denormalized list item: the appointment plus the
// shop, service, and staff attributes clients render without extra calls.
type AppointmentView struct {
	Appointment
	ShopName        string  `json:"shop_name"`
	ShopAddress     string  `json:"shop_address"`
	ShopImage       string  `json:"shop_image,omitempty"`
	ServiceName     string  `json:"service_name"`
	ServiceDuration int     `json:"service_duration_minutes"`
	ServicePrice    float64 `json:"service_price"`
	StaffName       string  `json:"staff_name,omitempty"`
}
