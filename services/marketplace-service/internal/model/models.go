package model

import "time"

// DayHours is one weekday's opening window, "HH:MM" local shop time.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeekSchedule maps lowercase weekday names ("monday".."sunday") to opening
// hours. A missing day means the shop is closed that day. An empty schedule
// means the shop has not declared hours and accepts any time.
type WeekSchedule map[string]DayHours

type Shop struct {
	ID            string       `json:"id"`
	OwnerID       string       `json:"owner_id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Description   string       `json:"description"`
	Address       string       `json:"address"`
	City          string       `json:"city"`
	District      string       `json:"district"`
	Contact       string       `json:"contact"`
	ImageMain     string       `json:"image_main"`
	ImageGallery  []string     `json:"image_gallery"`
	RatingAverage float64      `json:"rating_average"`
	RatingCount   int          `json:"rating_count"`
	BookingCount  int          `json:"booking_count"`
	WorkingHours  WeekSchedule `json:"working_hours"`
	IsActive      bool         `json:"is_active"`
	IsVerified    bool         `json:"is_verified"`
	IsPremium     bool         `json:"is_premium"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type ShopService struct {
	ID              string    `json:"id"`
	ShopID          string    `json:"shop_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	DiscountedPrice float64   `json:"discounted_price,omitempty"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}

type Staff struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Review struct {
	ID            string    `json:"id"`
	ShopID        string    `json:"shop_id"`
	UserID        string    `json:"user_id"`
	AppointmentID string    `json:"appointment_id,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Message struct {
	ID         string    `json:"id"`
	ShopID     string    `json:"shop_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	PhotoURL  string    `json:"photo_url"`
	UpdatedAt time.Time `json:"updated_at"`
}
