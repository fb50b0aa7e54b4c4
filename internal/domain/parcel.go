package domain

import "time"

type ParcelStatus string

const (
	ParcelStatusPending   ParcelStatus = "pending"
	ParcelStatusCollected ParcelStatus = "collected"
	ParcelStatusInTransit ParcelStatus = "in_transit"
	ParcelStatusDelivered ParcelStatus = "delivered"
)

type Parcel struct {
	ID             string       `json:"id"`
	SenderID       string       `json:"sender_id"`
	RecipientName  string       `json:"recipient_name"`
	RecipientPhone string       `json:"recipient_phone"`
	Origin         string       `json:"origin"`
	Destination    string       `json:"destination"`
	ParcelType     string       `json:"parcel_type"`
	WeightKg       float64      `json:"weight_kg"`
	DeclaredValue  int          `json:"declared_value"`
	Insurance      bool         `json:"insurance"`
	Instructions   string       `json:"delivery_instructions,omitempty"`
	TrackingCode   string       `json:"tracking_code"`
	Status         ParcelStatus `json:"status"`
	Price          int          `json:"price"`
	CreatedAt      time.Time    `json:"created_at"`
}
