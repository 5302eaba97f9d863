// server/internal/models/booking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một booking.
const (
	BookingPending   = "pending"
	BookingCompleted = "completed"
)

type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DisplayID   string             `bson:"displayID" json:"displayID"` // token cho khách tra cứu, ví dụ "CH-AB12C"
	StoreID     string             `bson:"storeID" json:"storeID"`
	StoreName   string             `bson:"storeName" json:"storeName"`
	Category    string             `bson:"category" json:"category"`
	ServiceName string             `bson:"serviceName" json:"serviceName"`
	TotalPrice  float64            `bson:"totalPrice" json:"totalPrice"`
	Status      string             `bson:"status" json:"status"` // pending, completed

	// Thông tin khách hàng
	UID           string `bson:"uid" json:"uid"`
	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`

	// Metadata theo category: salon/clinic/repair dùng Date+Time,
	// travel dùng Date+Source+Destination+NumSeats.
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time,omitempty" json:"time,omitempty"`
	Source      string `bson:"source,omitempty" json:"source,omitempty"`
	Destination string `bson:"destination,omitempty" json:"destination,omitempty"`
	NumSeats    int    `bson:"numSeats,omitempty" json:"numSeats,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
