// server/internal/models/store.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các category hợp lệ của một store.
const (
	CategorySalon  = "salon"
	CategoryTravel = "travel"
	CategoryClinic = "clinic"
	CategoryRepair = "repair"
)

// ValidCategory kiểm tra một category có nằm trong danh sách hỗ trợ không.
func ValidCategory(c string) bool {
	switch c {
	case CategorySalon, CategoryTravel, CategoryClinic, CategoryRepair:
		return true
	}
	return false
}

// Service là một dịch vụ mà store cung cấp.
// Duration tính theo phút; với store loại "travel" thì DistanceKM thay cho Duration.
type Service struct {
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Duration   int     `bson:"duration,omitempty" json:"duration,omitempty"`
	DistanceKM float64 `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`
}

type Staff struct {
	Name string `bson:"name" json:"name"`
}

type Store struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreID    string             `bson:"storeID" json:"storeID"` // ID dễ đọc, ví dụ "ST-4F2A91C0"
	Name       string             `bson:"name" json:"name"`
	Category   string             `bson:"category" json:"category"` // salon, travel, clinic, repair
	Address    string             `bson:"address" json:"address"`
	ImageURL   string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsLive     bool               `bson:"isLive" json:"isLive"`
	MerchantID string             `bson:"merchantID" json:"merchantID"` // khóa ngoại tới vendor_creds
	Services   []Service          `bson:"services" json:"services"`
	Staff      []Staff            `bson:"staff" json:"staff"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
